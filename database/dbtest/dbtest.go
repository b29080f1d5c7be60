// Package dbtest arma bases SQLite en memoria para los tests.
package dbtest

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Juan1733/StarWars-REST-API/database"
)

// New devuelve una base vacía con las tablas ya creadas.
// Se usa una sola conexión porque cada conexión a :memory: es una base distinta.
func New(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Open("sqlite::memory:", zap.NewNop())
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))

	t.Cleanup(func() {
		_ = database.Close(db)
	})
	return db
}
