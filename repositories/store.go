package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Juan1733/StarWars-REST-API/domain"
)

// Store guarda y borra entidades. Cada operación corre en su propia
// transacción: si falla se hace rollback y se devuelve un error tipado.
type Store interface {
	Save(ctx context.Context, entity interface{}) error
	Delete(ctx context.Context, entity interface{}) error
}

type gormStore struct {
	db *gorm.DB
}

// NewStore crea el Store sobre la conexión de gorm
func NewStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

// Save inserta (o actualiza si ya tiene ID) y hace commit
func (s *gormStore) Save(ctx context.Context, entity interface{}) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Save(entity).Error
	})
	return classify(err)
}

// Delete borra la entidad y hace commit
func (s *gormStore) Delete(ctx context.Context, entity interface{}) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Delete(entity).Error
	})
	return classify(err)
}

// classify traduce los errores de gorm a los tipos del dominio
func classify(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return domain.NewError(domain.ErrAlreadyExists, "duplicated key", err)
	default:
		return domain.NewError(domain.ErrStorage, "storage failure", err)
	}
}
