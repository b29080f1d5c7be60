package database

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// StartKeepAlive programa un ping periódico al pool para que las conexiones
// ociosas no se corten. schedule usa la sintaxis de cron ("@every 5m").
// El que llama debe detener el cron devuelto al apagar el servidor.
func StartKeepAlive(db *gorm.DB, schedule string, logger *zap.Logger) (*cron.Cron, error) {
	c := cron.New()

	_, err := c.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := Ping(ctx, db); err != nil {
			logger.Warn("database keepalive ping failed", zap.Error(err))
			return
		}
		logger.Debug("database keepalive ping ok")
	})
	if err != nil {
		return nil, err
	}

	c.Start()
	return c, nil
}
