package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/Juan1733/StarWars-REST-API/domain"
	"github.com/Juan1733/StarWars-REST-API/events"
)

// publish manda el evento y solo loguea si falla: la escritura ya se hizo
func publish(ctx context.Context, publisher events.Publisher, logger *zap.Logger, msg events.Message) {
	if err := publisher.Publish(ctx, msg); err != nil {
		logger.Warn("failed to publish event",
			zap.String("action", msg.Action),
			zap.String("entity", msg.Entity),
			zap.Uint("entity_id", msg.EntityID),
			zap.Error(err),
		)
	}
}

// value devuelve el string apuntado o "" si es nil
func value(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// lookupFailed envuelve un error inesperado de lectura
func lookupFailed(err error) error {
	return domain.NewError(domain.ErrStorage, domain.GenericMessage, err)
}
