package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/Juan1733/StarWars-REST-API/domain"
	"github.com/Juan1733/StarWars-REST-API/dto"
	"github.com/Juan1733/StarWars-REST-API/events"
	"github.com/Juan1733/StarWars-REST-API/repositories"
)

// UserService define la interfaz del servicio
type UserService interface {
	GetAll(ctx context.Context) ([]domain.UserView, error)
	Create(ctx context.Context, req dto.CreateUserRequest) (domain.UserResult, error)
}

// userService es la implementación real del servicio
type userService struct {
	repo      repositories.UserRepository
	store     repositories.Store
	publisher events.Publisher
	logger    *zap.Logger
}

// NewUserService crea una nueva instancia del servicio
func NewUserService(repo repositories.UserRepository, store repositories.Store, publisher events.Publisher, logger *zap.Logger) UserService {
	return &userService{repo: repo, store: store, publisher: publisher, logger: logger}
}

// GetAll devuelve todos los usuarios sin el password.
// Si no hay ninguno es un 404, no una lista vacía.
func (s *userService) GetAll(ctx context.Context) ([]domain.UserView, error) {
	users, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, lookupFailed(err)
	}
	if len(users) == 0 {
		return nil, domain.NotFound(MsgNoInfo)
	}

	views := make([]domain.UserView, 0, len(users))
	for i := range users {
		views = append(views, users[i].Serialize())
	}
	return views, nil
}

// Create registra un usuario.
// Si el email ya existe devuelve el resultado rechazado (sin error): el
// controller decide cómo responder. El error es solo para fallas al guardar.
func (s *userService) Create(ctx context.Context, req dto.CreateUserRequest) (domain.UserResult, error) {
	// 1. Armar el usuario verificando el email
	result := domain.NewUser(ctx, s.repo, value(req.Name), value(req.LastName), value(req.Email), value(req.Password))
	if !result.Success {
		s.logger.Info("user rejected", zap.String("email", value(req.Email)))
		return result, nil
	}

	// 2. Guardar. Un email duplicado acá es una carrera con otro request y
	// se responde igual que cualquier otra falla de escritura.
	if err := s.store.Save(ctx, result.User); err != nil {
		return domain.UserRejected(), domain.NewError(domain.ErrStorage, MsgServerDown, err)
	}

	publish(ctx, s.publisher, s.logger, events.NewMessage(events.ActionCreate, "user", result.User.ID, result.User.ID))
	return result, nil
}
