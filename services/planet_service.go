package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Juan1733/StarWars-REST-API/domain"
	"github.com/Juan1733/StarWars-REST-API/dto"
	"github.com/Juan1733/StarWars-REST-API/events"
	"github.com/Juan1733/StarWars-REST-API/repositories"
)

// PlanetService define la interfaz del servicio de planetas
type PlanetService interface {
	GetAll(ctx context.Context) ([]domain.PlanetView, error)
	GetByID(ctx context.Context, id uint) (*domain.PlanetView, error)
	Create(ctx context.Context, req dto.CreatePlanetRequest) (string, error)
}

type planetService struct {
	repo      repositories.PlanetRepository
	store     repositories.Store
	cache     repositories.CacheRepository
	publisher events.Publisher
	logger    *zap.Logger
}

// NewPlanetService crea el servicio de planetas
func NewPlanetService(
	repo repositories.PlanetRepository,
	store repositories.Store,
	cache repositories.CacheRepository,
	publisher events.Publisher,
	logger *zap.Logger,
) PlanetService {
	return &planetService{repo: repo, store: store, cache: cache, publisher: publisher, logger: logger}
}

func planetCacheKey(id uint) string {
	return fmt.Sprintf("planeta:%d", id)
}

func (s *planetService) GetAll(ctx context.Context) ([]domain.PlanetView, error) {
	planets, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, lookupFailed(err)
	}
	if len(planets) == 0 {
		return nil, domain.NotFound(MsgNoInfo)
	}

	views := make([]domain.PlanetView, 0, len(planets))
	for i := range planets {
		views = append(views, planets[i].Serialize())
	}
	return views, nil
}

func (s *planetService) GetByID(ctx context.Context, id uint) (*domain.PlanetView, error) {
	key := planetCacheKey(id)

	var cached domain.PlanetView
	if s.cache.Get(key, &cached) {
		return &cached, nil
	}

	planet, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, lookupFailed(err)
	}
	if planet == nil {
		return nil, domain.NotFound(MsgPlanetNotFound)
	}

	view := planet.Serialize()
	s.cache.Set(key, view)
	return &view, nil
}

// Create guarda el planeta. Si la escritura falla se responde 500,
// antes se respondía 200 sin mirar el resultado.
func (s *planetService) Create(ctx context.Context, req dto.CreatePlanetRequest) (string, error) {
	planet := domain.NewPlanet(value(req.Name), value(req.Diameter), value(req.Gravity))

	if err := s.store.Save(ctx, planet); err != nil {
		return "", domain.NewError(domain.ErrStorage, MsgServerDown, err)
	}

	publish(ctx, s.publisher, s.logger, events.NewMessage(events.ActionCreate, "planeta", planet.ID, 0))
	return MsgPlanetCreated, nil
}
