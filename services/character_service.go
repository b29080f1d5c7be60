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

// CharacterService define la interfaz del servicio de personajes
type CharacterService interface {
	GetAll(ctx context.Context) ([]domain.CharacterView, error)
	GetByID(ctx context.Context, id uint) (*domain.CharacterView, error)
	Create(ctx context.Context, req dto.CreateCharacterRequest) (string, error)
}

type characterService struct {
	repo      repositories.CharacterRepository
	store     repositories.Store
	cache     repositories.CacheRepository
	publisher events.Publisher
	logger    *zap.Logger
}

// NewCharacterService crea el servicio de personajes
func NewCharacterService(
	repo repositories.CharacterRepository,
	store repositories.Store,
	cache repositories.CacheRepository,
	publisher events.Publisher,
	logger *zap.Logger,
) CharacterService {
	return &characterService{repo: repo, store: store, cache: cache, publisher: publisher, logger: logger}
}

func characterCacheKey(id uint) string {
	return fmt.Sprintf("personaje:%d", id)
}

func (s *characterService) GetAll(ctx context.Context) ([]domain.CharacterView, error) {
	characters, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, lookupFailed(err)
	}
	if len(characters) == 0 {
		return nil, domain.NotFound(MsgNoInfo)
	}

	views := make([]domain.CharacterView, 0, len(characters))
	for i := range characters {
		views = append(views, characters[i].Serialize())
	}
	return views, nil
}

// GetByID busca en el caché y si no está va a la base.
// Los personajes no se modifican, así que no hace falta invalidar.
func (s *characterService) GetByID(ctx context.Context, id uint) (*domain.CharacterView, error) {
	key := characterCacheKey(id)

	var cached domain.CharacterView
	if s.cache.Get(key, &cached) {
		return &cached, nil
	}

	character, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, lookupFailed(err)
	}
	if character == nil {
		return nil, domain.NotFound(MsgCharacterNotFound)
	}

	view := character.Serialize()
	s.cache.Set(key, view)
	return &view, nil
}

// Create guarda el personaje y devuelve el mensaje de confirmación
func (s *characterService) Create(ctx context.Context, req dto.CreateCharacterRequest) (string, error) {
	character := domain.NewCharacter(value(req.Name), value(req.Gender), value(req.Height))

	if err := s.store.Save(ctx, character); err != nil {
		return "", domain.NewError(domain.ErrStorage, MsgCharacterDown, err)
	}

	publish(ctx, s.publisher, s.logger, events.NewMessage(events.ActionCreate, "personaje", character.ID, 0))
	return MsgCharacterCreated, nil
}
