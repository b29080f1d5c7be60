package services

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/Juan1733/StarWars-REST-API/domain"
	"github.com/Juan1733/StarWars-REST-API/events"
	"github.com/Juan1733/StarWars-REST-API/repositories"
)

// FavoriteService maneja los favoritos de cada usuario
type FavoriteService interface {
	ListByUser(ctx context.Context, userID uint) ([]domain.FavoriteView, error)
	Add(ctx context.Context, userID uint, kind domain.TargetKind, targetID uint) (string, error)
	Remove(ctx context.Context, userID uint, kind domain.TargetKind, targetID uint) (string, error)
}

type favoriteService struct {
	favorites  repositories.FavoriteRepository
	users      repositories.UserRepository
	characters repositories.CharacterRepository
	planets    repositories.PlanetRepository
	store      repositories.Store
	publisher  events.Publisher
	logger     *zap.Logger
}

// NewFavoriteService crea el servicio de favoritos
func NewFavoriteService(
	favorites repositories.FavoriteRepository,
	users repositories.UserRepository,
	characters repositories.CharacterRepository,
	planets repositories.PlanetRepository,
	store repositories.Store,
	publisher events.Publisher,
	logger *zap.Logger,
) FavoriteService {
	return &favoriteService{
		favorites:  favorites,
		users:      users,
		characters: characters,
		planets:    planets,
		store:      store,
		publisher:  publisher,
		logger:     logger,
	}
}

// ListByUser devuelve los favoritos del usuario.
// A diferencia de los listados generales, sin favoritos responde una lista vacía.
func (s *favoriteService) ListByUser(ctx context.Context, userID uint) ([]domain.FavoriteView, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, lookupFailed(err)
	}
	if user == nil {
		return nil, domain.NotFound(MsgUserNotFound)
	}

	favorites, err := s.favorites.GetByUser(ctx, userID)
	if err != nil {
		return nil, lookupFailed(err)
	}

	views := make([]domain.FavoriteView, 0, len(favorites))
	for i := range favorites {
		views = append(views, favorites[i].Serialize())
	}
	return views, nil
}

// Add crea el favorito usuario/destino
func (s *favoriteService) Add(ctx context.Context, userID uint, kind domain.TargetKind, targetID uint) (string, error) {
	// 1. Usuario y destino tienen que existir
	if err := s.checkExists(ctx, userID, kind, targetID); err != nil {
		return "", err
	}

	// 2. No repetir el par
	existing, err := s.favorites.FindByUserAndTarget(ctx, userID, kind, targetID)
	if err != nil {
		return "", lookupFailed(err)
	}
	if existing != nil {
		return "", domain.NewError(domain.ErrAlreadyExists, MsgFavoriteExists, nil)
	}

	// 3. Guardar. Si otro request insertó el mismo par entre el paso 2 y
	// este, el índice único lo rechaza y se responde igual que arriba.
	favorite := domain.NewFavoriteFor(userID, kind, targetID)
	if err := s.store.Save(ctx, favorite); err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return "", domain.NewError(domain.ErrAlreadyExists, MsgFavoriteExists, err)
		}
		return "", domain.NewError(domain.ErrStorage, MsgServerDown, err)
	}

	publish(ctx, s.publisher, s.logger, events.NewMessage(events.ActionCreate, "favorito", favorite.ID, userID))

	if kind == domain.TargetPlanet {
		return MsgPlanetFavoriteAdded, nil
	}
	return MsgCharacterFavoriteAdded, nil
}

// Remove borra el primer favorito del usuario que apunta al destino.
// Si el usuario no tiene ningún favorito no es un error: se devuelve un mensaje informativo.
func (s *favoriteService) Remove(ctx context.Context, userID uint, kind domain.TargetKind, targetID uint) (string, error) {
	if err := s.checkExists(ctx, userID, kind, targetID); err != nil {
		return "", err
	}

	favorites, err := s.favorites.GetByUser(ctx, userID)
	if err != nil {
		return "", lookupFailed(err)
	}
	if len(favorites) == 0 {
		return MsgNoFavorites, nil
	}

	for i := range favorites {
		if !favorites[i].Targets(kind, targetID) {
			continue
		}

		// se vuelve a leer la fila: otro request pudo haberla borrado
		favorite, err := s.favorites.GetByID(ctx, favorites[i].ID)
		if err != nil {
			return "", lookupFailed(err)
		}
		if favorite == nil {
			return "", favoriteNotFound(kind)
		}

		if err := s.store.Delete(ctx, favorite); err != nil {
			return "", domain.NewError(domain.ErrStorage, MsgServerDown, err)
		}
		publish(ctx, s.publisher, s.logger, events.NewMessage(events.ActionDelete, "favorito", favorite.ID, userID))

		if kind == domain.TargetPlanet {
			return MsgPlanetFavoriteRemoved, nil
		}
		return MsgCharacterFavoriteRemoved, nil
	}

	return "", favoriteNotFound(kind)
}

func favoriteNotFound(kind domain.TargetKind) error {
	if kind == domain.TargetPlanet {
		return domain.NotFound(MsgPlanetFavoriteNotFound)
	}
	return domain.NotFound(MsgCharFavoriteNotFound)
}

// checkExists verifica que existan el usuario y el destino
func (s *favoriteService) checkExists(ctx context.Context, userID uint, kind domain.TargetKind, targetID uint) error {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return lookupFailed(err)
	}

	var targetFound bool
	switch kind {
	case domain.TargetPlanet:
		planet, err := s.planets.GetByID(ctx, targetID)
		if err != nil {
			return lookupFailed(err)
		}
		targetFound = planet != nil
	case domain.TargetCharacter:
		character, err := s.characters.GetByID(ctx, targetID)
		if err != nil {
			return lookupFailed(err)
		}
		targetFound = character != nil
	}

	if user == nil || !targetFound {
		return domain.NotFound(MsgTargetNotFound)
	}
	return nil
}
