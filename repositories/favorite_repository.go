package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Juan1733/StarWars-REST-API/domain"
)

// FavoriteRepository define las consultas sobre favoritos
type FavoriteRepository interface {
	GetByID(ctx context.Context, id uint) (*domain.Favorite, error)
	GetByUser(ctx context.Context, userID uint) ([]domain.Favorite, error)
	FindByUserAndTarget(ctx context.Context, userID uint, kind domain.TargetKind, targetID uint) (*domain.Favorite, error)
}

type favoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository crea el repositorio de favoritos
func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

// GetByID devuelve (nil, nil) si no existe
func (r *favoriteRepository) GetByID(ctx context.Context, id uint) (*domain.Favorite, error) {
	var favorite domain.Favorite
	err := r.db.WithContext(ctx).First(&favorite, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &favorite, nil
}

// GetByUser devuelve los favoritos del usuario ordenados por ID
func (r *favoriteRepository) GetByUser(ctx context.Context, userID uint) ([]domain.Favorite, error) {
	favorites := []domain.Favorite{}
	err := r.db.WithContext(ctx).Where("id_user = ?", userID).Order("id").Find(&favorites).Error
	return favorites, err
}

// FindByUserAndTarget busca el favorito del par usuario/destino.
// Devuelve (nil, nil) si no existe.
func (r *favoriteRepository) FindByUserAndTarget(ctx context.Context, userID uint, kind domain.TargetKind, targetID uint) (*domain.Favorite, error) {
	column := "planeta_id"
	if kind == domain.TargetCharacter {
		column = "personaje_id"
	}

	var favorite domain.Favorite
	err := r.db.WithContext(ctx).
		Where("id_user = ? AND "+column+" = ?", userID, targetID).
		First(&favorite).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &favorite, nil
}
