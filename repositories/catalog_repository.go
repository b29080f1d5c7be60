package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Juan1733/StarWars-REST-API/domain"
)

// CharacterRepository define las consultas sobre personajes
type CharacterRepository interface {
	GetAll(ctx context.Context) ([]domain.Character, error)
	GetByID(ctx context.Context, id uint) (*domain.Character, error)
}

// PlanetRepository define las consultas sobre planetas
type PlanetRepository interface {
	GetAll(ctx context.Context) ([]domain.Planet, error)
	GetByID(ctx context.Context, id uint) (*domain.Planet, error)
}

// catalogRepository sirve para personajes y planetas: las dos tablas se
// consultan igual y ninguna se modifica después de creada.
type catalogRepository[T any] struct {
	db *gorm.DB
}

// NewCharacterRepository crea el repositorio de personajes
func NewCharacterRepository(db *gorm.DB) CharacterRepository {
	return &catalogRepository[domain.Character]{db: db}
}

// NewPlanetRepository crea el repositorio de planetas
func NewPlanetRepository(db *gorm.DB) PlanetRepository {
	return &catalogRepository[domain.Planet]{db: db}
}

// GetAll devuelve todas las filas de la tabla
func (r *catalogRepository[T]) GetAll(ctx context.Context) ([]T, error) {
	var rows []T
	err := r.db.WithContext(ctx).Find(&rows).Error
	return rows, err
}

// GetByID devuelve (nil, nil) si no existe
func (r *catalogRepository[T]) GetByID(ctx context.Context, id uint) (*T, error) {
	var row T
	err := r.db.WithContext(ctx).First(&row, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}
