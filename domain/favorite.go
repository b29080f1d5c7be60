package domain

// Favorite une a un usuario con un personaje o con un planeta.
// En cada fila se completa solo uno de los dos (el otro queda en NULL).
// Los índices únicos impiden repetir el mismo par usuario/destino.
type Favorite struct {
	ID          uint  `gorm:"primaryKey" json:"id"`
	UserID      uint  `gorm:"column:id_user;not null;uniqueIndex:idx_favorito_user_planeta;uniqueIndex:idx_favorito_user_personaje" json:"user_id"`
	CharacterID *uint `gorm:"column:personaje_id;uniqueIndex:idx_favorito_user_personaje" json:"personaje_id"`
	PlanetID    *uint `gorm:"column:planeta_id;uniqueIndex:idx_favorito_user_planeta" json:"planeta_id"`

	Character *Character `gorm:"foreignKey:CharacterID" json:"-"`
	Planet    *Planet    `gorm:"foreignKey:PlanetID" json:"-"`
}

// TableName especifica el nombre de la tabla
func (Favorite) TableName() string {
	return "favorito"
}

// FavoriteView es la representación pública. Incluye el destino que no se usa como null.
type FavoriteView struct {
	ID          uint  `json:"id"`
	UserID      uint  `json:"user_id"`
	CharacterID *uint `json:"personaje_id"`
	PlanetID    *uint `json:"planeta_id"`
}

// NewFavorite arma un favorito sin guardar
func NewFavorite(userID uint, planetID, characterID *uint) *Favorite {
	return &Favorite{UserID: userID, PlanetID: planetID, CharacterID: characterID}
}

// Serialize devuelve la vista pública del favorito
func (f *Favorite) Serialize() FavoriteView {
	return FavoriteView{
		ID:          f.ID,
		UserID:      f.UserID,
		CharacterID: f.CharacterID,
		PlanetID:    f.PlanetID,
	}
}

// TargetKind indica a qué apunta un favorito
type TargetKind string

const (
	TargetPlanet    TargetKind = "planeta"
	TargetCharacter TargetKind = "personaje"
)

// Targets devuelve true si el favorito apunta a ese destino
func (f *Favorite) Targets(kind TargetKind, id uint) bool {
	switch kind {
	case TargetPlanet:
		return f.PlanetID != nil && *f.PlanetID == id
	case TargetCharacter:
		return f.CharacterID != nil && *f.CharacterID == id
	}
	return false
}

// NewFavoriteFor arma el favorito del tipo indicado dejando el otro destino en nil
func NewFavoriteFor(userID uint, kind TargetKind, targetID uint) *Favorite {
	id := targetID
	if kind == TargetPlanet {
		return NewFavorite(userID, &id, nil)
	}
	return NewFavorite(userID, nil, &id)
}
