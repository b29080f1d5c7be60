package domain

// Character representa un personaje
type Character struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Name   string `gorm:"type:varchar(250);not null" json:"name"`
	Gender string `gorm:"type:varchar(250);not null" json:"gender"`
	Height string `gorm:"type:varchar(250);not null" json:"height"`
}

// TableName especifica el nombre de la tabla
func (Character) TableName() string {
	return "personaje"
}

// CharacterView es la representación pública de un personaje
type CharacterView struct {
	ID     uint   `json:"id"`
	Name   string `json:"name"`
	Gender string `json:"gender"`
	Height string `json:"height"`
}

// NewCharacter arma un personaje sin guardar
func NewCharacter(name, gender, height string) *Character {
	return &Character{Name: name, Gender: gender, Height: height}
}

// Serialize devuelve la vista pública del personaje
func (c *Character) Serialize() CharacterView {
	return CharacterView{ID: c.ID, Name: c.Name, Gender: c.Gender, Height: c.Height}
}
