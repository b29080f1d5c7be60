package domain

// Planet representa un planeta
type Planet struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"type:varchar(250);not null" json:"name"`
	Diameter string `gorm:"type:varchar(250);not null" json:"diameter"`
	Gravity  string `gorm:"type:varchar(250);not null" json:"gravity"`
}

// TableName especifica el nombre de la tabla
func (Planet) TableName() string {
	return "planeta"
}

// PlanetView es la representación pública de un planeta
type PlanetView struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Diameter string `json:"diameter"`
	Gravity  string `json:"gravity"`
}

// NewPlanet arma un planeta sin guardar
func NewPlanet(name, diameter, gravity string) *Planet {
	return &Planet{Name: name, Diameter: diameter, Gravity: gravity}
}

// Serialize devuelve la vista pública del planeta
func (p *Planet) Serialize() PlanetView {
	return PlanetView{ID: p.ID, Name: p.Name, Diameter: p.Diameter, Gravity: p.Gravity}
}
