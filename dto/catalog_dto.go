package dto

// CreateCharacterRequest es el body de POST /personajes.
// Los campos son punteros: "required" solo exige que la clave venga en el
// JSON (y no sea null), un string vacío es válido.
type CreateCharacterRequest struct {
	Name   *string `json:"name" binding:"required"`
	Gender *string `json:"gender" binding:"required"`
	Height *string `json:"height" binding:"required"`
}

// CreatePlanetRequest es el body de POST /planetas
type CreatePlanetRequest struct {
	Name     *string `json:"name" binding:"required"`
	Diameter *string `json:"diameter" binding:"required"`
	Gravity  *string `json:"gravity" binding:"required"`
}
