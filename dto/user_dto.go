package dto

// CreateUserRequest es el body de POST /usuario. Igual que en los demás
// bodies solo se exige que estén las claves.
type CreateUserRequest struct {
	Name     *string `json:"name" binding:"required"`
	LastName *string `json:"last_name" binding:"required"`
	Email    *string `json:"email" binding:"required"`
	Password *string `json:"password" binding:"required"`
}

// HelloResponse es la respuesta fija de GET /user
type HelloResponse struct {
	Msg string `json:"msg"`
}

// MessageResponse representa una respuesta con solo un mensaje
type MessageResponse struct {
	Message string `json:"message"`
}

// RouteInfo es una entrada del mapa de rutas de GET /
type RouteInfo struct {
	Method string `json:"method"`
	Path   string `json:"path"`
}

// HealthResponse es la respuesta de GET /health
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}
