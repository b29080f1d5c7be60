package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Juan1733/StarWars-REST-API/dto"
	"github.com/Juan1733/StarWars-REST-API/services"
)

// UserController maneja los endpoints HTTP de usuarios
type UserController struct {
	service services.UserService
}

// NewUserController crea una nueva instancia del controlador
func NewUserController(service services.UserService) *UserController {
	return &UserController{service: service}
}

// Hello maneja GET /user
func (ctrl *UserController) Hello(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HelloResponse{Msg: services.MsgHello})
}

// GetAllUsers maneja GET /users
func (ctrl *UserController) GetAllUsers(c *gin.Context) {
	users, err := ctrl.service.GetAll(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, users)
}

// CreateUser maneja POST /usuario
func (ctrl *UserController) CreateUser(c *gin.Context) {
	// 1. Leer el JSON del body
	var req dto.CreateUserRequest
	if !bindJSON(c, &req) {
		return
	}

	// 2. Crear el usuario
	result, err := ctrl.service.Create(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	// 3. Si el email ya existe se devuelve el resultado rechazado tal cual
	if !result.Success {
		c.JSON(http.StatusInternalServerError, result)
		return
	}

	// 4. Creado: la respuesta es una lista vacía, no el usuario
	c.JSON(http.StatusCreated, []interface{}{})
}
