package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Juan1733/StarWars-REST-API/dto"
	"github.com/Juan1733/StarWars-REST-API/services"
)

// CharacterController maneja los endpoints de personajes
type CharacterController struct {
	service services.CharacterService
}

// NewCharacterController crea el controlador de personajes
func NewCharacterController(service services.CharacterService) *CharacterController {
	return &CharacterController{service: service}
}

// GetAll maneja GET /personajes
func (ctrl *CharacterController) GetAll(c *gin.Context) {
	characters, err := ctrl.service.GetAll(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, characters)
}

// GetByID maneja GET /personajes/:personaje_id
func (ctrl *CharacterController) GetByID(c *gin.Context) {
	id, ok := uintParam(c, "personaje_id")
	if !ok {
		return
	}

	character, err := ctrl.service.GetByID(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, character)
}

// Create maneja POST /personajes
func (ctrl *CharacterController) Create(c *gin.Context) {
	var req dto.CreateCharacterRequest
	if !bindJSON(c, &req) {
		return
	}

	msg, err := ctrl.service.Create(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, dto.MessageResponse{Message: msg})
}
