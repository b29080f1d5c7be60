package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Juan1733/StarWars-REST-API/dto"
	"github.com/Juan1733/StarWars-REST-API/services"
)

// PlanetController maneja los endpoints de planetas
type PlanetController struct {
	service services.PlanetService
}

// NewPlanetController crea el controlador de planetas
func NewPlanetController(service services.PlanetService) *PlanetController {
	return &PlanetController{service: service}
}

// GetAll maneja GET /planetas
func (ctrl *PlanetController) GetAll(c *gin.Context) {
	planets, err := ctrl.service.GetAll(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, planets)
}

// GetByID maneja GET /planetas/:planeta_id
func (ctrl *PlanetController) GetByID(c *gin.Context) {
	id, ok := uintParam(c, "planeta_id")
	if !ok {
		return
	}

	planet, err := ctrl.service.GetByID(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, planet)
}

// Create maneja POST /planetas. Responde 200, no 201.
func (ctrl *PlanetController) Create(c *gin.Context) {
	var req dto.CreatePlanetRequest
	if !bindJSON(c, &req) {
		return
	}

	msg, err := ctrl.service.Create(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: msg})
}
