package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Juan1733/StarWars-REST-API/domain"
	"github.com/Juan1733/StarWars-REST-API/dto"
	"github.com/Juan1733/StarWars-REST-API/services"
)

// FavoriteController maneja los favoritos de un usuario
type FavoriteController struct {
	service services.FavoriteService
}

// NewFavoriteController crea el controlador de favoritos
func NewFavoriteController(service services.FavoriteService) *FavoriteController {
	return &FavoriteController{service: service}
}

// List maneja GET /:user_id/favoritos
func (ctrl *FavoriteController) List(c *gin.Context) {
	userID, ok := uintParam(c, "user_id")
	if !ok {
		return
	}

	favorites, err := ctrl.service.ListByUser(c.Request.Context(), userID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, favorites)
}

// AddPlanet maneja POST /:user_id/favoritos/planeta/:planeta_id
func (ctrl *FavoriteController) AddPlanet(c *gin.Context) {
	ctrl.add(c, domain.TargetPlanet, "planeta_id")
}

// AddCharacter maneja POST /:user_id/favoritos/personaje/:personaje_id
func (ctrl *FavoriteController) AddCharacter(c *gin.Context) {
	ctrl.add(c, domain.TargetCharacter, "personaje_id")
}

// RemovePlanet maneja DELETE /:user_id/favoritos/planeta/:planeta_id
func (ctrl *FavoriteController) RemovePlanet(c *gin.Context) {
	ctrl.remove(c, domain.TargetPlanet, "planeta_id")
}

// RemoveCharacter maneja DELETE /:user_id/favoritos/personaje/:personaje_id
func (ctrl *FavoriteController) RemoveCharacter(c *gin.Context) {
	ctrl.remove(c, domain.TargetCharacter, "personaje_id")
}

func (ctrl *FavoriteController) add(c *gin.Context, kind domain.TargetKind, param string) {
	userID, targetID, ok := favoriteParams(c, param)
	if !ok {
		return
	}

	msg, err := ctrl.service.Add(c.Request.Context(), userID, kind, targetID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	// 200 aunque se haya creado el favorito
	c.JSON(http.StatusOK, dto.MessageResponse{Message: msg})
}

func (ctrl *FavoriteController) remove(c *gin.Context, kind domain.TargetKind, param string) {
	userID, targetID, ok := favoriteParams(c, param)
	if !ok {
		return
	}

	msg, err := ctrl.service.Remove(c.Request.Context(), userID, kind, targetID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: msg})
}

func favoriteParams(c *gin.Context, targetParam string) (uint, uint, bool) {
	userID, ok := uintParam(c, "user_id")
	if !ok {
		return 0, 0, false
	}
	targetID, ok := uintParam(c, targetParam)
	if !ok {
		return 0, 0, false
	}
	return userID, targetID, true
}
