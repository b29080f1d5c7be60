package controllers

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Juan1733/StarWars-REST-API/database"
	"github.com/Juan1733/StarWars-REST-API/dto"
)

// RouteLister devuelve las rutas registradas. *gin.Engine lo implementa.
type RouteLister interface {
	Routes() gin.RoutesInfo
}

// SiteController maneja el mapa de rutas y el health check
type SiteController struct {
	routes RouteLister
	db     *gorm.DB
}

// NewSiteController crea el controlador del mapa de rutas y el health check
func NewSiteController(routes RouteLister, db *gorm.DB) *SiteController {
	return &SiteController{routes: routes, db: db}
}

// Sitemap maneja GET /: lista todas las rutas registradas
func (ctrl *SiteController) Sitemap(c *gin.Context) {
	infos := ctrl.routes.Routes()

	routes := make([]dto.RouteInfo, 0, len(infos))
	for _, info := range infos {
		routes = append(routes, dto.RouteInfo{Method: info.Method, Path: info.Path})
	}
	sort.Slice(routes, func(i, j int) bool {
		if routes[i].Path == routes[j].Path {
			return routes[i].Method < routes[j].Method
		}
		return routes[i].Path < routes[j].Path
	})

	c.JSON(http.StatusOK, routes)
}

// HealthCheck maneja GET /health
func (ctrl *SiteController) HealthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := database.Ping(ctx, ctrl.db); err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusServiceUnavailable, dto.HealthResponse{Status: "degraded", Database: "down"})
		return
	}

	c.JSON(http.StatusOK, dto.HealthResponse{Status: "healthy", Database: "up"})
}
