// Package routes arma el *gin.Engine con todas las capas conectadas.
package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Juan1733/StarWars-REST-API/controllers"
	"github.com/Juan1733/StarWars-REST-API/events"
	"github.com/Juan1733/StarWars-REST-API/middleware"
	"github.com/Juan1733/StarWars-REST-API/repositories"
	"github.com/Juan1733/StarWars-REST-API/services"
)

// Dependencies son los recursos que se crean en main y comparten todas las capas.
// Metrics, RateLimiter, Publisher y Logger son opcionales.
type Dependencies struct {
	DB          *gorm.DB
	Cache       repositories.CacheRepository
	Publisher   events.Publisher
	Logger      *zap.Logger
	Metrics     *middleware.Metrics
	RateLimiter *middleware.RateLimiter
}

// New inicializa repositorios, servicios y controladores y registra las rutas
func New(deps Dependencies) *gin.Engine {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.Metrics == nil {
		deps.Metrics = middleware.NewMetrics()
	}
	if deps.RateLimiter == nil {
		deps.RateLimiter = middleware.NewRateLimiter(0, 1, deps.Logger)
	}
	if deps.Publisher == nil {
		deps.Publisher = events.NopPublisher{}
	}

	// Repository: acceso a datos
	store := repositories.NewStore(deps.DB)
	userRepo := repositories.NewUserRepository(deps.DB)
	characterRepo := repositories.NewCharacterRepository(deps.DB)
	planetRepo := repositories.NewPlanetRepository(deps.DB)
	favoriteRepo := repositories.NewFavoriteRepository(deps.DB)

	// Service: lógica de negocio
	userService := services.NewUserService(userRepo, store, deps.Publisher, deps.Logger)
	characterService := services.NewCharacterService(characterRepo, store, deps.Cache, deps.Publisher, deps.Logger)
	planetService := services.NewPlanetService(planetRepo, store, deps.Cache, deps.Publisher, deps.Logger)
	favoriteService := services.NewFavoriteService(favoriteRepo, userRepo, characterRepo, planetRepo, store, deps.Publisher, deps.Logger)

	router := gin.New()

	// Controller: maneja HTTP
	userController := controllers.NewUserController(userService)
	characterController := controllers.NewCharacterController(characterService)
	planetController := controllers.NewPlanetController(planetService)
	favoriteController := controllers.NewFavoriteController(favoriteService)
	siteController := controllers.NewSiteController(router, deps.DB)

	// El orden importa: ErrorHandler tiene que ver los errores de todos los que siguen
	router.Use(
		middleware.RequestLogger(deps.Logger),
		deps.Metrics.Instrument(),
		middleware.ErrorHandler(deps.Logger),
		middleware.Recovery(deps.Logger),
		middleware.CORS(),
		deps.RateLimiter.Handler(),
	)

	router.NoRoute(middleware.NotFound)
	router.NoMethod(middleware.NotFound)

	router.GET("/", siteController.Sitemap)
	router.GET("/health", siteController.HealthCheck)
	router.GET("/metrics", deps.Metrics.Handler())

	router.GET("/user", userController.Hello)
	router.GET("/users", userController.GetAllUsers)
	router.POST("/usuario", userController.CreateUser)

	router.GET("/personajes", characterController.GetAll)
	router.GET("/personajes/:personaje_id", characterController.GetByID)
	router.POST("/personajes", characterController.Create)

	router.GET("/planetas", planetController.GetAll)
	router.GET("/planetas/:planeta_id", planetController.GetByID)
	router.POST("/planetas", planetController.Create)

	favorites := router.Group("/:user_id/favoritos")
	{
		favorites.GET("", favoriteController.List)
		favorites.POST("/planeta/:planeta_id", favoriteController.AddPlanet)
		favorites.DELETE("/planeta/:planeta_id", favoriteController.RemovePlanet)
		favorites.POST("/personaje/:personaje_id", favoriteController.AddCharacter)
		favorites.DELETE("/personaje/:personaje_id", favoriteController.RemoveCharacter)
	}

	return router
}
