package middleware

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Juan1733/StarWars-REST-API/domain"
	"github.com/Juan1733/StarWars-REST-API/dto"
)

// ErrorHandler convierte los errores que los handlers adjuntan con c.Error
// en la respuesta JSON. Tiene que registrarse antes que el resto de los middlewares.
//
//	*domain.APIError  -> {"message", "status_code"} con su propio status
//	*domain.Error     -> {"message"} con el status según el tipo
//	cualquier otro    -> 500 {"message": "Ha ocurrido un error"}
func ErrorHandler(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err

		status, body := render(err)
		logError(logger, c, status, err)

		// el handler ya respondió (por ejemplo el health check)
		if c.Writer.Written() {
			return
		}
		c.JSON(status, body)
	}
}

func render(err error) (int, interface{}) {
	var apiErr *domain.APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode, apiErr
	}

	var domainErr *domain.Error
	if errors.As(err, &domainErr) {
		return domain.StatusCode(domainErr), dto.MessageResponse{Message: domainErr.Message}
	}

	return http.StatusInternalServerError, dto.MessageResponse{Message: domain.GenericMessage}
}

func logError(logger *zap.Logger, c *gin.Context, status int, err error) {
	fields := []zap.Field{
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
		zap.Int("status", status),
		zap.String("request_id", c.GetString(RequestIDKey)),
		zap.Error(err),
	}
	if status >= http.StatusInternalServerError {
		logger.Error("request failed", fields...)
		return
	}
	logger.Debug("request rejected", fields...)
}

// Recovery reemplaza al recovery de gin: loguea el panic con zap y
// responde 500 con el mensaje genérico
func Recovery(logger *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, recovered interface{}) {
		logger.Error("panic recovered",
			zap.Any("panic", recovered),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("request_id", c.GetString(RequestIDKey)),
		)
		c.AbortWithStatusJSON(http.StatusInternalServerError, dto.MessageResponse{Message: domain.GenericMessage})
	})
}

// NotFound se usa para NoRoute y NoMethod
func NotFound(c *gin.Context) {
	_ = c.Error(domain.NewAPIError(http.StatusNotFound, http.StatusText(http.StatusNotFound)))
}
