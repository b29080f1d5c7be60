package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Juan1733/StarWars-REST-API/domain"
)

// uintParam lee un parámetro entero de la URL.
// Si no es un entero la ruta no corresponde: se adjunta un 404 y devuelve false.
func uintParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		_ = c.Error(domain.NewAPIError(http.StatusNotFound, http.StatusText(http.StatusNotFound)))
		return 0, false
	}
	return uint(id), true
}

// bindJSON parsea el body. Un body inválido se responde como cualquier falla inesperada.
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		_ = c.Error(domain.NewError(domain.ErrInvalidInput, domain.GenericMessage, err))
		return false
	}
	return true
}
