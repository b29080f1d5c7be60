package routes

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Handler envuelve el engine para que /personajes/ y /personajes lleguen a
// la misma ruta sin redirección. gin solo sabe responder 301 a la barra final.
func Handler(engine *gin.Engine) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if len(r.URL.Path) > 1 && strings.HasSuffix(r.URL.Path, "/") {
			r.URL.Path = trimSlash(r.URL.Path)
			if r.URL.RawPath != "" {
				r.URL.RawPath = trimSlash(r.URL.RawPath)
			}
		}
		engine.ServeHTTP(w, r)
	})
}

func trimSlash(path string) string {
	trimmed := strings.TrimRight(path, "/")
	if trimmed == "" {
		return "/"
	}
	return trimmed
}
