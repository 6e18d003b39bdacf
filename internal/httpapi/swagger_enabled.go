//go:build swagger

package httpapi

import (
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"
)

// MountSwagger serves the swagger UI at /swagger. Run `swag init` first so
// the generated doc.json is available.
func MountSwagger(r chi.Router) {
	r.Mount("/swagger", httpSwagger.WrapHandler)
}
