package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/job-recruitment/pkg/response"
)

// Registry collects modules and mounts them under /api.
type Registry struct {
	Engine      *gin.Engine
	API         *gin.RouterGroup
	middlewares []gin.HandlerFunc
	modules     []Module
}

func NewRegistry(engine *gin.Engine) *Registry {
	api := engine.Group("/api")
	return &Registry{Engine: engine, API: api}
}

func (r *Registry) Use(mw ...gin.HandlerFunc) {
	r.middlewares = append(r.middlewares, mw...)
}

func (r *Registry) Add(mod Module) {
	r.modules = append(r.modules, mod)
}

// RegisterAll mounts the shared middleware, a health probe and every module.
func (r *Registry) RegisterAll() {
	if len(r.middlewares) > 0 {
		r.API.Use(r.middlewares...)
	}
	names := make([]string, 0, len(r.modules))
	for _, m := range r.modules {
		names = append(names, m.Name())
	}
	r.API.GET("/health", func(c *gin.Context) {
		response.Success[any](c, http.StatusOK, gin.H{"modules": len(names), "names": names}, "ok", nil)
	})
	for _, m := range r.modules {
		m.Register(r.API)
	}
}
