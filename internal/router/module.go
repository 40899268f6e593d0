package router

import "github.com/gin-gonic/gin"

// Module owns the routes of one aggregate. Name shows up in /api/health.
type Module interface {
	Name() string
	Register(rg *gin.RouterGroup)
}
