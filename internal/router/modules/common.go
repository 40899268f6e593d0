package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/job-recruitment/internal/container"
	"github.com/oksasatya/job-recruitment/internal/interface/middleware"
	"github.com/oksasatya/job-recruitment/pkg/helpers"
)

// Guard bundles what protected routes need to authenticate a caller.
type Guard struct {
	JWT      *helpers.JWTManager
	Sessions middleware.SessionChecker
}

// protected returns a group that requires a live session and applies the
// per-IP and per-user limits shared by all authenticated routes.
func (g Guard) protected(rg *gin.RouterGroup) *gin.RouterGroup {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(g.JWT, g.Sessions))
	auth.Use(
		middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByIP(), nil),
		middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil),
	)
	return auth
}
