package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/job-recruitment/internal/container"
	handlers "github.com/oksasatya/job-recruitment/internal/interface/http"
	"github.com/oksasatya/job-recruitment/internal/interface/middleware"
)

// UserModule wires sign-up, session and profile routes.
// Public: POST /users, POST /users/activate, POST /login, POST /refresh
// Protected: POST /logout, GET|PUT /profile, POST /profile/password|inactivate
type UserModule struct {
	Handler *handlers.UserHandler
	Guard   Guard
}

func NewUserModule(h *handlers.UserHandler, guard Guard) *UserModule {
	return &UserModule{Handler: h, Guard: guard}
}

func (m *UserModule) Name() string { return "users" }

func (m *UserModule) Register(rg *gin.RouterGroup) {
	signUpLimiter := middleware.RateLimit(container.GetRedis(), 5, time.Minute, middleware.KeyByIP(), nil)
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIP(), nil)
	refreshLimiter := middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByIP(), nil)

	rg.POST("/users", signUpLimiter, m.Handler.SignUp)
	rg.POST("/users/activate", loginLimiter, m.Handler.Activate)
	rg.POST("/login", loginLimiter, m.Handler.Login)
	rg.POST("/refresh", refreshLimiter, m.Handler.Refresh)

	auth := m.Guard.protected(rg)
	{
		auth.POST("/logout", m.Handler.Logout)
		auth.GET("/profile", m.Handler.GetProfile)
		auth.PUT("/profile", m.Handler.ChangeInformation)
		auth.POST("/profile/password", middleware.RateLimit(container.GetRedis(), 5, time.Minute, middleware.KeyByUserID(), nil), m.Handler.ChangePassword)
		auth.POST("/profile/inactivate", m.Handler.Inactivate)
	}
}
