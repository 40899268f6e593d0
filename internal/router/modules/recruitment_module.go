package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/job-recruitment/internal/container"
	handlers "github.com/oksasatya/job-recruitment/internal/interface/http"
	"github.com/oksasatya/job-recruitment/internal/interface/middleware"
)

type RecruitmentModule struct {
	Handler *handlers.RecruitmentHandler
	Guard   Guard
}

func NewRecruitmentModule(h *handlers.RecruitmentHandler, guard Guard) *RecruitmentModule {
	return &RecruitmentModule{Handler: h, Guard: guard}
}

func (m *RecruitmentModule) Name() string { return "recruitments" }

func (m *RecruitmentModule) Register(rg *gin.RouterGroup) {
	searchLimiter := middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByIPAndPath(), nil)

	rg.GET("/recruitments/search", searchLimiter, m.Handler.Search)
	rg.GET("/recruitments/:id", m.Handler.Get)
	rg.GET("/teams/:id/recruitments", m.Handler.ListByTeam)

	auth := m.Guard.protected(rg)
	{
		auth.POST("/recruitments", m.Handler.Create)
		auth.PUT("/recruitments/:id", m.Handler.Update)
		auth.POST("/recruitments/:id/activate", m.Handler.Activate)
		auth.POST("/recruitments/:id/inactivate", m.Handler.Inactivate)
		auth.POST("/recruitments/:id/extend", m.Handler.ExtendClosedAt)
		auth.DELETE("/recruitments/:id", m.Handler.Delete)
	}
}
