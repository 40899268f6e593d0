package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/job-recruitment/internal/interface/http"
)

type TeamModule struct {
	Handler *handlers.TeamHandler
	Guard   Guard
}

func NewTeamModule(h *handlers.TeamHandler, guard Guard) *TeamModule {
	return &TeamModule{Handler: h, Guard: guard}
}

func (m *TeamModule) Name() string { return "teams" }

func (m *TeamModule) Register(rg *gin.RouterGroup) {
	rg.GET("/teams/:id", m.Handler.Get)

	auth := m.Guard.protected(rg)
	{
		auth.POST("/teams", m.Handler.Create)
		auth.PUT("/teams/:id", m.Handler.Update)
		auth.POST("/teams/:id/activate", m.Handler.Activate)
		auth.POST("/teams/:id/inactivate", m.Handler.Inactivate)
		auth.POST("/teams/:id/logo", m.Handler.UploadLogo)
	}
}
