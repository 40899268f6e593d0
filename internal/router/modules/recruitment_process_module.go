package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/job-recruitment/internal/interface/http"
)

type RecruitmentProcessModule struct {
	Handler *handlers.RecruitmentProcessHandler
	Guard   Guard
}

func NewRecruitmentProcessModule(h *handlers.RecruitmentProcessHandler, guard Guard) *RecruitmentProcessModule {
	return &RecruitmentProcessModule{Handler: h, Guard: guard}
}

func (m *RecruitmentProcessModule) Name() string { return "recruitment-processes" }

func (m *RecruitmentProcessModule) Register(rg *gin.RouterGroup) {
	auth := m.Guard.protected(rg)
	{
		auth.POST("/recruitment-processes", m.Handler.Apply)
		auth.GET("/recruitment-processes/:id", m.Handler.Get)
		auth.POST("/recruitment-processes/:id/in-progress", m.Handler.InProgress)
		auth.POST("/recruitment-processes/:id/pass", m.Handler.Pass)
		auth.POST("/recruitment-processes/:id/cancel", m.Handler.Cancel)
		auth.POST("/recruitment-processes/:id/fail", m.Handler.Fail)
		auth.GET("/recruitments/:id/processes", m.Handler.ListByRecruitment)
	}
}
