package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/job-recruitment/internal/interface/http"
)

// ResumeModule routes are all owner scoped, so every route is protected.
type ResumeModule struct {
	Handler *handlers.ResumeHandler
	Guard   Guard
}

func NewResumeModule(h *handlers.ResumeHandler, guard Guard) *ResumeModule {
	return &ResumeModule{Handler: h, Guard: guard}
}

func (m *ResumeModule) Name() string { return "resumes" }

func (m *ResumeModule) Register(rg *gin.RouterGroup) {
	auth := m.Guard.protected(rg)
	{
		auth.POST("/resumes", m.Handler.Create)
		auth.GET("/resumes", m.Handler.List)
		auth.GET("/resumes/:id", m.Handler.Get)
		auth.PUT("/resumes/:id", m.Handler.Update)
		auth.POST("/resumes/:id/activate", m.Handler.Activate)
		auth.POST("/resumes/:id/inactivate", m.Handler.Inactivate)
		auth.DELETE("/resumes/:id", m.Handler.Delete)
	}
}
