package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/job-recruitment/internal/interface/http"
)

type ReviewModule struct {
	Handler *handlers.ReviewHandler
	Guard   Guard
}

func NewReviewModule(h *handlers.ReviewHandler, guard Guard) *ReviewModule {
	return &ReviewModule{Handler: h, Guard: guard}
}

func (m *ReviewModule) Name() string { return "reviews" }

func (m *ReviewModule) Register(rg *gin.RouterGroup) {
	auth := m.Guard.protected(rg)
	{
		auth.POST("/reviews", m.Handler.Create)
		auth.PUT("/reviews/:id", m.Handler.Update)
		auth.POST("/reviews/:id/activate", m.Handler.Activate)
		auth.POST("/reviews/:id/inactivate", m.Handler.Inactivate)
	}
}
