package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/job-recruitment/internal/application"
	"github.com/oksasatya/job-recruitment/pkg/response"
)

type RecruitmentHandler struct {
	Svc    *application.RecruitmentService
	Logger *logrus.Logger
}

func NewRecruitmentHandler(svc *application.RecruitmentService, logger *logrus.Logger) *RecruitmentHandler {
	return &RecruitmentHandler{Svc: svc, Logger: logger}
}

// teamRef names the team a leader acts for. It binds from the JSON body or,
// for bodiless requests, from the query string.
type teamRef struct {
	TeamID string `json:"team_id" form:"team_id" binding:"required"`
}

type recruitmentRequest struct {
	TeamID  string `json:"team_id" binding:"required"`
	Title   string `json:"title" binding:"required,notblank,max=200"`
	Content string `json:"content" binding:"required,notblank"`
}

type closedAtRequest struct {
	TeamID   string    `json:"team_id" binding:"required"`
	ClosedAt time.Time `json:"closed_at" binding:"required"`
}

type searchQuery struct {
	Q    string `form:"q" binding:"required,notblank"`
	Size int    `form:"size" binding:"omitempty,min=1,max=50"`
}

func (h *RecruitmentHandler) Create(c *gin.Context) {
	var req recruitmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badPayload(c, err)
		return
	}
	r, err := h.Svc.Create(c.Request.Context(), req.TeamID, c.GetString("userID"), req.Title, req.Content)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, toRecruitmentView(r), "recruitment created", nil)
}

func (h *RecruitmentHandler) Get(c *gin.Context) {
	r, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, toRecruitmentView(r), "recruitment", nil)
}

func (h *RecruitmentHandler) ListByTeam(c *gin.Context) {
	rs, err := h.Svc.ListByTeam(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, mapSlice(rs, toRecruitmentView), "recruitments", gin.H{"count": len(rs)})
}

func (h *RecruitmentHandler) Search(c *gin.Context) {
	var q searchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badPayload(c, err)
		return
	}
	rs, err := h.Svc.Search(c.Request.Context(), q.Q, q.Size)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, mapSlice(rs, toRecruitmentView), "recruitments", gin.H{"count": len(rs), "q": q.Q})
}

func (h *RecruitmentHandler) Update(c *gin.Context) {
	var req recruitmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badPayload(c, err)
		return
	}
	r, err := h.Svc.Update(c.Request.Context(), c.Param("id"), req.TeamID, c.GetString("userID"), req.Title, req.Content)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, toRecruitmentView(r), "recruitment updated", nil)
}

func (h *RecruitmentHandler) Activate(c *gin.Context) {
	var req closedAtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badPayload(c, err)
		return
	}
	r, err := h.Svc.Activate(c.Request.Context(), c.Param("id"), req.TeamID, c.GetString("userID"), req.ClosedAt)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, toRecruitmentView(r), "recruitment activated", nil)
}

func (h *RecruitmentHandler) ExtendClosedAt(c *gin.Context) {
	var req closedAtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badPayload(c, err)
		return
	}
	r, err := h.Svc.ExtendClosedAt(c.Request.Context(), c.Param("id"), req.TeamID, c.GetString("userID"), req.ClosedAt)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, toRecruitmentView(r), "recruitment extended", nil)
}

func (h *RecruitmentHandler) Inactivate(c *gin.Context) {
	var ref teamRef
	if err := c.ShouldBind(&ref); err != nil {
		badPayload(c, err)
		return
	}
	r, err := h.Svc.Inactivate(c.Request.Context(), c.Param("id"), ref.TeamID, c.GetString("userID"))
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, toRecruitmentView(r), "recruitment inactivated", nil)
}

func (h *RecruitmentHandler) Delete(c *gin.Context) {
	var ref teamRef
	if err := c.ShouldBind(&ref); err != nil {
		badPayload(c, err)
		return
	}
	r, err := h.Svc.Delete(c.Request.Context(), c.Param("id"), ref.TeamID, c.GetString("userID"))
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, toRecruitmentView(r), "recruitment deleted", nil)
}
