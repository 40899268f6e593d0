package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/job-recruitment/internal/application"
	"github.com/oksasatya/job-recruitment/internal/domain/entity"
	"github.com/oksasatya/job-recruitment/pkg/response"
)

type RecruitmentProcessHandler struct {
	Svc    *application.RecruitmentProcessService
	Logger *logrus.Logger
}

func NewRecruitmentProcessHandler(svc *application.RecruitmentProcessService, logger *logrus.Logger) *RecruitmentProcessHandler {
	return &RecruitmentProcessHandler{Svc: svc, Logger: logger}
}

type applyRequest struct {
	RecruitmentID string `json:"recruitment_id" binding:"required"`
	ResumeID      string `json:"resume_id" binding:"required"`
}

// Apply submits the caller's resume to a recruitment.
func (h *RecruitmentProcessHandler) Apply(c *gin.Context) {
	var req applyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badPayload(c, err)
		return
	}
	p, err := h.Svc.Create(c.Request.Context(), req.RecruitmentID, c.GetString("userID"), req.ResumeID)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, toProcessView(p), "application submitted", nil)
}

func (h *RecruitmentProcessHandler) Get(c *gin.Context) {
	p, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, toProcessView(p), "recruitment process", nil)
}

func (h *RecruitmentProcessHandler) ListByRecruitment(c *gin.Context) {
	var ref teamRef
	if err := c.ShouldBindQuery(&ref); err != nil {
		badPayload(c, err)
		return
	}
	ps, err := h.Svc.ListByRecruitment(c.Request.Context(), c.Param("id"), ref.TeamID, c.GetString("userID"))
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, mapSlice(ps, toProcessView), "recruitment processes", gin.H{"count": len(ps)})
}

func (h *RecruitmentProcessHandler) InProgress(c *gin.Context) {
	h.transition(c, h.Svc.InProgress, "recruitment process in progress")
}

func (h *RecruitmentProcessHandler) Pass(c *gin.Context) {
	h.transition(c, h.Svc.Pass, "recruitment process passed")
}

func (h *RecruitmentProcessHandler) Cancel(c *gin.Context) {
	h.transition(c, h.Svc.Cancel, "recruitment process canceled")
}

func (h *RecruitmentProcessHandler) Fail(c *gin.Context) {
	h.transition(c, h.Svc.Fail, "recruitment process failed")
}

type processTransition func(ctx context.Context, processID, teamID, leaderID string) (*entity.RecruitmentProcess, error)

func (h *RecruitmentProcessHandler) transition(c *gin.Context, fn processTransition, msg string) {
	var ref teamRef
	if err := c.ShouldBind(&ref); err != nil {
		badPayload(c, err)
		return
	}
	p, err := fn(c.Request.Context(), c.Param("id"), ref.TeamID, c.GetString("userID"))
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, toProcessView(p), msg, nil)
}
