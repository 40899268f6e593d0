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

type ResumeHandler struct {
	Svc    *application.ResumeService
	Logger *logrus.Logger
}

func NewResumeHandler(svc *application.ResumeService, logger *logrus.Logger) *ResumeHandler {
	return &ResumeHandler{Svc: svc, Logger: logger}
}

type resumeRequest struct {
	Title           string `json:"title" binding:"required,notblank,max=200"`
	Content         string `json:"content" binding:"required,notblank"`
	TrainingHistory string `json:"training_history"`
}

func (r resumeRequest) input() application.ResumeInput {
	return application.ResumeInput{Title: r.Title, Content: r.Content, TrainingHistory: r.TrainingHistory}
}

func (h *ResumeHandler) Create(c *gin.Context) {
	var req resumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badPayload(c, err)
		return
	}
	r, err := h.Svc.Create(c.Request.Context(), c.GetString("userID"), req.input())
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, toResumeView(r), "resume created", nil)
}

func (h *ResumeHandler) List(c *gin.Context) {
	rs, err := h.Svc.ListByUser(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, mapSlice(rs, toResumeView), "resumes", gin.H{"count": len(rs)})
}

func (h *ResumeHandler) Get(c *gin.Context) {
	r, err := h.Svc.Get(c.Request.Context(), c.Param("id"), c.GetString("userID"))
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, toResumeView(r), "resume", nil)
}

func (h *ResumeHandler) Update(c *gin.Context) {
	var req resumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badPayload(c, err)
		return
	}
	r, err := h.Svc.Update(c.Request.Context(), c.Param("id"), c.GetString("userID"), req.input())
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, toResumeView(r), "resume updated", nil)
}

func (h *ResumeHandler) Activate(c *gin.Context) {
	h.transition(c, h.Svc.Activate, "resume activated")
}

func (h *ResumeHandler) Inactivate(c *gin.Context) {
	h.transition(c, h.Svc.Inactivate, "resume inactivated")
}

func (h *ResumeHandler) Delete(c *gin.Context) {
	h.transition(c, h.Svc.Delete, "resume deleted")
}

type resumeTransition func(ctx context.Context, resumeID, userID string) (*entity.Resume, error)

func (h *ResumeHandler) transition(c *gin.Context, fn resumeTransition, msg string) {
	r, err := fn(c.Request.Context(), c.Param("id"), c.GetString("userID"))
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, toResumeView(r), msg, nil)
}
