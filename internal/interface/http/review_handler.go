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

type ReviewHandler struct {
	Svc    *application.ReviewService
	Logger *logrus.Logger
}

func NewReviewHandler(svc *application.ReviewService, logger *logrus.Logger) *ReviewHandler {
	return &ReviewHandler{Svc: svc, Logger: logger}
}

type createReviewRequest struct {
	TeamID  string `json:"team_id" binding:"required"`
	Content string `json:"content" binding:"required,notblank,max=2000"`
	Score   int64  `json:"score" binding:"required,score"`
}

type updateReviewRequest struct {
	Content string `json:"content" binding:"required,notblank,max=2000"`
	Score   int64  `json:"score" binding:"required,score"`
}

// reviewResult carries the team alongside the review so clients see the new average.
type reviewResult struct {
	Review reviewView `json:"review"`
	Team   teamView   `json:"team"`
}

func (h *ReviewHandler) Create(c *gin.Context) {
	var req createReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badPayload(c, err)
		return
	}
	r, t, err := h.Svc.Create(c.Request.Context(), c.GetString("userID"), req.TeamID, req.Content, req.Score)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, reviewResult{toReviewView(r), toTeamView(t)}, "review created", nil)
}

func (h *ReviewHandler) Update(c *gin.Context) {
	var req updateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badPayload(c, err)
		return
	}
	r, t, err := h.Svc.Update(c.Request.Context(), c.Param("id"), c.GetString("userID"), req.Content, req.Score)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, reviewResult{toReviewView(r), toTeamView(t)}, "review updated", nil)
}

func (h *ReviewHandler) Activate(c *gin.Context) {
	h.transition(c, h.Svc.Activate, "review activated")
}

func (h *ReviewHandler) Inactivate(c *gin.Context) {
	h.transition(c, h.Svc.Inactivate, "review inactivated")
}

type reviewTransition func(ctx context.Context, reviewID, userID string) (*entity.Review, *entity.Team, error)

func (h *ReviewHandler) transition(c *gin.Context, fn reviewTransition, msg string) {
	r, t, err := fn(c.Request.Context(), c.Param("id"), c.GetString("userID"))
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, reviewResult{toReviewView(r), toTeamView(t)}, msg, nil)
}
