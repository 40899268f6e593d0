package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/job-recruitment/internal/application"
	"github.com/oksasatya/job-recruitment/pkg/response"
)

const maxLogoBytes = 2 << 20

type TeamHandler struct {
	Svc    *application.TeamService
	Logger *logrus.Logger
}

func NewTeamHandler(svc *application.TeamService, logger *logrus.Logger) *TeamHandler {
	return &TeamHandler{Svc: svc, Logger: logger}
}

type teamRequest struct {
	Name        string `json:"name" binding:"required,notblank,max=100"`
	Description string `json:"description" binding:"max=2000"`
	Logo        string `json:"logo" binding:"omitempty,url"`
	MemberNum   int64  `json:"member_num" binding:"gte=0"`
}

func (r teamRequest) input() application.TeamInput {
	return application.TeamInput{Name: r.Name, Description: r.Description, Logo: r.Logo, MemberNum: r.MemberNum}
}

func (h *TeamHandler) Create(c *gin.Context) {
	var req teamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badPayload(c, err)
		return
	}
	t, err := h.Svc.Create(c.Request.Context(), c.GetString("userID"), req.input())
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, toTeamView(t), "team created", nil)
}

func (h *TeamHandler) Get(c *gin.Context) {
	t, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, toTeamView(t), "team", nil)
}

func (h *TeamHandler) Update(c *gin.Context) {
	var req teamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badPayload(c, err)
		return
	}
	t, err := h.Svc.Update(c.Request.Context(), c.Param("id"), c.GetString("userID"), req.input())
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, toTeamView(t), "team updated", nil)
}

func (h *TeamHandler) Activate(c *gin.Context) {
	t, err := h.Svc.Activate(c.Request.Context(), c.Param("id"), c.GetString("userID"))
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, toTeamView(t), "team activated", nil)
}

func (h *TeamHandler) Inactivate(c *gin.Context) {
	t, err := h.Svc.Inactivate(c.Request.Context(), c.Param("id"), c.GetString("userID"))
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, toTeamView(t), "team inactivated", nil)
}

// UploadLogo accepts a multipart "logo" image of at most 2 MiB.
func (h *TeamHandler) UploadLogo(c *gin.Context) {
	fh, err := c.FormFile("logo")
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", gin.H{"logo": "is required"})
		return
	}
	if fh.Size > maxLogoBytes {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", gin.H{"logo": "must be at most 2MB"})
		return
	}
	contentType := fh.Header.Get("Content-Type")
	switch contentType {
	case "image/png", "image/jpeg", "image/webp":
	default:
		response.Error[any](c, http.StatusBadRequest, "invalid payload", gin.H{"logo": "must be a png, jpeg or webp image"})
		return
	}
	f, err := fh.Open()
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	defer f.Close()

	t, err := h.Svc.UploadLogo(c.Request.Context(), c.Param("id"), c.GetString("userID"), f, fh.Filename, contentType)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, toTeamView(t), "logo uploaded", nil)
}
