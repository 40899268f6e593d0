package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/job-recruitment/internal/application"
	"github.com/oksasatya/job-recruitment/internal/domain/errs"
	"github.com/oksasatya/job-recruitment/pkg/response"
	"github.com/oksasatya/job-recruitment/pkg/validation"
)

func statusOf(err error) int {
	if errors.Is(err, application.ErrInvalidCredentials) {
		return http.StatusUnauthorized
	}
	switch errs.KindOf(err) {
	case errs.KindInvalidArgument:
		return http.StatusBadRequest
	case errs.KindInvalidState:
		return http.StatusConflict
	case errs.KindUnauthorized:
		return http.StatusForbidden
	case errs.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// fail writes err as an error envelope. Domain failures carry their kind and
// message; anything else is logged and reported as an internal error.
func fail(c *gin.Context, logger *logrus.Logger, err error) {
	status := statusOf(err)
	if status == http.StatusInternalServerError {
		logger.WithError(err).WithFields(logrus.Fields{
			"request_id": c.GetString("request_id"),
			"path":       c.FullPath(),
		}).Error("request failed")
		response.Error[any](c, status, "internal server error", nil)
		return
	}

	details := gin.H{"kind": errs.KindOf(err)}
	var de *errs.Error
	if errors.As(err, &de) && de.Code != "" {
		details["code"] = de.Code
	}
	if status == http.StatusUnauthorized {
		details = nil
	}
	response.Error[any](c, status, err.Error(), details)
}

func badPayload(c *gin.Context, err error) {
	response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
}
