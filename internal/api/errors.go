package api

import (
	"github.com/gin-gonic/gin"

	"rentnest/server/internal/apperrors"
)

// renderError maps a failure to the transport. Business failures
// (NotFound, Unauthorized, InvalidArgument) keep their own status codes so
// callers can tell them apart from infrastructure faults; the underlying
// cause is logged but never sent to the client.
func (h *Handler) renderError(c *gin.Context, operation string, err error) {
	var domainErr *apperrors.Error
	if !apperrors.As(err, &domainErr) {
		domainErr = apperrors.Internal("something went wrong", err)
	}

	entry := h.logger.WithError(err).WithField("operation", operation)
	switch domainErr.Kind {
	case apperrors.KindInternal, apperrors.KindStoreUnavailable:
		entry.Error("Operation failed")
	default:
		entry.Debug("Operation rejected")
	}

	c.JSON(domainErr.HTTPStatus(), gin.H{
		"error": gin.H{
			"kind":    domainErr.Kind,
			"message": domainErr.Message,
		},
	})
}
