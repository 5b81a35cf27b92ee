package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pagelens/clarity-scan/internal/domain/clarity"
	apperrors "github.com/pagelens/clarity-scan/pkg/errors"
)

// Handler wires the HTTP transport to the clarity domain.
type Handler struct {
	claritySvc clarity.Service
	logger     *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(claritySvc clarity.Service, logger *slog.Logger) *Handler {
	return &Handler{
		claritySvc: claritySvc,
		logger:     logger.With("component", "http.handler"),
	}
}

// Analyze scores a page's clarity. Fetch and LLM failures are absorbed into
// fallback scores inside the domain, so any well-formed body yields a 200
// with a structurally complete report.
func (h *Handler) Analyze(c *gin.Context) {
	var req clarity.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	report, err := h.claritySvc.Analyze(c.Request.Context(), req)
	if err != nil {
		status := http.StatusInternalServerError
		code := "analysis_failed"
		switch {
		case apperrors.IsCode(err, "invalid_input"):
			status = http.StatusBadRequest
			code = "invalid_request"
		case apperrors.IsCode(err, "page_fetch_error"):
			status = http.StatusBadGateway
			code = "page_fetch_error"
		case apperrors.IsCode(err, "llm_error"):
			status = http.StatusBadGateway
			code = "llm_error"
		}
		abortWithError(c, NewHTTPError(status, code, errMessage(err), err))
		return
	}

	c.JSON(http.StatusOK, report)
}

// Health reports liveness.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
