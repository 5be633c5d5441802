package analyze

import (
	"net/http"

	"github.com/codesentinel/server/internal/actions"
	"github.com/codesentinel/server/internal/errors"
	"github.com/gin-gonic/gin"
)

// Handler godoc
// @Summary Analyze pasted code
// @Description Run AI-assisted security analysis on a pasted code sample
// @Tags analyze
// @Accept json
// @Produce json
// @Param request body Request true "Code to analyze"
// @Success 200 {object} actions.Envelope[*actions.Result]
// @Failure 400 {object} errors.ErrorResponse
// @Router /api/v1/analyze [post]
// @Security BearerAuth
func Handler(svc *actions.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req Request

		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		// the envelope is the contract: outcomes travel as
		// success/failure inside a 200, never as exception-shaped
		// status codes
		c.JSON(http.StatusOK, svc.Analyze(c.Request.Context(), req.Code, req.Language))
	}
}
