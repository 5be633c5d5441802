package repos

import (
	"net/http"

	"github.com/codesentinel/server/internal/actions"
	"github.com/codesentinel/server/internal/errors"
	"github.com/gin-gonic/gin"
)

// ListHandler godoc
// @Summary List repositories
// @Description List the authenticated user's repositories, most recently updated first
// @Tags repos
// @Accept json
// @Produce json
// @Param request body ListRequest true "GitHub access token"
// @Success 200 {object} actions.Envelope[[]actions.Repository]
// @Router /api/v1/repos/list [post]
// @Security BearerAuth
func ListHandler(svc *actions.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ListRequest

		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		// an empty token is a legitimate envelope failure, not a 400:
		// the service short-circuits before any network call
		c.JSON(http.StatusOK, svc.ListRepositories(c.Request.Context(), req.Token))
	}
}

// ScanHandler godoc
// @Summary Scan a repository
// @Description Locate the repository's entry-point file and run security analysis on it
// @Tags repos
// @Accept json
// @Produce json
// @Param request body ScanRequest true "Repository to scan"
// @Success 200 {object} actions.Envelope[*actions.ScanData]
// @Failure 400 {object} errors.ErrorResponse
// @Router /api/v1/repos/scan [post]
// @Security BearerAuth
func ScanHandler(svc *actions.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ScanRequest

		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		c.JSON(http.StatusOK, svc.ScanRepository(c.Request.Context(), req.Owner, req.Repo, req.Token))
	}
}
