package admin

import (
	"net/http"

	"github.com/codesentinel/server/codesentinel/users"
	"github.com/codesentinel/server/internal/auth"
	"github.com/codesentinel/server/internal/errors"
	"github.com/gin-gonic/gin"
)

// ListUsersHandler godoc
// @Summary List all users
// @Description Admin-only listing of every user record with subscription state
// @Tags admin
// @Produce json
// @Success 200 {object} UsersResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/v1/admin/users [get]
// @Security BearerAuth
func ListUsersHandler(userRepo *users.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		all, err := userRepo.ListAll(c.Request.Context())
		if err != nil {
			errors.InternalError(c, "failed to fetch users", err)
			return
		}

		c.JSON(http.StatusOK, UsersResponse{Users: all})
	}
}

// UpdateAccessHandler godoc
// @Summary Update a user's access
// @Description Admin-only toggle of a user's subscription status
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body UpdateAccessRequest true "New status"
// @Success 200 {object} UserResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/v1/admin/users/{id}/access [put]
// @Security BearerAuth
func UpdateAccessHandler(userRepo *users.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		targetID := c.Param("id")
		if targetID == "" {
			errors.BadRequest(c, "user id required", nil)
			return
		}

		var req UpdateAccessRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		// admins cannot revoke their own access
		adminID, _ := auth.GetUserID(c)
		if adminID == targetID && req.Status == users.SubscriptionInactive {
			errors.BadRequest(c, "admins cannot revoke their own access", nil)
			return
		}

		user, err := userRepo.UpdateSubscriptionStatus(c.Request.Context(), targetID, req.Status)
		if err != nil {
			errors.InternalError(c, "failed to update user access", err)
			return
		}

		c.JSON(http.StatusOK, UserResponse{User: user})
	}
}
