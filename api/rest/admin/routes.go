package admin

import (
	"github.com/codesentinel/server/codesentinel/users"
	"github.com/codesentinel/server/internal/auth"
	"github.com/gin-gonic/gin"
)

// registers admin panel routes; everything behind auth + admin checks
func RegisterRoutes(router *gin.RouterGroup, userRepo *users.Repository) {
	adminGroup := router.Group("/admin", auth.AuthMiddleware(), auth.AdminMiddleware())
	{
		adminGroup.GET("/users", ListUsersHandler(userRepo))
		adminGroup.PUT("/users/:id/access", UpdateAccessHandler(userRepo))
	}
}
