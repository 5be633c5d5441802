package admin

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// the guard paths return before the repository is touched, so a nil repo
// is safe here; reaching it would panic and fail the test loudly
func updateAccessRouter(adminID string) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.PUT("/users/:id/access", func(c *gin.Context) {
		c.Set("user_id", adminID)
		c.Set("is_admin", true)
	}, UpdateAccessHandler(nil))

	return router
}

func TestUpdateAccessHandler_SelfRevokeRejected(t *testing.T) {
	router := updateAccessRouter("admin-1")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/users/admin-1/access",
		strings.NewReader(`{"status":"inactive"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "cannot revoke their own access")
}

func TestUpdateAccessHandler_InvalidStatusRejected(t *testing.T) {
	router := updateAccessRouter("admin-1")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/users/user-2/access",
		strings.NewReader(`{"status":"suspended"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateAccessHandler_MissingStatusRejected(t *testing.T) {
	router := updateAccessRouter("admin-1")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/users/user-2/access",
		strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
