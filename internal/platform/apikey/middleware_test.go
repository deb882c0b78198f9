package apikey_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"vnquote/internal/platform/apikey"
)

func setupRouter(key string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(apikey.Required(key))
	r.GET("/protected", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func TestRequired(t *testing.T) {
	tests := []struct {
		name           string
		configuredKey  string
		headerValue    string
		sendHeader     bool
		expectedStatus int
	}{
		{"no key configured, no header", "", "", false, http.StatusOK},
		{"no key configured, header present", "", "whatever", true, http.StatusOK},
		{"key configured, exact match", "secret", "secret", true, http.StatusOK},
		{"key configured, wrong value", "secret", "wrong", true, http.StatusUnauthorized},
		{"key configured, empty header value", "secret", "", true, http.StatusUnauthorized},
		{"key configured, header absent", "secret", "", false, http.StatusUnauthorized},
		{"key configured, case differs", "secret", "SECRET", true, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupRouter(tt.configuredKey)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.sendHeader {
				req.Header.Set(apikey.Header, tt.headerValue)
			}
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusUnauthorized {
				assert.JSONEq(t, `{"error":"Unauthorized"}`, w.Body.String())
			}
		})
	}
}
