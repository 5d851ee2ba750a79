package middleware

import (
	"net/http"

	"flaskr/internal/auth"
)

// Auth returns a new auth middleware
func Auth(authService *auth.Service) func(http.Handler) http.Handler {
	return authService.RequireLogin
}
