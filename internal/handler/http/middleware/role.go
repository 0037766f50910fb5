package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/peopleops-dev/hr-backend-go/internal/domain/user"
	"github.com/peopleops-dev/hr-backend-go/internal/handler/http/response"
)

// RequireAdmin requires admin or owner role
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, ok := roleFromClaims(r)
		if !ok || (role != user.RoleAdmin && role != user.RoleOwner) {
			response.HandleError(w, user.ErrAdminAccessRequired)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireManager requires manager, admin or owner role
func RequireManager(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, ok := roleFromClaims(r)
		if !ok || (role != user.RoleManager && role != user.RoleAdmin && role != user.RoleOwner) {
			response.HandleError(w, user.ErrManagerAccessRequired)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func roleFromClaims(r *http.Request) (user.Role, bool) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", false
	}
	roleStr, ok := claims["role"].(string)
	if !ok {
		return "", false
	}
	role := user.Role(roleStr)
	return role, role.Valid()
}
