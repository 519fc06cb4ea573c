package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/peoplehub/hrm-backend-go/internal/domain/auth"
	"github.com/peoplehub/hrm-backend-go/internal/domain/user"
	"github.com/peoplehub/hrm-backend-go/internal/handler/http/response"
)

func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, _, err := jwtauth.FromContext(r.Context())

			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}

			if token == nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			claims, err := token.AsMap(r.Context())
			if err != nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}
			tokenType, ok := claims["type"].(string)
			if tokenType != "access" || !ok {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}

// CallerFromRequest builds the authenticated caller identity from the
// verified token claims.
func CallerFromRequest(r *http.Request) (auth.Caller, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return auth.Caller{}, auth.ErrInvalidToken
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return auth.Caller{}, auth.ErrInvalidToken
	}

	role, _ := claims["role"].(string)

	caller := auth.Caller{
		UserID: userID,
		Role:   user.Role(role),
	}

	if employeeID, ok := claims["employee_id"].(string); ok && employeeID != "" {
		caller.EmployeeID = &employeeID
	}

	return caller, nil
}
