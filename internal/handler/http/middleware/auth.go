package middleware

import (
	"context"
	"net/http"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-backend-go/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

// Claims is the caller identity carried by an access token.
type Claims struct {
	UserID     string
	EmployeeID string
	Role       employee.Role
}

// CanAccess reports whether the caller may read data owned by employeeID.
func (c Claims) CanAccess(employeeID string) bool {
	return c.EmployeeID == employeeID || c.Role.IsManager()
}

type claimsKey struct{}

func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, _, err := jwtauth.FromContext(r.Context())

			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}

			if token == nil {
				response.Unauthorized(w, "Invalid token")
				return
			}

			claims, err := token.AsMap(r.Context())
			if err != nil {
				response.Unauthorized(w, "Invalid token")
				return
			}
			tokenType, ok := claims["type"].(string)
			if tokenType != "access" || !ok {
				response.Unauthorized(w, "Invalid token")
				return
			}

			employeeID, _ := claims["employee_id"].(string)
			if employeeID == "" {
				response.HandleError(w, employee.ErrEmployeeClaimRequired)
				return
			}
			userID, _ := claims["user_id"].(string)
			role, _ := claims["role"].(string)

			ctx := context.WithValue(r.Context(), claimsKey{}, Claims{
				UserID:     userID,
				EmployeeID: employeeID,
				Role:       employee.Role(role),
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		}
		return http.HandlerFunc(hfn)
	}
}

// ClaimsFromContext returns the identity stored by AuthRequired.
func ClaimsFromContext(ctx context.Context) (Claims, bool) {
	c, ok := ctx.Value(claimsKey{}).(Claims)
	return c, ok
}
