package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"go-resume-backend/config"
	"go-resume-backend/internal/delivery/http/response"
	"go-resume-backend/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware authenticates every request on the protected groups.
// Two credential forms are accepted:
//
//   - HTTP Basic, username = user id, password = the generated API
//     password, verified against the remote user-service.
//   - The auth_token session cookie issued by the web login (HS256).
//
// On success the resolved identity is stored both in gin keys and in the
// request context, so downstream gin handlers and the GraphQL resolvers
// see the same values.
func AuthMiddleware(cfg *config.Config, authUC domain.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")

		var userID, email string
		switch {
		case strings.HasPrefix(authHeader, "Basic "):
			username, password, ok := c.Request.BasicAuth()
			if !ok {
				response.Error(c, http.StatusUnauthorized, "Malformed Basic credentials", nil)
				c.Abort()
				return
			}
			user, err := authUC.AuthenticateAPI(c.Request.Context(), authHeader, username, password)
			if err != nil {
				response.Error(c, http.StatusUnauthorized, "Invalid credentials", nil)
				c.Abort()
				return
			}
			userID = user.ID
			email = user.Email

		default:
			cookie, err := c.Cookie("auth_token")
			if err != nil || cookie == "" {
				response.Error(c, http.StatusUnauthorized, "Authorization header or auth_token cookie required", nil)
				c.Abort()
				return
			}
			token, err := jwt.Parse(cookie, func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
				}
				return []byte(cfg.JWTSecret), nil
			})
			if err != nil || !token.Valid {
				response.Error(c, http.StatusUnauthorized, "Invalid session", nil)
				c.Abort()
				return
			}
			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				response.Error(c, http.StatusUnauthorized, "Invalid claims", nil)
				c.Abort()
				return
			}
			userID, _ = claims["sub"].(string)
			email, _ = claims["email"].(string)
			if userID == "" {
				response.Error(c, http.StatusUnauthorized, "Invalid session", nil)
				c.Abort()
				return
			}
		}

		c.Set(string(domain.KeyUserID), userID)
		c.Set(string(domain.KeyUserEmail), email)
		c.Set(string(domain.KeyAuthHeader), authHeader)

		ctx := context.WithValue(c.Request.Context(), domain.KeyUserID, userID)
		ctx = context.WithValue(ctx, domain.KeyUserEmail, email)
		ctx = context.WithValue(ctx, domain.KeyAuthHeader, authHeader)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
