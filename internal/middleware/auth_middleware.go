package middleware

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/Yosefnago/emp-backend/internal/shared/apperror"
	"github.com/Yosefnago/emp-backend/internal/shared/contextutil"
	"github.com/Yosefnago/emp-backend/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenString string

		authHeader := c.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found {
			tokenString = ""
		}

		if tokenString == "" {
			if cookie, err := c.Cookie("access_token"); err == nil {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Token not found", nil)
			c.Abort()
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return []byte(os.Getenv("JWT_SECRET")), nil
		})

		if err != nil || !token.Valid {
			errObj := apperror.ErrInvalidToken
			if err != nil && strings.Contains(err.Error(), "expired") {
				errObj = apperror.ErrTokenExpired
			}
			response.Error(c, errObj.HTTPStatus, errObj.Code, errObj.Message, nil)
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "Invalid token claims", nil)
			c.Abort()
			return
		}

		// Username adalah pemilik data (akuntan/perusahaan) pada semua query payroll.
		username, ok := claims["username"].(string)
		if !ok || username == "" {
			response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "Username not found in token", nil)
			c.Abort()
			return
		}

		c.Set("username", username)

		ctx := contextutil.WithUsername(c.Request.Context(), username)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
