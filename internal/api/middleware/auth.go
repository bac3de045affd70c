package middleware

import (
	"net/http"
	"strings"

	"github.com/JMacalaguing/DynaHCare-V2/internal/repository"
	"github.com/JMacalaguing/DynaHCare-V2/pkg/response"
	"github.com/JMacalaguing/DynaHCare-V2/pkg/utils"
	"github.com/gin-gonic/gin"
)

// Auth handles authentication and authorization middleware.
type Auth struct {
	repos *repository.Repos
}

func NewAuth(repos *repository.Repos) *Auth {
	return &Auth{repos: repos}
}

// TokenRequired validates the bearer token: signature plus presence in the
// auth_tokens table, so a token deleted server-side stops working even before
// it expires.
func (a *Auth) TokenRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Authorization required"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Authorization header format must be Bearer {token}"})
			return
		}
		tokenStr := parts[1]

		claims, err := ParseToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Invalid token: " + err.Error()})
			return
		}

		if _, err := a.repos.Token.GetTokenByKey(tokenStr); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Token is not active"})
			return
		}

		c.Set("claims", claims)
		c.Next()
	}
}

// Admin requires the authenticated user to carry the administrator flag. The
// flag is re-read from the store rather than trusted from the claims.
func (a *Auth) Admin() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := utils.GetClaimsFromContext(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
			return
		}

		usr, err := a.repos.User.GetUserByID(claims.UserID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
			return
		}
		if !usr.IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, response.ErrorResponse{Error: "admin only"})
			return
		}

		c.Next()
	}
}
