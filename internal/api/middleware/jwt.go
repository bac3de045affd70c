package middleware

import (
	"time"

	"github.com/JMacalaguing/DynaHCare-V2/internal/config"
	"github.com/JMacalaguing/DynaHCare-V2/internal/domain/account"
	"github.com/JMacalaguing/DynaHCare-V2/pkg/types"
	"github.com/golang-jwt/jwt/v5"
)

var jwtKey []byte

func Init() {
	jwtKey = []byte(config.JwtSecret)
}

// GenerateToken mints a signed bearer token for the user. The token is stored
// in auth_tokens afterwards and reused across logins until it expires.
var GenerateToken = func(usr account.User, expireDuration time.Duration) (string, error) {
	claims := &types.Claims{
		UserID:  usr.ID,
		Email:   usr.Email,
		IsAdmin: usr.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expireDuration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    config.Issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtKey)
}

func ParseToken(tokenStr string) (*types.Claims, error) {
	claims := &types.Claims{}

	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return jwtKey, nil
	})

	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}

	return claims, nil
}
