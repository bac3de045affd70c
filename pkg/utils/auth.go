package utils

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"

	"github.com/JMacalaguing/DynaHCare-V2/pkg/types"
	"github.com/gin-gonic/gin"
)

var GetClaimsFromContext = func(c *gin.Context) (*types.Claims, error) {
	claimsVal, exists := c.Get("claims")
	if !exists {
		return nil, errors.New("user claims not found in context")
	}

	claims, ok := claimsVal.(*types.Claims)
	if !ok {
		return nil, errors.New("invalid user claims type")
	}

	return claims, nil
}

// GenerateResetCode returns a 6-digit numeric one-time code.
var GenerateResetCode = func() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
