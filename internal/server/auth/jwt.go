// Package auth issues and verifies the HS256 access tokens used by the
// HTTP layer to bind requests to a user.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dmitrijs2005/studynotes/internal/common"
)

// Claims carries the standard registered claims plus the owning user's id.
type Claims struct {
	jwt.RegisteredClaims
	UserID int64
}

func GenerateToken(userID int64, secretKey []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
		},
		UserID: userID,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// GetUserIDFromToken parses and verifies tokenString and returns the UserID
// claim. Expired, tampered, or otherwise invalid tokens yield
// common.ErrInvalidToken.
func GetUserIDFromToken(tokenString string, secretKey []byte) (int64, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secretKey, nil
	})
	if err != nil {
		return 0, common.ErrInvalidToken
	}

	if !token.Valid || claims.UserID == 0 {
		return 0, common.ErrInvalidToken
	}

	return claims.UserID, nil
}
