package helpers

import (
	"errors"
	"time"

	"go-resto-manager/models"

	"github.com/dgrijalva/jwt-go"
)

type SignedDetails struct {
	Username string      `json:"username"`
	UserID   uint        `json:"userId"`
	Role     models.Role `json:"role"`
	jwt.StandardClaims
}

var secretKey []byte

// Init sets the signing secret; called once from main with the loaded
// configuration.
func Init(secret string) {
	secretKey = []byte(secret)
}

func GenerateAllTokens(user *models.User) (signedToken string, refreshSignedToken string, err error) {
	claims := SignedDetails{
		Username: user.Username,
		UserID:   user.ID,
		Role:     user.Role,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(24 * time.Hour).Unix(),
		},
	}
	refreshClaims := SignedDetails{
		UserID: user.ID,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(7 * 24 * time.Hour).Unix(),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secretKey)
	if err != nil {
		return "", "", err
	}
	refreshToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims).SignedString(secretKey)
	if err != nil {
		return "", "", err
	}
	return token, refreshToken, nil
}

func ValidateToken(signedToken string) (*SignedDetails, error) {
	token, err := jwt.ParseWithClaims(
		signedToken,
		&SignedDetails{},
		func(t *jwt.Token) (interface{}, error) {
			return secretKey, nil
		},
	)
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*SignedDetails)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.ExpiresAt < time.Now().Unix() {
		return nil, errors.New("token is expired")
	}
	return claims, nil
}
