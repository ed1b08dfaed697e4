package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token lifetimes.
const (
	AccessTokenTTL  = 24 * time.Hour
	RefreshTokenTTL = 7 * 24 * time.Hour
)

// TokenPair carries an access and a refresh token.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

var (
	ErrInvalidToken  = errors.New("invalid token")
	ErrMissingSecret = errors.New("jwt secret is not configured")
)

var jwtSecret []byte

// SetJWTSecret installs the signing key. Called once at startup from the
// loaded configuration; tokens cannot be minted or verified before that.
func SetJWTSecret(secret string) {
	jwtSecret = []byte(secret)
}

// GenerateTokenPair mints an access token and a refresh token for a user.
// Refresh tokens carry typ=refresh so they cannot be used as access tokens.
func GenerateTokenPair(userID string) (TokenPair, error) {
	if len(jwtSecret) == 0 {
		return TokenPair{}, ErrMissingSecret
	}

	now := time.Now()

	access := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"exp":     now.Add(AccessTokenTTL).Unix(),
	})
	accessString, err := access.SignedString(jwtSecret)
	if err != nil {
		return TokenPair{}, err
	}

	refresh := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"typ":     "refresh",
		"exp":     now.Add(RefreshTokenTTL).Unix(),
	})
	refreshString, err := refresh.SignedString(jwtSecret)
	if err != nil {
		return TokenPair{}, err
	}

	return TokenPair{Access: accessString, Refresh: refreshString}, nil
}

// ParseToken validates an HS256 token and returns its claims.
func ParseToken(tokenString string) (jwt.MapClaims, error) {
	if len(jwtSecret) == 0 {
		return nil, ErrMissingSecret
	}

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// ParseRefreshToken validates a refresh token and returns the user id.
func ParseRefreshToken(tokenString string) (string, error) {
	claims, err := ParseToken(tokenString)
	if err != nil {
		return "", err
	}
	if typ, _ := claims["typ"].(string); typ != "refresh" {
		return "", ErrInvalidToken
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", ErrInvalidToken
	}
	return userID, nil
}
