package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims เป็น custom JWT claims ที่เราจะใช้ในระบบ
type Claims struct {
	UserID   uint   `json:"userId"`
	Username string `json:"username"`
	Kind     string `json:"kind"` // access | refresh
	jwt.RegisteredClaims
}

// GenerateToken สร้าง JWT หนึ่งใบ
func GenerateToken(userID uint, username, kind, secret string, ttl time.Duration) (string, error) {
	claims := &Claims{
		UserID:   userID,
		Username: username,
		Kind:     kind,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// GenerateTokenPair ออก access token อายุสั้น + refresh token อายุยาว
func GenerateTokenPair(userID uint, username, secret string, accessTTL, refreshTTL time.Duration) (access, refresh string, err error) {
	access, err = GenerateToken(userID, username, "access", secret, accessTTL)
	if err != nil {
		return "", "", err
	}
	refresh, err = GenerateToken(userID, username, "refresh", secret, refreshTTL)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}
