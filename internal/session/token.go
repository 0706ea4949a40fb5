package session

import (
	"crypto/rand"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/idilsaglam/tasktracker/internal/model"
)

// Claims is the payload of a session token.
type Claims struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	Slot     int    `json:"slot"`
	jwt.RegisteredClaims
}

// signer issues and checks HS256 tokens with a key that lives only as long as
// the process.
type signer struct {
	key []byte
}

func newSigner() (*signer, error) {
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("generate signing key: %w", err)
	}
	return &signer{key: key}, nil
}

func (s *signer) issue(u model.User, slot int) (string, error) {
	claims := &Claims{
		UserID:   u.ID,
		Username: u.Username,
		Slot:     slot,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  u.ID,
			Issuer:   "tada",
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.key)
}

func (s *signer) verify(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(*jwt.Token) (interface{}, error) {
		return s.key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("parse session token: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid session token")
	}
	return claims, nil
}
