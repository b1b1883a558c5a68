package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrTokenExpired el token de la API ya venció.
var ErrTokenExpired = errors.New("jwt: token expirado")

// Claims claims que la API de backend incluye en el token de sesión.
// UserID cae a Subject cuando la API no envía user_id.
type Claims struct {
	jwt.RegisteredClaims
	UserID   string `json:"user_id,omitempty"`
	UserName string `json:"unique_name,omitempty"`
	Email    string `json:"email,omitempty"`
	Role     string `json:"role,omitempty"`
}

// ID devuelve el identificador del usuario (user_id o sub).
func (c *Claims) ID() string {
	if c.UserID != "" {
		return c.UserID
	}
	return c.Subject
}

// Generate firma un token HS256 con la identidad dada. La API real emite sus
// propios tokens; esto sirve para entornos locales y tests.
func Generate(secret, userID, userName, email, role, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		UserID:   userID,
		UserName: userName,
		Email:    email,
		Role:     role,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse lee los claims del token de la API. Con secret verifica la firma HMAC;
// sin secret solo decodifica (la API sigue siendo quien valida el token) pero
// igual rechaza tokens expirados.
func Parse(secret, tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, fmt.Errorf("jwt: token vacío")
	}
	claims := &Claims{}
	if secret == "" {
		if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
			return nil, fmt.Errorf("jwt: token malformado: %w", err)
		}
		if claims.ExpiresAt != nil && time.Now().After(claims.ExpiresAt.Time) {
			return nil, ErrTokenExpired
		}
		return claims, nil
	}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("claims inválidos")
	}
	return claims, nil
}
