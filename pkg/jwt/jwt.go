package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims de la cookie de sesión de la consola. Solo transporta el id de
// la sesión server-side: el token bearer de la plataforma nunca viaja al
// navegador. La firma HS256 hace la referencia a prueba de manipulación.
type Claims struct {
	jwt.RegisteredClaims
	SesionID string `json:"sid"`
}

// Generate firma un token con el id de sesión. Con expMinutes en 0 el
// token no lleva claim de expiración (la sesión no caduca sola).
func Generate(secret, sesionID, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	if sesionID == "" {
		return "", fmt.Errorf("jwt: sesionID vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:   issuer,
			IssuedAt: jwt.NewNumericDate(now),
		},
		SesionID: sesionID,
	}
	if expMinutes > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute))
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida la firma y devuelve el id de sesión.
// Retorna error si el token es inválido, expirado o de otra firma.
func Parse(secret, tokenString string) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.SesionID == "" {
		return "", fmt.Errorf("claims inválidos")
	}
	return claims.SesionID, nil
}
