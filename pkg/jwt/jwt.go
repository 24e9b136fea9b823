package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims inclui os claims padrão JWT mais os campos próprios da aplicação.
// TipoUsuarioID acompanha o token para que o middleware do stub decida sem consultar o store.
type Claims struct {
	jwt.RegisteredClaims
	UsuarioID     int64  `json:"usuario_id"`
	Email         string `json:"email"`
	TipoUsuarioID int64  `json:"tipo_usuario_id"`
}

// Generate gera um token JWT assinado contendo usuarioID, email e tipoUsuarioID.
func Generate(secret string, usuarioID int64, email string, tipoUsuarioID int64, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vazio")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   fmt.Sprintf("%d", usuarioID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		UsuarioID:     usuarioID,
		Email:         email,
		TipoUsuarioID: tipoUsuarioID,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida o token e devolve usuarioID, email e tipoUsuarioID.
// Retorna erro se o token for inválido, expirado ou com assinatura incorreta.
func Parse(secret, tokenString string) (usuarioID int64, email string, tipoUsuarioID int64, err error) {
	if secret == "" {
		return 0, "", 0, fmt.Errorf("jwt: secret vazio")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de assinatura inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return 0, "", 0, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return 0, "", 0, fmt.Errorf("claims inválidos")
	}
	return claims.UsuarioID, claims.Email, claims.TipoUsuarioID, nil
}
