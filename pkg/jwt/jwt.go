package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims claims del token de servicio que la consola presenta al API de inventario.
type Claims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

// ServiceRole rol con el que la consola se identifica ante el backend.
const ServiceRole = "admin"

// Generate genera un token JWT HS256 firmado para el sujeto indicado.
func Generate(secret, subject, issuer string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Role: ServiceRole,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// TokenSource entrega un token vigente, regenerándolo cuando está por expirar.
// No es seguro para uso concurrente sin sincronización externa; el gateway lo protege.
type TokenSource struct {
	secret  string
	subject string
	issuer  string
	ttl     time.Duration

	token   string
	expires time.Time
	now     func() time.Time
}

// NewTokenSource construye la fuente. ttl <= 0 usa 15 minutos.
func NewTokenSource(secret, subject, issuer string, ttl time.Duration) *TokenSource {
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	return &TokenSource{secret: secret, subject: subject, issuer: issuer, ttl: ttl, now: time.Now}
}

// Token devuelve el token cacheado o uno nuevo si quedan menos de 30 s de vigencia.
func (s *TokenSource) Token() (string, error) {
	now := s.now()
	if s.token != "" && now.Add(30*time.Second).Before(s.expires) {
		return s.token, nil
	}
	tok, err := Generate(s.secret, s.subject, s.issuer, s.ttl)
	if err != nil {
		return "", err
	}
	s.token = tok
	s.expires = now.Add(s.ttl)
	return tok, nil
}
