package identity

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/99minutos/admin-users/internal/core/domain"
)

// tokenClaims is the claim set issued by the identity provider.
type tokenClaims struct {
	Role string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// JWTProvider resolves credentials from an HS256 bearer token.
type JWTProvider struct {
	secret []byte
	parser *jwt.Parser
}

func NewJWTProvider(secret string) *JWTProvider {
	return &JWTProvider{
		secret: []byte(secret),
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithExpirationRequired(),
		),
	}
}

// ResolveCredential returns (nil, nil) when no bearer token is present.
func (p *JWTProvider) ResolveCredential(r *http.Request) (*domain.Credential, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return nil, nil
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return nil, nil
	}

	var claims tokenClaims
	tkn, err := p.parser.ParseWithClaims(strings.TrimSpace(parts[1]), &claims, func(*jwt.Token) (interface{}, error) {
		return p.secret, nil
	})
	if err != nil || !tkn.Valid {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidToken, err)
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: missing subject", domain.ErrInvalidToken)
	}

	return &domain.Credential{Subject: claims.Subject, Role: claims.Role}, nil
}
