package identity

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/blake2b"

	"github.com/99minutos/admin-users/internal/core/domain"
)

// sessionReader is the subset of the Redis client the provider needs.
type sessionReader interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

// RedisSessionProvider resolves credentials from a server-side session.
// Key format: session:<hex blake2b-256 of the cookie value>
type RedisSessionProvider struct {
	client sessionReader
	cookie string
}

func NewRedisSessionProvider(client sessionReader, cookie string) *RedisSessionProvider {
	return &RedisSessionProvider{client: client, cookie: cookie}
}

// SessionKey returns the Redis key under which the session for id is stored.
func SessionKey(id string) string {
	sum := blake2b.Sum256([]byte(id))
	return "session:" + hex.EncodeToString(sum[:])
}

func (p *RedisSessionProvider) ResolveCredential(r *http.Request) (*domain.Credential, error) {
	c, err := r.Cookie(p.cookie)
	if err != nil || c.Value == "" {
		return nil, nil
	}

	raw, err := p.client.Get(r.Context(), SessionKey(c.Value)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("session lookup: %w", err)
	}

	var cred domain.Credential
	if err := json.Unmarshal(raw, &cred); err != nil {
		return nil, fmt.Errorf("%w: decode session: %v", domain.ErrInvalidToken, err)
	}
	if cred.Subject == "" {
		return nil, fmt.Errorf("%w: session without subject", domain.ErrInvalidToken)
	}
	return &cred, nil
}
