package gemini

import (
	"context"
	"os"
	"strings"

	"github.com/viant/mcp-protocol/authorization"
)

// EnvAPIKey is the environment variable holding the process-wide API key used
// by the stdio transport.
const EnvAPIKey = "GEMINI_API_KEY"

// KeyProvider resolves the Gemini API key for a request. The two transports
// differ deliberately: stdio uses one process-wide key, HTTP uses the Bearer
// token of each incoming request.
type KeyProvider interface {
	APIKey(ctx context.Context) (string, error)
}

// EnvKey resolves a process-wide API key from an environment variable.
type EnvKey struct {
	Name string
}

// NewEnvKey returns a provider reading the default environment variable.
func NewEnvKey() *EnvKey {
	return &EnvKey{Name: EnvAPIKey}
}

func (p *EnvKey) APIKey(_ context.Context) (string, error) {
	key := os.Getenv(p.Name)
	if key == "" {
		return "", &AuthError{Message: p.Name + " not set"}
	}
	return key, nil
}

// ContextKey resolves a per-request API key from the authorization token the
// HTTP middleware stashed in the request context.
type ContextKey struct{}

func (p *ContextKey) APIKey(ctx context.Context) (string, error) {
	value := ctx.Value(authorization.TokenKey)
	token, ok := value.(*authorization.Token)
	if !ok || token == nil || token.Token == "" {
		return "", &AuthError{Message: "bearer token not found in request context"}
	}
	key := token.Token
	if len(key) > 7 && strings.EqualFold(key[:7], "bearer ") {
		key = strings.TrimSpace(key[7:])
	}
	return key, nil
}
