package geminimcp

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/viant/mcp-protocol/authorization"
)

// aiStudioTokenPrefix is the shape of Google AI Studio API keys; tokens that
// do not match are rejected before reaching the upstream API.
const aiStudioTokenPrefix = "AI"

// BearerAuth extracts the Bearer token from the Authorization header of each
// request and stashes it in the request context, where the per-request key
// provider picks it up. It does not verify the token against the upstream API;
// a rejected key surfaces later from the generation call.
func BearerAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			unauthorized(w, "Authorization header missing")
			return
		}
		parts := strings.Fields(header)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			unauthorized(w, "Invalid Authorization header. Must be 'Bearer <token>'")
			return
		}
		token := parts[1]
		if !strings.HasPrefix(token, aiStudioTokenPrefix) {
			unauthorized(w, "Invalid token. Must be a AI Studio token")
			return
		}
		ctx := context.WithValue(r.Context(), authorization.TokenKey, &authorization.Token{Token: token})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func unauthorized(w http.ResponseWriter, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"detail": detail})
}
