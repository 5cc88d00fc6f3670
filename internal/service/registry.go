package service

import (
	"sync"

	"github.com/google/uuid"
)

// TokenRegistry holds outstanding one-time registration tokens. Tokens live
// only in process memory, so a restart invalidates anything not yet consumed.
type TokenRegistry struct {
	mu     sync.Mutex
	tokens map[string]struct{}
}

func NewTokenRegistry() *TokenRegistry {
	return &TokenRegistry{tokens: make(map[string]struct{})}
}

// Issue mints a new token and records it as outstanding. There is no cap on
// outstanding tokens and no expiry.
func (r *TokenRegistry) Issue() string {
	token := uuid.NewString()
	r.mu.Lock()
	r.tokens[token] = struct{}{}
	r.mu.Unlock()
	return token
}

// Consume atomically removes token from the outstanding set and reports
// whether it was present. At most one caller wins a given token.
func (r *TokenRegistry) Consume(token string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tokens[token]; !ok {
		return false
	}
	delete(r.tokens, token)
	return true
}

// Restore puts a consumed token back, so a registration that fails after
// consuming it does not burn the token.
func (r *TokenRegistry) Restore(token string) {
	r.mu.Lock()
	r.tokens[token] = struct{}{}
	r.mu.Unlock()
}
