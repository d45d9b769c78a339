package middleware

import (
	"context"
	"crypto/subtle"
	"errors"
	"net/http"
	"strings"
)

// TokenVerifier abstracts the identity provider. The wallet gateway owns
// session management; this service only checks the bearer token it forwards.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (uid string, err error)
}

type Middleware struct {
	Verifier TokenVerifier
}

func NewMiddleware(verifier TokenVerifier) *Middleware {
	return &Middleware{Verifier: verifier}
}

// context key
type contextKey string

const UIDKey contextKey = "uid"

// BearerAuth extracts and verifies the Authorization header.
func (m *Middleware) BearerAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		header := r.Header.Get("Authorization")
		if header == "" {
			http.Error(w, "missing Authorization header", http.StatusUnauthorized)
			return
		}

		parts := strings.Fields(header)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			http.Error(w, "invalid Authorization header", http.StatusUnauthorized)
			return
		}

		uid, err := m.Verifier.Verify(r.Context(), parts[1])
		if err != nil {
			http.Error(w, "invalid or expired token", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), UIDKey, uid)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Helper to extract UID
func UID(ctx context.Context) string {
	uid, _ := ctx.Value(UIDKey).(string)
	return uid
}

// StaticVerifier accepts a single pre-shared token. Used when the service
// sits behind the wallet gateway rather than a full identity provider.
type StaticVerifier struct {
	Token string
}

func (v *StaticVerifier) Verify(_ context.Context, token string) (string, error) {
	if subtle.ConstantTimeCompare([]byte(token), []byte(v.Token)) != 1 {
		return "", errors.New("token mismatch")
	}
	return "gateway", nil
}
