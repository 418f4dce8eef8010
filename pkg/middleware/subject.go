package middleware

import (
	"context"
	"net/http"
	"strings"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

const (
	// SubjectKey is the context key for the current user's display name
	SubjectKey ContextKey = "subject"

	// DefaultSubject is used when the request carries no identity. There is
	// no account system; balances and insights are keyed by display name.
	DefaultSubject = "You"
)

// SubjectMiddleware resolves the current user's display name from the
// X-Subject header and stores it on the request context. Requests without
// the header act as the default subject.
func SubjectMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		subject := strings.TrimSpace(r.Header.Get("X-Subject"))
		if subject == "" {
			subject = DefaultSubject
		}

		ctx := context.WithValue(r.Context(), SubjectKey, subject)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetSubject extracts the current user's display name from the context.
func GetSubject(ctx context.Context) string {
	if subject, ok := ctx.Value(SubjectKey).(string); ok && subject != "" {
		return subject
	}
	return DefaultSubject
}
