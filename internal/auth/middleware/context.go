package auth

import "context"

// Request-scoped identity. Only JWTMiddleware writes the subject (the
// users.id value from the token); handlers read it back to scope
// sessions to their owner.

type ctxKey int

const subjectKey ctxKey = iota

func WithSubject(ctx context.Context, sub string) context.Context {
	return context.WithValue(ctx, subjectKey, sub)
}

// SubjectFromContext returns the authenticated subject, or "" for an
// unauthenticated request.
func SubjectFromContext(ctx context.Context) string {
	sub, _ := ctx.Value(subjectKey).(string)
	return sub
}
