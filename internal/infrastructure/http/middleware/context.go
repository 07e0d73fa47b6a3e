package middleware

import "context"

type contextKey string

const subjectContextKey contextKey = "subject"

// WithSubject injects the verified token subject into the context.
func WithSubject(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, subjectContextKey, userID)
}

// SubjectFromContext returns the verified token subject, or "" when the
// request was not authenticated.
func SubjectFromContext(ctx context.Context) string {
	v := ctx.Value(subjectContextKey)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
