package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/heartmarshall/lawdesk-backend/internal/domain"
	"github.com/heartmarshall/lawdesk-backend/pkg/ctxutil"
)

type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (domain.Caller, error)
}

// Auth classifies the caller from the bearer token. A missing or unverifiable
// token leaves the request anonymous; endpoints decide whether that is enough.
func Auth(logger *slog.Logger, validator tokenValidator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r) // Anonymous
				return
			}

			caller, err := validator.ValidateToken(r.Context(), token)
			if err != nil {
				logger.DebugContext(r.Context(), "token rejected", slog.String("error", err.Error()))
				next.ServeHTTP(w, r)
				return
			}

			ctx := ctxutil.WithCaller(r.Context(), caller)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractBearerToken(r *http.Request) string {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
