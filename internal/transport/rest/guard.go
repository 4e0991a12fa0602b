package rest

import (
	"net/http"

	"github.com/heartmarshall/lawdesk-backend/internal/auth"
	"github.com/heartmarshall/lawdesk-backend/pkg/ctxutil"
)

// guardFor picks the permission predicate for a request. Most routes use a
// fixed guard; self-or-admin routes derive it from the path.
type guardFor func(r *http.Request) auth.Guard

func always(g auth.Guard) guardFor {
	return func(*http.Request) auth.Guard { return g }
}

func selfOrAdmin(r *http.Request) auth.Guard {
	return auth.RequireSelfOrAdmin(r.PathValue("username"))
}

var (
	identified = always(auth.RequireIdentified)
	admin      = always(auth.RequireAdmin)
	public     guardFor
)

// guarded runs next only when the caller satisfies the guard; otherwise it
// answers 401 without touching the handler.
func guarded(gf guardFor, next http.HandlerFunc) http.HandlerFunc {
	if gf == nil {
		return next
	}
	return func(w http.ResponseWriter, r *http.Request) {
		if err := gf(r)(ctxutil.CallerFromCtx(r.Context())); err != nil {
			writeError(w, http.StatusUnauthorized, err.Error())
			return
		}
		next(w, r)
	}
}
