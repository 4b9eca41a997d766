package middleware

import (
	"net/http"

	"github.com/riteshp0/DinoKicks/internal/constants"
	"github.com/riteshp0/DinoKicks/internal/util"
)

// SessionMiddleware 把client的session token從header放進context
// 不在這裡核發新token: 只有GET /api/cart會鑄造session (見cart handler)
func SessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID := r.Header.Get(constants.SessionHeader)
		if sessionID != "" {
			r = r.WithContext(util.WithSessionID(r.Context(), sessionID))
		}
		next.ServeHTTP(w, r)
	})
}
