package middleware

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/riteshp0/DinoKicks/internal/constants"
	"github.com/riteshp0/DinoKicks/internal/util"
)

// RequestIdMiddleware 每個請求配一個request id, 放進context與回應header
func RequestIdMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(constants.RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		w.Header().Set(constants.RequestIDHeader, requestID)
		next.ServeHTTP(w, r.WithContext(util.WithRequestID(r.Context(), requestID)))
	})
}
