package constants

type contextKey string

const (
	// SessionHeader client以此header夾帶購物車session token
	SessionHeader = "X-Session-ID"
	// RequestIDHeader 回應帶上request id方便追蹤
	RequestIDHeader = "X-Request-ID"

	RequestIDKey contextKey = "request_id"
	SessionIDKey contextKey = "session_id"
)
