package utils

// Gin context keys.
const (
	LoggerKey = "logger"
	UserIDKey = "userID"
)

// RequestIDHeader is echoed back on every response.
const RequestIDHeader = "X-Request-ID"
