package constants

// Context keys set by middleware and read by handlers
const (
	ContextKeyRequestID = "RequestID"

	// Validated route filters
	ContextKeyRouteFilter = "routeFilter"
)
