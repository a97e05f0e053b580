package ports

// SessionContext is the per-request attribute bag supplied by the web layer.
// One instance exists per inbound request and is never shared across
// requests, so implementations need no locking.
type SessionContext interface {
	// Get returns the stored value for key, or nil when absent.
	Get(key string) any
	Set(key string, value any)
	// Remove deletes key; removing an absent key is a no-op.
	Remove(key string)
}
