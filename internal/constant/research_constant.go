package constant

const (
	// Run modes recorded on every history entry.
	RunModeChat      = "chat"
	RunModeRetrieval = "retrieval"
	RunModeFallback  = "fallback"

	// DefaultSessionId is used when the caller supplies neither a session
	// id nor a user name.
	DefaultSessionId = "user1"

	// DefaultTopK is the retrieval document budget per query.
	DefaultTopK = 3
)
