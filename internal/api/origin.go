package api

// Origin tells where an operation's result came from: the real backend or
// the in-memory fallback dataset. Mutations report it so callers can tell a
// backend-acknowledged write from a local-only one.
type Origin int

const (
	// OriginRemote means the backend handled the request.
	OriginRemote Origin = iota
	// OriginFallback means the backend was unreachable and the mock store
	// served the request.
	OriginFallback
)

func (o Origin) String() string {
	if o == OriginFallback {
		return "fallback"
	}
	return "remote"
}
