package domain

// FilterState carries the request-scoped dashboard filters. It is never
// persisted; each dashboard call builds a fresh value.
type FilterState struct {
	ClientID    *int64 // nil = no client filter
	SearchQuery string
}

// HasClientFilter reports whether a client filter is active
func (f FilterState) HasClientFilter() bool {
	return f.ClientID != nil
}
