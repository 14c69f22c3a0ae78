package report

// EmptyState names which "nothing to show" presentation applies to an empty
// result set. Derived per request, never stored.
type EmptyState int

const (
	EmptyStateNone EmptyState = iota // results exist, no empty state applies
	EmptyStateSearch
	EmptyStateCombined
	EmptyStateFilter
	EmptyStateFirstTime
	EmptyStatePeriod
)

// String returns the empty state name
func (s EmptyState) String() string {
	switch s {
	case EmptyStateNone:
		return "None"
	case EmptyStateSearch:
		return "Search"
	case EmptyStateCombined:
		return "Combined"
	case EmptyStateFilter:
		return "Filter"
	case EmptyStateFirstTime:
		return "FirstTime"
	case EmptyStatePeriod:
		return "Period"
	default:
		return "Unknown"
	}
}

// ClassifyEmptyState resolves the mutually exclusive empty-state categories
// in fixed priority order: search+filter, search, filter, first-time user,
// then plain empty period. Callers evaluate isFirstTime lazily (it needs an
// all-time existence check) and only when the result set is already empty
// with no active search or filter; the flag is ignored on every other row
// of the table.
func ClassifyEmptyState(resultCount int, hasSearch, hasFilter, isFirstTime bool) EmptyState {
	if resultCount > 0 {
		return EmptyStateNone
	}

	switch {
	case hasSearch && hasFilter:
		return EmptyStateCombined
	case hasSearch:
		return EmptyStateSearch
	case hasFilter:
		return EmptyStateFilter
	case isFirstTime:
		return EmptyStateFirstTime
	default:
		return EmptyStatePeriod
	}
}
