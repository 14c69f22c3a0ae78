package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyEmptyState_NoneWhenResultsExist(t *testing.T) {
	assert.Equal(t, EmptyStateNone, ClassifyEmptyState(3, true, true, true))
	assert.Equal(t, EmptyStateNone, ClassifyEmptyState(1, false, false, false))
}

func TestClassifyEmptyState_PriorityOrder(t *testing.T) {
	tests := []struct {
		name        string
		hasSearch   bool
		hasFilter   bool
		isFirstTime bool
		want        EmptyState
	}{
		{"search and filter", true, true, false, EmptyStateCombined},
		{"search and filter beats first-time", true, true, true, EmptyStateCombined},
		{"search only", true, false, false, EmptyStateSearch},
		{"search beats first-time", true, false, true, EmptyStateSearch},
		{"filter only", false, true, false, EmptyStateFilter},
		{"filter beats first-time", false, true, true, EmptyStateFilter},
		{"first-time user", false, false, true, EmptyStateFirstTime},
		{"plain empty period", false, false, false, EmptyStatePeriod},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyEmptyState(0, tt.hasSearch, tt.hasFilter, tt.isFirstTime)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEmptyState_String(t *testing.T) {
	assert.Equal(t, "Combined", EmptyStateCombined.String())
	assert.Equal(t, "FirstTime", EmptyStateFirstTime.String())
	assert.Equal(t, "None", EmptyStateNone.String())
}
