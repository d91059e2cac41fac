package inorder

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunLengthCountsLeadingContiguousMatches(t *testing.T) {
	f := newInOrderFixture(t)
	eq := DeepEquality

	tests := []struct {
		name   string
		cursor int64
		mock   *Mock
		method Method
		args   []interface{}
		want   int
	}{
		{"head matches once", initialCursor, f.one.Mock, simpleMethod, []interface{}{1}, 1},
		{"run of two", 0, f.two.Mock, simpleMethod, []interface{}{2}, 2},
		{"run stops at other mock", 1, f.two.Mock, simpleMethod, []interface{}{2}, 1},
		{"later match not contiguous", 2, f.two.Mock, simpleMethod, []interface{}{2}, 0},
		{"different args", initialCursor, f.one.Mock, simpleMethod, []interface{}{4}, 0},
		{"different method", initialCursor, f.one.Mock, oneArg, []interface{}{1}, 0},
		{"different mock", initialCursor, f.two.Mock, simpleMethod, []interface{}{1}, 0},
		{"arity mismatch", initialCursor, f.one.Mock, simpleMethod, []interface{}{1, 2}, 0},
		{"end of ledger", 5, f.one.Mock, simpleMethod, []interface{}{4}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			run := runLength(f.ledger.EntriesAfter(tt.cursor), tt.mock, tt.method, tt.args, eq)
			assert.Len(t, run, tt.want)
			for i, inv := range run {
				assert.Equal(t, tt.cursor+1+int64(i), inv.Sequence)
			}
		})
	}
}

func TestOccursAnywhere(t *testing.T) {
	f := newInOrderFixture(t)
	entries := f.ledger.EntriesAfter(initialCursor)

	assert.True(t, occursAnywhere(entries, f.one.Mock, simpleMethod, []interface{}{4}, DeepEquality))
	assert.False(t, occursAnywhere(entries, f.one.Mock, simpleMethod, []interface{}{100}, DeepEquality))
	assert.False(t, occursAnywhere(f.ledger.EntriesAfter(5), f.one.Mock, simpleMethod, []interface{}{4}, DeepEquality))
}
