package inorder

import (
	"fmt"
	"reflect"

	"github.com/google/go-cmp/cmp"
)

// ArgumentMatcher can be passed in place of a literal wanted argument. Literal
// arguments are compared with Config.Verify.ArgumentEquality instead.
type ArgumentMatcher interface {
	Matches(actual interface{}) bool
	String() string
}

// ArgumentEquality compares one recorded argument with one wanted literal.
type ArgumentEquality func(actual, wanted interface{}) bool

// allowUnexported lets cmp look into unexported struct fields, which recorded
// arguments routinely have.
var allowUnexported = cmp.Exporter(func(reflect.Type) bool { return true })

// DeepEquality is the default ArgumentEquality, based on cmp.Equal.
func DeepEquality(actual, wanted interface{}) bool {
	return cmp.Equal(actual, wanted, allowUnexported)
}

// diffArguments renders wanted versus actual arguments. Positions satisfied by an
// ArgumentMatcher show the actual value so they drop out of the diff.
func diffArguments(actual, wanted []interface{}) string {
	normalized := make([]interface{}, len(wanted))
	for i, w := range wanted {
		normalized[i] = w
		if matcher, ok := w.(ArgumentMatcher); ok && i < len(actual) && matcher.Matches(actual[i]) {
			normalized[i] = actual[i]
		}
	}
	return cmp.Diff(normalized, actual, allowUnexported)
}

type anyMatcher struct{}

func (anyMatcher) Matches(interface{}) bool { return true }
func (anyMatcher) String() string           { return "<any>" }

// Any matches every argument value.
func Any() ArgumentMatcher {
	return anyMatcher{}
}

type eqMatcher struct {
	wanted interface{}
}

func (m eqMatcher) Matches(actual interface{}) bool { return DeepEquality(actual, m.wanted) }
func (m eqMatcher) String() string                  { return "eq(" + formatArg(m.wanted) + ")" }

// Eq matches arguments deeply equal to wanted, regardless of the configured
// ArgumentEquality.
func Eq(wanted interface{}) ArgumentMatcher {
	return eqMatcher{wanted: wanted}
}

type funcMatcher struct {
	description string
	fn          func(interface{}) bool
}

func (m funcMatcher) Matches(actual interface{}) bool { return m.fn(actual) }
func (m funcMatcher) String() string                  { return fmt.Sprintf("<%s>", m.description) }

// MatchedBy matches arguments for which fn returns true.
func MatchedBy(description string, fn func(actual interface{}) bool) ArgumentMatcher {
	return funcMatcher{description: description, fn: fn}
}

// argumentsMatch compares recorded arguments position by position against the
// wanted ones.
func argumentsMatch(actual, wanted []interface{}, eq ArgumentEquality) bool {
	if len(actual) != len(wanted) {
		return false
	}
	for i := range wanted {
		if matcher, ok := wanted[i].(ArgumentMatcher); ok {
			if !matcher.Matches(actual[i]) {
				return false
			}
			continue
		}
		if !eq(actual[i], wanted[i]) {
			return false
		}
	}
	return true
}
