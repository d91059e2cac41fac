package inorder

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// ErrVerificationAssertion is matched by every verification failure, whatever its
// kind.
var ErrVerificationAssertion = errors.New("inorder: verification assertion failed")

// ErrStrictVerification is returned when the next unconsumed invocation is not a call
// of the wanted method on the wanted mock: something else happened first, or the wanted
// call has not happened yet or was already consumed.
var ErrStrictVerification = errors.New("inorder: invocation out of order")

// ErrWrongArguments is returned when the next unconsumed invocation is the wanted
// method on the wanted mock, but with different arguments.
var ErrWrongArguments = errors.New("inorder: arguments are different")

// ErrNumberOfInvocations is returned when the run of matching invocations at the
// cursor is not as long as the wanted exact count.
var ErrNumberOfInvocations = errors.New("inorder: wrong number of invocations")

// ErrUnexpectedInteractions is returned by VerifyNoMoreInteractions and
// VerifyZeroInteractions.
var ErrUnexpectedInteractions = errors.New("inorder: unexpected interactions")

// FailureKind tags a VerificationError.
type FailureKind int

const (
	StrictVerification FailureKind = iota
	WrongArguments
	NumberOfInvocations
	UnexpectedInteractions
)

func (k FailureKind) String() string {
	switch k {
	case StrictVerification:
		return "strict-verification"
	case WrongArguments:
		return "wrong-arguments"
	case NumberOfInvocations:
		return "number-of-invocations"
	case UnexpectedInteractions:
		return "unexpected-interactions"
	}
	return fmt.Sprintf("unknown-%d", int(k))
}

func (k FailureKind) sentinel() error {
	switch k {
	case StrictVerification:
		return ErrStrictVerification
	case WrongArguments:
		return ErrWrongArguments
	case NumberOfInvocations:
		return ErrNumberOfInvocations
	case UnexpectedInteractions:
		return ErrUnexpectedInteractions
	}
	return nil
}

// WantedCall is what a verification asked for.
type WantedCall struct {
	Mock      *Mock
	Method    Method
	Arguments []interface{}
	Mode      VerificationMode
}

func (w *WantedCall) String() string {
	return w.Mock.String() + "." + formatCall(w.Method, w.Arguments)
}

// VerificationError describes a failed verification. Only the fields relevant to Kind
// are set: Wanted and Actual for the in-order kinds (Actual is nil when nothing is
// left after the cursor), ExpectedCount and ActualCount for NumberOfInvocations,
// Interactions for UnexpectedInteractions.
type VerificationError struct {
	Kind          FailureKind
	Wanted        *WantedCall
	Actual        *Invocation
	ExpectedCount int
	ActualCount   int
	Interactions  []*Invocation

	zeroWanted bool
	cause      error
}

func (e *VerificationError) Error() string {
	switch e.Kind {
	case StrictVerification:
		if e.Actual == nil {
			return fmt.Sprintf("inorder: wanted %s but there are no further invocations", e.Wanted)
		}
		return fmt.Sprintf("inorder: wanted %s next, but the next invocation is %s", e.Wanted, e.Actual)
	case WrongArguments:
		return fmt.Sprintf("inorder: arguments are different, wanted %s but the next invocation is %s (-wanted +actual):\n%s",
			e.Wanted, e.Actual, diffArguments(e.Actual.Arguments, e.Wanted.Arguments))
	case NumberOfInvocations:
		return fmt.Sprintf("inorder: wanted %s %s but the run at the cursor has %d", e.Wanted, Times(e.ExpectedCount), e.ActualCount)
	case UnexpectedInteractions:
		what := "no more interactions"
		if e.zeroWanted {
			what = "zero interactions"
		}
		return fmt.Sprintf("inorder: wanted %s, but found %d: %s", what, len(e.Interactions), e.cause)
	}
	return ErrVerificationAssertion.Error()
}

// Is makes every VerificationError match ErrVerificationAssertion as well as the
// sentinel of its own kind.
func (e *VerificationError) Is(target error) bool {
	return target == ErrVerificationAssertion || target == e.Kind.sentinel()
}

// Unwrap returns the aggregate of offending invocations, if any.
func (e *VerificationError) Unwrap() error {
	return e.cause
}

// IsVerificationAssertionError reports whether err is a verification failure, as
// opposed to a ConfigurationError or any other error.
func IsVerificationAssertionError(err error) bool {
	return errors.Is(err, ErrVerificationAssertion)
}

// KindOf returns the FailureKind of a verification failure.
func KindOf(err error) (FailureKind, bool) {
	var verr *VerificationError
	if !errors.As(err, &verr) {
		return 0, false
	}
	return verr.Kind, true
}

func newInteractionsError(invs []*Invocation, zeroWanted bool) *VerificationError {
	var merr *multierror.Error
	for _, inv := range invs {
		state := "unverified"
		if inv.Verified() {
			state = "verified"
		}
		merr = multierror.Append(merr, fmt.Errorf("%s %s", state, inv))
	}
	merr.ErrorFormat = func(es []error) string {
		lines := make([]string, len(es))
		for i, err := range es {
			lines[i] = "\t* " + err.Error()
		}
		return "\n" + strings.Join(lines, "\n")
	}
	return &VerificationError{
		Kind:         UnexpectedInteractions,
		Interactions: invs,
		zeroWanted:   zeroWanted,
		cause:        merr,
	}
}

// ConfigurationError is the type of error returned when a session is misused or a
// Config is invalid. It is never a verification failure.
type ConfigurationError string

func (err ConfigurationError) Error() string {
	return "inorder: invalid configuration (" + string(err) + ")"
}
