package inorder

import "fmt"

type modeKind int

const (
	once modeKind = iota
	exactly
	atLeastOnce
)

// VerificationMode says how many contiguous matching invocations a verification
// wants. Build one with Times, Never or AtLeastOnce. The zero value means Times(1).
type VerificationMode struct {
	kind modeKind
	n    int
}

// Times wants exactly n contiguous matching invocations. Negative n panics.
func Times(n int) VerificationMode {
	if n < 0 {
		panic(fmt.Sprintf("inorder: Times(%d): count must not be negative", n))
	}
	return VerificationMode{kind: exactly, n: n}
}

// Never is Times(0).
func Never() VerificationMode {
	return Times(0)
}

// AtLeastOnce wants one or more contiguous matching invocations and consumes all of
// them.
func AtLeastOnce() VerificationMode {
	return VerificationMode{kind: atLeastOnce}
}

func (m VerificationMode) resolved() VerificationMode {
	if m.kind == once {
		return VerificationMode{kind: exactly, n: 1}
	}
	return m
}

// IsExactly reports whether the mode wants an exact count, and which.
func (m VerificationMode) IsExactly() (int, bool) {
	m = m.resolved()
	return m.n, m.kind == exactly
}

func (m VerificationMode) wantsNone() bool {
	n, exact := m.IsExactly()
	return exact && n == 0
}

func (m VerificationMode) String() string {
	m = m.resolved()
	if m.kind == atLeastOnce {
		return "at least once"
	}
	if m.n == 1 {
		return "once"
	}
	return fmt.Sprintf("%d times", m.n)
}
