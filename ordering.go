package inorder

type orderResult int

const (
	orderOK orderResult = iota
	orderViolation
)

// classifyOrder checks the first unconsumed entry against the wanted mock and
// method. Arguments play no part here.
func classifyOrder(first *Invocation, m *Mock, method Method) orderResult {
	if first.Mock != m || first.Method != method {
		return orderViolation
	}
	return orderOK
}

// classifyArgumentMismatch picks the kind reported when the first unconsumed entry
// is in order but its arguments differ from the wanted ones.
func classifyArgumentMismatch(policy Classification, entries Entries, wanted *WantedCall, eq ArgumentEquality) FailureKind {
	if policy != PinnedCompat {
		return WrongArguments
	}
	if n, ok := wanted.Mode.IsExactly(); ok && n > 1 {
		return StrictVerification
	}
	if occursAnywhere(entries, wanted.Mock, wanted.Method, wanted.Arguments, eq) {
		// wanted call happened, just not yet
		return StrictVerification
	}
	return WrongArguments
}

// judge applies the layered checks to the entries after the cursor and returns either
// the invocations the wanted call consumes or the failure to report. It does not
// mutate anything.
func judge(conf *Config, entries Entries, wanted *WantedCall) ([]*Invocation, *VerificationError) {
	eq := conf.Verify.ArgumentEquality

	first, ok := entries.First()
	if !ok {
		if wanted.Mode.wantsNone() {
			return nil, nil
		}
		return nil, &VerificationError{Kind: StrictVerification, Wanted: wanted}
	}

	// a zero-count expectation only cares about the leading run
	if wanted.Mode.wantsNone() {
		run := runLength(entries, wanted.Mock, wanted.Method, wanted.Arguments, eq)
		if len(run) == 0 {
			return nil, nil
		}
		return nil, &VerificationError{Kind: NumberOfInvocations, Wanted: wanted, Actual: first, ExpectedCount: 0, ActualCount: len(run)}
	}

	if classifyOrder(first, wanted.Mock, wanted.Method) == orderViolation {
		return nil, &VerificationError{Kind: StrictVerification, Wanted: wanted, Actual: first}
	}

	run := runLength(entries, wanted.Mock, wanted.Method, wanted.Arguments, eq)
	if len(run) == 0 {
		kind := classifyArgumentMismatch(conf.Verify.Classification, entries, wanted, eq)
		return nil, &VerificationError{Kind: kind, Wanted: wanted, Actual: first}
	}

	if n, exact := wanted.Mode.IsExactly(); exact && len(run) != n {
		return nil, &VerificationError{Kind: NumberOfInvocations, Wanted: wanted, Actual: first, ExpectedCount: n, ActualCount: len(run)}
	}
	return run, nil
}
