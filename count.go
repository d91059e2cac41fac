package inorder

// runLength returns the leading run of entries that are calls of method on m with
// arguments matching args. The run stops at the first entry that differs in mock,
// method or arguments; later matches are never part of it.
func runLength(entries Entries, m *Mock, method Method, args []interface{}, eq ArgumentEquality) []*Invocation {
	var run []*Invocation

	it := entries.Iterator()
	for inv, ok := it.Next(); ok; inv, ok = it.Next() {
		if !inv.matches(m, method) || !argumentsMatch(inv.Arguments, args, eq) {
			break
		}
		run = append(run, inv)
	}
	return run
}

// occursAnywhere reports whether any of entries is a call of method on m with
// arguments matching args.
func occursAnywhere(entries Entries, m *Mock, method Method, args []interface{}, eq ArgumentEquality) bool {
	it := entries.Iterator()
	for inv, ok := it.Next(); ok; inv, ok = it.Next() {
		if inv.matches(m, method) && argumentsMatch(inv.Arguments, args, eq) {
			return true
		}
	}
	return false
}
