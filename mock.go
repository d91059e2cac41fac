package inorder

// Mock is the identity of a test double taking part in verification. Mocks are
// compared by reference; the name only shows up in messages.
//
// Generated or hand-written doubles embed or hold a *Mock and call Record from each
// of their methods, which is the interception point feeding the Ledger.
type Mock struct {
	name   string
	ledger *Ledger
}

// Record appends a call of method with args to the mock's ledger and returns its
// sequence number.
func (m *Mock) Record(method Method, args ...interface{}) int64 {
	captured := make([]interface{}, len(args))
	copy(captured, args)
	return m.ledger.Append(&Invocation{Mock: m, Method: method, Arguments: captured})
}

// Ledger returns the ledger the mock records into.
func (m *Mock) Ledger() *Ledger {
	return m.ledger
}

func (m *Mock) String() string {
	if m == nil {
		return "<nil mock>"
	}
	return m.name
}
