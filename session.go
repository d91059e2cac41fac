package inorder

import (
	"sync"
)

// initialCursor sits below every sequence number a Ledger hands out.
const initialCursor int64 = -1

// StrictSession verifies calls on an ordered group of mocks. It owns a cursor
// pointing at the last ledger entry consumed by a successful verification; every
// verification only looks at what was recorded after it.
//
// A session belongs to the test that created it. Its methods serialize on an internal
// lock, so a cursor is never observed half-updated, but verifying from several
// goroutines still makes the outcome depend on scheduling.
type StrictSession struct {
	lock    sync.Mutex
	conf    *Config
	ledger  *Ledger
	mocks   map[*Mock]struct{}
	cursor  int64
	metrics *verificationMetrics
}

// InOrder creates a StrictSession over mocks using NewConfig().
func InOrder(mocks ...*Mock) (*StrictSession, error) {
	return NewStrictSession(NewConfig(), mocks...)
}

// NewStrictSession creates a StrictSession over mocks. All mocks must record into
// the same Ledger. A nil conf means NewConfig().
func NewStrictSession(conf *Config, mocks ...*Mock) (*StrictSession, error) {
	if conf == nil {
		conf = NewConfig()
	}
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	if len(mocks) == 0 {
		return nil, ConfigurationError("a strict session needs at least one mock")
	}

	ledger, err := ledgerOf(mocks)
	if err != nil {
		return nil, err
	}

	s := &StrictSession{
		conf:    conf,
		ledger:  ledger,
		mocks:   make(map[*Mock]struct{}, len(mocks)),
		cursor:  initialCursor,
		metrics: newVerificationMetrics(conf.MetricRegistry),
	}
	for _, m := range mocks {
		s.mocks[m] = struct{}{}
	}
	Logger.Printf("session/created over %d mocks (classification %s)\n", len(s.mocks), conf.Verify.Classification)
	return s, nil
}

// Cursor returns the sequence number of the last consumed invocation, or a negative
// number if nothing was consumed yet.
func (s *StrictSession) Cursor() int64 {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.cursor
}

// Verify checks that the next unconsumed invocation is exactly one call of method on
// m with args. It is VerifyMode with Times(1).
func (s *StrictSession) Verify(m *Mock, method Method, args ...interface{}) error {
	return s.VerifyMode(m, Times(1), method, args...)
}

// VerifyMode checks the invocations after the cursor against a call of method on m
// with args, wanted as often as mode says.
//
// The first unconsumed invocation must be a call of method on m, otherwise a
// StrictVerification failure is returned. Its arguments must match args, otherwise
// the failure is WrongArguments (see Classification). The leading run of matching
// invocations must then satisfy mode, otherwise the failure is NumberOfInvocations.
// Times(0) is satisfied whenever that leading run is empty.
//
// On success the consumed invocations are marked verified and the cursor moves to
// the last of them. AtLeastOnce consumes the whole run. On failure nothing changes.
// Verifying a mock that is not part of the session returns a ConfigurationError.
func (s *StrictSession) VerifyMode(m *Mock, mode VerificationMode, method Method, args ...interface{}) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if _, ok := s.mocks[m]; !ok {
		return ConfigurationError("mock " + m.String() + " is not part of this strict session")
	}

	mode = mode.resolved()
	wanted := &WantedCall{Mock: m, Method: method, Arguments: args, Mode: mode}
	run, failure := judge(s.conf, s.ledger.EntriesAfter(s.cursor), wanted)
	if failure != nil {
		s.metrics.failed(failure.Kind)
		Logger.Printf("session/verify %s %s failed at cursor %d: %s\n", wanted, mode, s.cursor, failure.Kind)
		return failure
	}

	if len(run) > 0 {
		s.ledger.markVerified(run)
		s.cursor = run[len(run)-1].Sequence
	}
	s.metrics.succeeded(len(run))
	Logger.Printf("session/verify %s %s consumed %d, cursor now %d\n", wanted, mode, len(run), s.cursor)
	return nil
}

func ledgerOf(mocks []*Mock) (*Ledger, error) {
	var ledger *Ledger
	for _, m := range mocks {
		if m == nil || m.ledger == nil {
			return nil, ConfigurationError("nil mock")
		}
		if ledger == nil {
			ledger = m.ledger
		} else if m.ledger != ledger {
			return nil, ConfigurationError("mocks " + mocks[0].String() + " and " + m.String() + " record into different ledgers")
		}
	}
	return ledger, nil
}
