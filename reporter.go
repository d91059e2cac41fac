package inorder

import "errors"

// ErrorReporter is a simple interface that includes the testing.T methods we use to
// report verification failures.
type ErrorReporter interface {
	Errorf(string, ...interface{})
}

// fatalReporter is implemented by *testing.T; configuration errors stop the test
// when it is available.
type fatalReporter interface {
	Fatalf(string, ...interface{})
}

type helper interface {
	Helper()
}

// Verifier wraps a StrictSession and reports failures to an ErrorReporter instead of
// returning them. Every method returns whether the verification passed.
type Verifier struct {
	t       ErrorReporter
	session *StrictSession
}

// Strictly creates a Verifier over mocks with NewConfig().
func Strictly(t ErrorReporter, mocks ...*Mock) *Verifier {
	return StrictlyWithConfig(t, NewConfig(), mocks...)
}

// StrictlyWithConfig creates a Verifier over mocks using conf. If the session cannot
// be created the error is reported and every later verification fails.
func StrictlyWithConfig(t ErrorReporter, conf *Config, mocks ...*Mock) *Verifier {
	v := &Verifier{t: t}
	session, err := NewStrictSession(conf, mocks...)
	if err != nil {
		v.report(err)
		return v
	}
	v.session = session
	return v
}

// Session returns the underlying session, nil if it could not be created.
func (v *Verifier) Session() *StrictSession {
	return v.session
}

// Verify is StrictSession.Verify reporting to t.
func (v *Verifier) Verify(m *Mock, method Method, args ...interface{}) bool {
	return v.VerifyMode(m, Times(1), method, args...)
}

// VerifyMode is StrictSession.VerifyMode reporting to t.
func (v *Verifier) VerifyMode(m *Mock, mode VerificationMode, method Method, args ...interface{}) bool {
	if h, ok := v.t.(helper); ok {
		h.Helper()
	}
	if v.session == nil {
		v.t.Errorf("inorder: no strict session to verify %s.%s against", m, formatCall(method, args))
		return false
	}
	return v.report(v.session.VerifyMode(m, mode, method, args...))
}

// VerifyNoMoreInteractions is the package function reporting to t.
func (v *Verifier) VerifyNoMoreInteractions(mocks ...*Mock) bool {
	if h, ok := v.t.(helper); ok {
		h.Helper()
	}
	return v.report(VerifyNoMoreInteractions(mocks...))
}

// VerifyZeroInteractions is the package function reporting to t.
func (v *Verifier) VerifyZeroInteractions(mocks ...*Mock) bool {
	if h, ok := v.t.(helper); ok {
		h.Helper()
	}
	return v.report(VerifyZeroInteractions(mocks...))
}

func (v *Verifier) report(err error) bool {
	if err == nil {
		return true
	}
	if h, ok := v.t.(helper); ok {
		h.Helper()
	}

	var confErr ConfigurationError
	if errors.As(err, &confErr) {
		if f, ok := v.t.(fatalReporter); ok {
			f.Fatalf("%s", err)
			return false
		}
	}
	v.t.Errorf("%s", err)
	return false
}
