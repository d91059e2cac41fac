package inorder

import (
	"fmt"
	"testing"
)

var (
	simpleMethod = MethodOf("SimpleMethod", 0)
	oneArg       = MethodOf("OneArg", false)
)

// iMethods is the collaborator interface the doubles below stand in for.
type iMethods interface {
	SimpleMethod(int)
	OneArg(bool)
}

type methodsMock struct {
	*Mock
}

var _ iMethods = &methodsMock{}

func newMethodsMock(l *Ledger, name string) *methodsMock {
	return &methodsMock{Mock: l.NewMock(name)}
}

func (m *methodsMock) SimpleMethod(i int) { m.Record(simpleMethod, i) }
func (m *methodsMock) OneArg(b bool)      { m.Record(oneArg, b) }

// inOrderFixture records
//
//	one.SimpleMethod(1)
//	two.SimpleMethod(2)
//	two.SimpleMethod(2)
//	three.SimpleMethod(3)
//	two.SimpleMethod(2)
//	one.SimpleMethod(4)
type inOrderFixture struct {
	ledger          *Ledger
	one, two, three *methodsMock
	strictly        *StrictSession
}

func newInOrderFixture(t *testing.T) *inOrderFixture {
	t.Helper()
	return newInOrderFixtureWithConfig(t, NewConfig())
}

func newInOrderFixtureWithConfig(t *testing.T, conf *Config) *inOrderFixture {
	t.Helper()
	useTestLogger(t)

	f := &inOrderFixture{ledger: NewLedger()}
	f.one = newMethodsMock(f.ledger, "one")
	f.two = newMethodsMock(f.ledger, "two")
	f.three = newMethodsMock(f.ledger, "three")

	var err error
	f.strictly, err = NewStrictSession(conf, f.one.Mock, f.two.Mock, f.three.Mock)
	if err != nil {
		t.Fatal(err)
	}

	exerciseReferenceCalls(f.one, f.two, f.three)
	return f
}

func exerciseReferenceCalls(one, two, three iMethods) {
	one.SimpleMethod(1)
	two.SimpleMethod(2)
	two.SimpleMethod(2)
	three.SimpleMethod(3)
	two.SimpleMethod(2)
	one.SimpleMethod(4)
}

func (f *inOrderFixture) mocks() []*Mock {
	return []*Mock{f.one.Mock, f.two.Mock, f.three.Mock}
}

// testReporterMock collects what would have been reported to a *testing.T.
type testReporterMock struct {
	errors []string
	fatals []string
}

func newTestReporterMock() *testReporterMock {
	return &testReporterMock{errors: make([]string, 0)}
}

func (trm *testReporterMock) Errorf(format string, args ...interface{}) {
	trm.errors = append(trm.errors, fmt.Sprintf(format, args...))
}

func (trm *testReporterMock) Fatalf(format string, args ...interface{}) {
	trm.fatals = append(trm.fatals, fmt.Sprintf(format, args...))
}
