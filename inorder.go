/*
Package inorder verifies that calls recorded on a group of test doubles happened in a
specific relative order, a specific number of times, with specific arguments.

Every call made on a Mock is appended to the Ledger the mock was created from. Each
entry receives a monotonically increasing sequence number, so the ledger is a single
chronological record across all mocks sharing it:

	ledger := inorder.NewLedger()
	one, two := ledger.NewMock("one"), ledger.NewMock("two")

	// exercise the code under test, which ends up calling
	//	one.Record(simpleMethod, 1)
	//	two.Record(simpleMethod, 2)
	//	two.Record(simpleMethod, 2)

	strictly, err := inorder.InOrder(one, two)
	if err != nil {
		t.Fatal(err)
	}
	if err := strictly.Verify(one, simpleMethod, 1); err != nil {
		t.Error(err)
	}
	if err := strictly.VerifyMode(two, inorder.Times(2), simpleMethod, 2); err != nil {
		t.Error(err)
	}
	if err := inorder.VerifyNoMoreInteractions(one, two); err != nil {
		t.Error(err)
	}

A StrictSession owns a cursor pointing at the last consumed ledger entry. Every
verification looks at the entries after that cursor: the first one must belong to the
wanted mock and method, and the leading run of entries matching the wanted call is
counted against the wanted VerificationMode. Failed verifications never move the
cursor and never mark entries as verified.

Failures are reported as *VerificationError values. All of them match
ErrVerificationAssertion with errors.Is, and each additionally matches the sentinel
of its own kind (ErrStrictVerification, ErrWrongArguments, ErrNumberOfInvocations or
ErrUnexpectedInteractions). Misuse, such as verifying a mock that is not part of the
session, is reported as a ConfigurationError instead.

Tests that prefer the testing.T style can wrap a session with Strictly, which reports
every failure through an ErrorReporter.
*/
package inorder

import (
	"io"
	"log"
)

// Logger is the instance of a StdLogger interface that inorder writes verification
// traces to. By default it is set to discard all log messages via io.Discard, but you
// can set it to redirect wherever you want.
var Logger StdLogger = log.New(io.Discard, "[inorder] ", log.LstdFlags)

// StdLogger is used to log verification traces.
type StdLogger interface {
	Print(v ...interface{})
	Printf(format string, v ...interface{})
	Println(v ...interface{})
}
