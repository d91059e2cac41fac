package inorder

import (
	"sync"

	"github.com/eapache/queue"
)

// Ledger is the append-only, chronologically ordered record of every call made on
// the mocks created from it. It is safe for concurrent use: interceptors may record
// from several goroutines, although verification is expected to start only once all
// participating calls have been recorded.
type Ledger struct {
	lock    sync.RWMutex
	entries *queue.Queue
	base    int64 // sequence of the oldest retained entry
	next    int64
}

// NewLedger creates an empty Ledger whose first invocation gets sequence 0.
func NewLedger() *Ledger {
	return &Ledger{entries: queue.New()}
}

// NewMock creates a Mock recording into this ledger. The name is only used to
// render invocations in failure messages; identity is by reference.
func (l *Ledger) NewMock(name string) *Mock {
	return &Mock{name: name, ledger: l}
}

// Append assigns the next sequence number to inv, stores it and returns the number.
func (l *Ledger) Append(inv *Invocation) int64 {
	l.lock.Lock()
	defer l.lock.Unlock()

	inv.Sequence = l.next
	l.next++
	l.entries.Add(inv)
	return inv.Sequence
}

// Len returns the number of retained invocations.
func (l *Ledger) Len() int {
	l.lock.RLock()
	defer l.lock.RUnlock()
	return l.entries.Length()
}

// Reset drops every recorded invocation. Sequence numbers are never reused, so
// invocations recorded afterwards continue from where the ledger left off.
func (l *Ledger) Reset() {
	l.lock.Lock()
	defer l.lock.Unlock()

	l.entries = queue.New()
	l.base = l.next
}

// EntriesAfter returns the invocations whose sequence is greater than cursor, in
// ascending order.
func (l *Ledger) EntriesAfter(cursor int64) Entries {
	return Entries{ledger: l, after: cursor}
}

// UnverifiedFor returns, in ascending order, the invocations recorded on any of
// mocks that no verification has consumed yet.
func (l *Ledger) UnverifiedFor(mocks ...*Mock) []*Invocation {
	return l.collect(mocks, func(inv *Invocation) bool { return !inv.Verified() })
}

// InvocationsFor returns, in ascending order, every invocation recorded on any of
// mocks, verified or not.
func (l *Ledger) InvocationsFor(mocks ...*Mock) []*Invocation {
	return l.collect(mocks, func(*Invocation) bool { return true })
}

func (l *Ledger) collect(mocks []*Mock, keep func(*Invocation) bool) []*Invocation {
	set := make(map[*Mock]struct{}, len(mocks))
	for _, m := range mocks {
		set[m] = struct{}{}
	}

	l.lock.RLock()
	defer l.lock.RUnlock()

	var found []*Invocation
	for i := 0; i < l.entries.Length(); i++ {
		inv := l.entries.Get(i).(*Invocation)
		if _, ok := set[inv.Mock]; ok && keep(inv) {
			found = append(found, inv)
		}
	}
	return found
}

// at returns the invocation with sequence seq, or nil if it is not retained.
// Callers must hold the lock.
func (l *Ledger) at(seq int64) *Invocation {
	idx := seq - l.base
	if idx < 0 || idx >= int64(l.entries.Length()) {
		return nil
	}
	return l.entries.Get(int(idx)).(*Invocation)
}

func (l *Ledger) markVerified(invs []*Invocation) {
	l.lock.Lock()
	defer l.lock.Unlock()

	for _, inv := range invs {
		inv.verified.Store(true)
	}
}

// Entries is the lazy, restartable sequence of invocations recorded after a cursor.
// Every call to Iterator starts again from the first entry after the cursor.
type Entries struct {
	ledger *Ledger
	after  int64
}

// Iterator returns an iterator over the entries recorded so far. Invocations
// appended after the iterator was created are not visited.
func (e Entries) Iterator() *EntryIterator {
	e.ledger.lock.RLock()
	defer e.ledger.lock.RUnlock()

	next := e.after + 1
	if next < e.ledger.base {
		next = e.ledger.base
	}
	return &EntryIterator{ledger: e.ledger, next: next, end: e.ledger.next}
}

// First returns the earliest entry after the cursor, if any.
func (e Entries) First() (*Invocation, bool) {
	return e.Iterator().Next()
}

// Empty reports whether nothing was recorded after the cursor.
func (e Entries) Empty() bool {
	_, ok := e.First()
	return !ok
}

// EntryIterator walks Entries in ascending sequence order.
type EntryIterator struct {
	ledger *Ledger
	next   int64
	end    int64
}

// Next returns the next invocation, or false once the sequence is exhausted.
func (it *EntryIterator) Next() (*Invocation, bool) {
	if it.next >= it.end {
		return nil, false
	}

	it.ledger.lock.RLock()
	inv := it.ledger.at(it.next)
	it.ledger.lock.RUnlock()

	if inv == nil {
		// the ledger was reset underneath us
		it.next = it.end
		return nil, false
	}
	it.next++
	return inv, true
}
