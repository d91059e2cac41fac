package inorder

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerificationModes(t *testing.T) {
	n, exact := Times(3).IsExactly()
	assert.True(t, exact)
	assert.Equal(t, 3, n)

	_, exact = AtLeastOnce().IsExactly()
	assert.False(t, exact)

	assert.Equal(t, Times(0), Never())
	assert.True(t, Never().wantsNone())
	assert.False(t, AtLeastOnce().wantsNone())

	assert.Equal(t, "once", Times(1).String())
	assert.Equal(t, "2 times", Times(2).String())
	assert.Equal(t, "at least once", AtLeastOnce().String())

	assert.Panics(t, func() { Times(-1) })

	var zero VerificationMode
	n, exact = zero.IsExactly()
	assert.True(t, exact)
	assert.Equal(t, 1, n)
	assert.False(t, zero.wantsNone())
	assert.Equal(t, "once", zero.String())
	assert.NotEqual(t, Never(), zero)
}

func TestMethodIdentity(t *testing.T) {
	assert.Equal(t, "SimpleMethod(int)", simpleMethod.String())
	assert.Equal(t, MethodOf("Pair", 0, ""), NewMethod("Pair", reflect.TypeOf(0), reflect.TypeOf("")))
	assert.NotEqual(t, MethodOf("Pair", 0), MethodOf("Pair", ""))
}

func TestInvocationString(t *testing.T) {
	ledger := NewLedger()
	m := ledger.NewMock("repo")
	m.Record(MethodOf("Save", "", 0), "key", 7)

	inv, _ := ledger.EntriesAfter(initialCursor).First()
	assert.Equal(t, `#0 repo.Save("key", 7)`, inv.String())
	assert.Equal(t, "<nil mock>", (*Mock)(nil).String())
}
