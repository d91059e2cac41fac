package inorder

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/davecgh/go-spew/spew"
)

// argsFormatter renders argument values compactly and deterministically in error
// messages and log lines.
var argsFormatter = spew.ConfigState{
	Indent:                  " ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// Method identifies a method of a mocked interface by its name and parameter types.
// Two methods with the same name but different parameter lists are different methods.
// Method values are comparable.
type Method struct {
	Name   string
	Params string
}

// NewMethod returns the Method identity for name taking the given parameter types.
func NewMethod(name string, params ...reflect.Type) Method {
	names := make([]string, len(params))
	for i, p := range params {
		names[i] = p.String()
	}
	return Method{Name: name, Params: strings.Join(names, ", ")}
}

// MethodOf is a shortcut for NewMethod taking sample values instead of reflect.Types:
//
//	simpleMethod := inorder.MethodOf("SimpleMethod", 0)
func MethodOf(name string, samples ...interface{}) Method {
	params := make([]reflect.Type, len(samples))
	for i, s := range samples {
		params[i] = reflect.TypeOf(s)
	}
	return NewMethod(name, params...)
}

func (m Method) String() string {
	return m.Name + "(" + m.Params + ")"
}

// Invocation is one recorded call on a Mock. Sequence, Mock, Method and Arguments
// never change once recorded. The verified flag only ever goes from false to true.
type Invocation struct {
	Sequence  int64
	Mock      *Mock
	Method    Method
	Arguments []interface{}

	verified atomic.Bool
}

// Verified reports whether a successful verification consumed this invocation.
func (i *Invocation) Verified() bool {
	return i.verified.Load()
}

func (i *Invocation) matches(m *Mock, method Method) bool {
	return i.Mock == m && i.Method == method
}

func (i *Invocation) String() string {
	return fmt.Sprintf("#%d %s.%s", i.Sequence, i.Mock, formatCall(i.Method, i.Arguments))
}

func formatCall(method Method, args []interface{}) string {
	rendered := make([]string, len(args))
	for i, arg := range args {
		if matcher, ok := arg.(ArgumentMatcher); ok {
			rendered[i] = matcher.String()
			continue
		}
		rendered[i] = formatArg(arg)
	}
	return method.Name + "(" + strings.Join(rendered, ", ") + ")"
}

func formatArg(arg interface{}) string {
	if s, ok := arg.(string); ok {
		return strconv.Quote(s)
	}
	return argsFormatter.Sprintf("%v", arg)
}
