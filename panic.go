package slco

import (
	"fmt"
	"runtime/debug"
)

// A PanicError is the failure cause recorded by [Frame.Catch] when a
// coroutine body panics: the recovered value plus the stack trace at
// the point of the panic.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("slco: panic: %v", e.Value)
}

// Unwrap returns the panic value if it was an error, so that
// errors.Is and errors.As see through a contained panic.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// Catch converts a panic in a coroutine body into an [Error] result,
// recording a [PanicError] as the failure cause. Use it in a deferred
// call at the top of a Step method with a named result:
//
//	func (c *fetcher) Step(p slco.Process) (st slco.Status) {
//		defer c.Catch(&st)
//		...
//	}
//
// The Error then propagates through enclosing awaits like any other,
// and the outermost caller finds the cause with [Frame.Err]. Without
// Catch a panic unwinds through every awaiting ancestor's Step frame
// and out of the invocation, which is also fine: all calls are
// synchronous on the one goroutine stack.
func (f *Frame) Catch(st *Status) {
	if v := recover(); v != nil {
		*st = f.Throw(&PanicError{Value: v, Stack: debug.Stack()})
	}
}
