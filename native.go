package rail

import "github.com/jcorbin/rail/internal/panicerr"

// recoverNative invokes f (a native command's body) behind the teacher's
// goroutine-isolated panic recovery, so a bug in a built-in — an index out
// of range, a nil deref — surfaces as a HostIOError with the pre-invocation
// state s preserved, rather than crashing the whole evaluator (spec.md §7:
// "Primitive errors in native commands ... should ... surface via the same
// error channel rather than terminating the process").
func recoverNative(name string, s State, f func() (State, error)) (State, error) {
	var result State
	var ferr error
	if err := panicerr.Recover(name, func() error {
		result, ferr = f()
		return ferr
	}); err != nil {
		if panicerr.IsPanic(err) || panicerr.IsExit(err) {
			return s, HostIOError{Op: name, Err: err}
		}
		return result, err
	}
	return result, nil
}
