package argskwargs

// Target is anything invokable with positional and keyword arguments.
// Go has no named-argument call convention, so targets accept the two
// argument containers directly.
type Target interface {
	Call(args []any, kwargs map[string]any) (any, error)
}

// TargetFunc adapts a plain function to the Target interface.
type TargetFunc func(args []any, kwargs map[string]any) (any, error)

func (f TargetFunc) Call(args []any, kwargs map[string]any) (any, error) {
	return f(args, kwargs)
}

// Apply invokes target with the stored arguments.
//
// Extra values are merged first: extra positionals appended after the
// stored ones, extra named values (Kwarg entries) overriding stored
// values on name collision. With no extras the stored containers are
// handed to the target as-is, without copying; callers may rely on that
// zero-copy behavior on the hot path.
//
// Whatever target returns is returned unchanged; Apply introduces no
// failure modes of its own around the call.
func (a *Arguments) Apply(target Target, extra ...any) (any, error) {
	a.mustSealed()

	// No extra arguments; avoid copying.
	if len(extra) == 0 {
		return target.Call(a.args, a.kwargs)
	}

	args, kwargs := a.merge(split(extra))
	return target.Call(args, kwargs)
}

// Partial returns a deferred callable pre-bound to the stored arguments
// merged with any extras, using the same merge rule as Apply. The
// result is itself a Target, so it composes with further partial
// application.
//
// Invoking the returned TargetFunc with additional arguments merges
// them in turn: bound positionals first, call-time kwargs winning on
// collision. Invoking it with nil containers performs the same call as
// Apply with no extras.
func (a *Arguments) Partial(target Target, extra ...any) TargetFunc {
	a.mustSealed()

	bound := a
	if len(extra) > 0 {
		bound = a.Extend(extra...)
	}

	return func(args []any, kwargs map[string]any) (any, error) {
		if len(args) == 0 && len(kwargs) == 0 {
			return target.Call(bound.args, bound.kwargs)
		}
		mergedArgs, mergedKwargs := bound.merge(args, kwargs)
		return target.Call(mergedArgs, mergedKwargs)
	}
}
