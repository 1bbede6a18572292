// Package argskwargs provides an immutable container that bundles a
// positional argument list with a keyword argument map, so a set of
// arguments can be built once and applied later to different targets.
//
// # Immutability
//
// Arguments values are read-only data containers. Every "modifying"
// operation returns a new instance; the stored containers are never
// mutated in place. Callers that receive the stored containers (Unpack,
// the zero-extras Apply fast path) MUST NOT modify them.
//
// Construct instances with New; the zero value and composite literals
// are unusable and every method panics on them.
package argskwargs

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// ErrDirectConstruction is the panic value raised when a method is
// invoked on an Arguments value that was not produced by New (or
// rebuilt by one of the unmarshal paths).
var ErrDirectConstruction = errors.New(
	"argskwargs: Arguments must be created with New, not constructed directly")

// Kwarg is a single named argument. Pass Kwarg values (built with K) to
// New, Apply, Partial or Extend alongside plain positional values.
type Kwarg struct {
	Name  string
	Value any
}

// K returns a named argument for use in a variadic argument list.
func K(name string, value any) Kwarg {
	return Kwarg{Name: name, Value: value}
}

// Arguments holds an ordered positional value sequence and a keyed
// named-value map. Instances are immutable and safe to share across
// goroutines without locking.
type Arguments struct {
	args   []any
	kwargs map[string]any
	sealed bool
}

//
// Public API
//

// New returns a new container holding the passed arguments.
//
// Plain values become positional arguments in the given order. Kwarg
// values (see K) become named arguments; when the same name appears
// more than once, the last one wins. Values are stored as-is, with no
// validation or coercion.
//
// New is the only sanctioned construction path.
func New(values ...any) *Arguments {
	args, kwargs := split(values)
	return &Arguments{args: args, kwargs: kwargs, sealed: true}
}

// Args returns the stored positional arguments. The slice is the
// container's own storage; treat it as read-only.
func (a *Arguments) Args() []any {
	a.mustSealed()
	return a.args
}

// Kwargs returns the stored named arguments. The map is the container's
// own storage (possibly nil when no named arguments exist); treat it as
// read-only.
func (a *Arguments) Kwargs() map[string]any {
	a.mustSealed()
	return a.kwargs
}

// Unpack destructures the container into its two halves: the positional
// sequence, then the named map. Both are the stored containers, not
// copies.
func (a *Arguments) Unpack() ([]any, map[string]any) {
	a.mustSealed()
	return a.args, a.kwargs
}

// String renders the container deterministically for debugging and
// logging: positional values in original order, then named values as
// key=value sorted by key, comma-joined and wrapped as argskwargs(...).
// The format is not meant to be parsed back.
func (a *Arguments) String() string {
	a.mustSealed()

	chunks := make([]string, 0, len(a.args)+len(a.kwargs))
	for _, arg := range a.args {
		chunks = append(chunks, display(arg))
	}

	names := make([]string, 0, len(a.kwargs))
	for name := range a.kwargs {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		chunks = append(chunks, name+"="+display(a.kwargs[name]))
	}

	return "argskwargs(" + strings.Join(chunks, ", ") + ")"
}

// Equal reports whether both containers hold element-wise equal
// positional sequences and key/value equal named maps. A nil other is
// never equal. Values are compared with reflect.DeepEqual.
func (a *Arguments) Equal(other *Arguments) bool {
	a.mustSealed()
	if other == nil {
		return false
	}
	other.mustSealed()

	if len(a.args) != len(other.args) || len(a.kwargs) != len(other.kwargs) {
		return false
	}
	for i := range a.args {
		if !reflect.DeepEqual(a.args[i], other.args[i]) {
			return false
		}
	}
	for name, value := range a.kwargs {
		otherValue, ok := other.kwargs[name]
		if !ok || !reflect.DeepEqual(value, otherValue) {
			return false
		}
	}
	return true
}

// Extend returns a new container with the extra arguments merged in:
// positionals appended after the stored ones, named values unioned with
// extras winning on name collision.
//
// With no extras the receiver itself is returned. The type is
// immutable, so sharing the instance is safe and avoids allocation;
// callers may rely on the pointer identity.
func (a *Arguments) Extend(extra ...any) *Arguments {
	a.mustSealed()
	if len(extra) == 0 {
		return a
	}
	args, kwargs := a.merge(split(extra))
	return &Arguments{args: args, kwargs: kwargs, sealed: true}
}

//
// Helper Functions (internal API)
//

func (a *Arguments) mustSealed() {
	if !a.sealed {
		panic(ErrDirectConstruction)
	}
}

// split separates a variadic value list into positionals and kwargs.
// Returns nil containers when a side is empty.
func split(values []any) ([]any, map[string]any) {
	var args []any
	var kwargs map[string]any
	for _, v := range values {
		if kw, ok := v.(Kwarg); ok {
			if kwargs == nil {
				kwargs = make(map[string]any)
			}
			kwargs[kw.Name] = kw.Value
			continue
		}
		args = append(args, v)
	}
	return args, kwargs
}

// merge combines the stored containers with extras. Sides without
// extras reuse the stored container unchanged; only touched sides are
// copied.
func (a *Arguments) merge(extraArgs []any, extraKwargs map[string]any) ([]any, map[string]any) {
	args := a.args
	if len(extraArgs) > 0 {
		args = make([]any, 0, len(a.args)+len(extraArgs))
		args = append(args, a.args...)
		args = append(args, extraArgs...)
	}

	kwargs := a.kwargs
	if len(extraKwargs) > 0 {
		kwargs = make(map[string]any, len(a.kwargs)+len(extraKwargs))
		for name, value := range a.kwargs {
			kwargs[name] = value
		}
		for name, value := range extraKwargs {
			kwargs[name] = value
		}
	}

	return args, kwargs
}

// display renders a single value. Strings are quoted so they stay
// distinguishable from their bare rendering; everything else uses the
// default format.
func display(v any) string {
	if s, ok := v.(string); ok {
		return strconv.Quote(s)
	}
	return fmt.Sprintf("%v", v)
}
