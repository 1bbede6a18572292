package argskwargs_test

import (
	"encoding/json"
	"testing"

	"gopkg.in/yaml.v3"

	. "github.com/adamchainz/argskwargs"
)

func TestJSONRoundTrip(t *testing.T) {
	// JSON decodes numbers into float64, so use values that survive
	// the trip unchanged.
	a := New("x", float64(2), K("b", "y"), K("c", float64(3)))

	data, err := json.Marshal(a)
	if err != nil {
		t.Fatal(err)
	}

	var b Arguments
	if err := json.Unmarshal(data, &b); err != nil {
		t.Fatal(err)
	}

	if !a.Equal(&b) {
		t.Errorf("round trip changed contents: got %v want %v", &b, a)
	}
}

func TestJSONDeterministic(t *testing.T) {
	a := New(1, 2, K("b", 2), K("a", 1))

	data, err := json.Marshal(a)
	if err != nil {
		t.Fatal(err)
	}

	want := `{"args":[1,2],"kwargs":{"a":1,"b":2}}`
	if string(data) != want {
		t.Errorf("got %s want %s", data, want)
	}
}

func TestJSONRoundTripEmpty(t *testing.T) {
	data, err := json.Marshal(New())
	if err != nil {
		t.Fatal(err)
	}

	var b Arguments
	if err := json.Unmarshal(data, &b); err != nil {
		t.Fatal(err)
	}

	if !b.Equal(New()) {
		t.Errorf("got %v want empty container", &b)
	}
}

func TestYAMLRoundTrip(t *testing.T) {
	a := New("x", 2, K("b", "y"), K("c", 3))

	data, err := yaml.Marshal(a)
	if err != nil {
		t.Fatal(err)
	}

	var b Arguments
	if err := yaml.Unmarshal(data, &b); err != nil {
		t.Fatal(err)
	}

	if !a.Equal(&b) {
		t.Errorf("round trip changed contents: got %v want %v", &b, a)
	}
}

// A decoded container is a fully live instance: the factory bypass for
// deserialization still produces sealed, usable values.
func TestUnmarshalProducesUsableContainer(t *testing.T) {
	var b Arguments
	if err := json.Unmarshal([]byte(`{"args":[1],"kwargs":{"a":2}}`), &b); err != nil {
		t.Fatal(err)
	}

	if got := b.String(); got != `argskwargs(1, a=2)` {
		t.Errorf("got %q want argskwargs(1, a=2)", got)
	}
	if (&b).Extend() != &b {
		t.Error("Extend() on a decoded container must return the same instance")
	}

	f := TargetFunc(func(args []any, kwargs map[string]any) (any, error) {
		return len(args) + len(kwargs), nil
	})
	result, err := b.Apply(f)
	if err != nil {
		t.Fatal(err)
	}
	if result != 2 {
		t.Errorf("got %v want 2", result)
	}
}
