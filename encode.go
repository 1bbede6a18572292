package argskwargs

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// state is the wire shape of a container: its two constituent halves.
// Decoding rebuilds a live instance without going through New, which is
// the one sanctioned bypass of the factory-only construction rule.
type state struct {
	Args   []any          `json:"args" yaml:"args"`
	Kwargs map[string]any `json:"kwargs,omitempty" yaml:"kwargs,omitempty"`
}

func (a *Arguments) MarshalJSON() ([]byte, error) {
	a.mustSealed()
	return json.Marshal(state{Args: a.args, Kwargs: a.kwargs})
}

func (a *Arguments) UnmarshalJSON(data []byte) error {
	var s state
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("json unmarshal: %w", err)
	}
	a.setState(s)
	return nil
}

func (a *Arguments) MarshalYAML() (any, error) {
	a.mustSealed()
	return state{Args: a.args, Kwargs: a.kwargs}, nil
}

func (a *Arguments) UnmarshalYAML(value *yaml.Node) error {
	var s state
	if err := value.Decode(&s); err != nil {
		return fmt.Errorf("yaml unmarshal: %w", err)
	}
	a.setState(s)
	return nil
}

func (a *Arguments) setState(s state) {
	a.args = s.Args
	a.kwargs = s.Kwargs
	a.sealed = true
}
