package gettext

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Message pairs a decoded Value tree with a base argument map. Args is not
// part of the serialized form; it carries ambient values (request scoped
// data for instance) that callers add after decoding.
type Message struct {
	Value Value
	Args  map[string]string
}

var (
	_ json.Unmarshaler = &Message{}
	_ json.Marshaler   = Message{}
	_ yaml.Unmarshaler = &Message{}
	_ yaml.Marshaler   = Message{}
)

// NewMessage wraps v with an empty base argument map.
func NewMessage(v Value) *Message {
	return &Message{Value: v, Args: make(map[string]string)}
}

// SetArg adds or replaces a base argument.
func (m *Message) SetArg(key, value string) {
	if m.Args == nil {
		m.Args = make(map[string]string)
	}
	m.Args[key] = value
}

// Resolve renders the message with r, or with the default resolver when r
// is nil.
func (m *Message) Resolve(r *Resolver) (string, error) {
	if r == nil {
		r = defaultResolver
	}
	return r.Resolve(m.Value, m.Args)
}

func (m *Message) UnmarshalJSON(data []byte) error {
	raw, err := decodeJSON(data)
	if err != nil {
		return err
	}
	value, err := Decode(raw)
	if err != nil {
		return err
	}
	m.Value = value
	return nil
}

func (m Message) MarshalJSON() ([]byte, error) {
	raw, err := Encode(m.Value)
	if err != nil {
		return nil, err
	}
	return json.Marshal(raw)
}

func (m *Message) UnmarshalYAML(node *yaml.Node) error {
	var raw any
	if err := node.Decode(&raw); err != nil {
		return fmt.Errorf("gettext: yaml decode: %w", err)
	}
	value, err := Decode(raw)
	if err != nil {
		return err
	}
	m.Value = value
	return nil
}

func (m Message) MarshalYAML() (any, error) {
	return Encode(m.Value)
}
