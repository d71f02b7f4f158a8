package crdesc

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
)

// OrderedMap is a JSON object which remembers members order.
// Branch numbering and crosswalk listing depend on the order entities appear in the model file.
type OrderedMap[T any] struct {
	keys    []string
	values  map[string]T
	present bool
}

// memberError is a failure to decode a single member of an OrderedMap
type memberError struct {
	Key string
	Err error
}

func (err *memberError) Error() string {
	return fmt.Sprintf("Can't decode member '%s': %s", err.Key, err.Err.Error())
}

func (err *memberError) Unwrap() error {
	return err.Err
}

// Set adds or replaces value. New keys go to the end.
func (m *OrderedMap[T]) Set(key string, value T) {
	if m.values == nil {
		m.values = make(map[string]T)
	}
	m.present = true
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Get returns value for given key
func (m *OrderedMap[T]) Get(key string) (T, bool) {
	value, ok := m.values[key]
	return value, ok
}

// Keys returns keys in insertion (document) order
func (m *OrderedMap[T]) Keys() []string {
	return m.keys
}

// Present tells whether the object was given at all. An empty object is present, null or missing one is not.
func (m *OrderedMap[T]) Present() bool {
	return m.present
}

// Len returns number of members
func (m *OrderedMap[T]) Len() int {
	return len(m.keys)
}

// UnmarshalJSON implements json.Unmarshaler
func (m *OrderedMap[T]) UnmarshalJSON(data []byte) error {
	*m = OrderedMap[T]{}
	decoder := json.NewDecoder(bytes.NewReader(data))
	token, err := decoder.Token()
	if err != nil {
		return err
	}
	if token == nil {
		return nil
	}
	if delim, ok := token.(json.Delim); !ok || delim != '{' {
		return errors.Errorf("Expected JSON object, got '%v'", token)
	}
	m.present = true
	for decoder.More() {
		token, err = decoder.Token()
		if err != nil {
			return err
		}
		key, ok := token.(string)
		if !ok {
			return errors.Errorf("Expected object key, got '%v'", token)
		}
		var value T
		if err = decoder.Decode(&value); err != nil {
			return &memberError{Key: key, Err: err}
		}
		m.Set(key, value)
	}
	_, err = decoder.Token()
	return err
}

// flexString accepts JSON strings, numbers and booleans. Traffic light attributes come in both forms.
type flexString string

func (fs *flexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*fs = ""
		return nil
	case len(data) > 0 && data[0] == '"':
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*fs = flexString(str)
		return nil
	}
	*fs = flexString(data)
	return nil
}
