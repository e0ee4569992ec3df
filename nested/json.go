// SPDX-License-Identifier: MIT

package nested

import (
	"bytes"
	"encoding/json"
)

// MarshalJSON encodes leaves as their element and nodes as JSON arrays.
func (v Value[T]) MarshalJSON() ([]byte, error) {
	if v.leaf {
		return json.Marshal(v.scalar)
	}
	items := v.items
	if items == nil {
		items = []Value[T]{}
	}

	return json.Marshal(items)
}

// UnmarshalJSON decodes JSON arrays into nodes and any other JSON value into
// a leaf of type T.
func (v *Value[T]) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var items []Value[T]
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return err
		}
		if items == nil {
			items = []Value[T]{}
		}
		*v = Value[T]{items: items}

		return nil
	}

	var scalar T
	if err := json.Unmarshal(trimmed, &scalar); err != nil {
		return err
	}
	*v = Leaf(scalar)

	return nil
}
