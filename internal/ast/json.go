package ast

import "encoding/json"

// nodeJSON is the JSON wire shape external tooling (or a test fixture) uses
// to hand the interpreter a program: a string element type, an optional
// leaf value, and the same two named-child maps the parser contract of
// spec §6 describes. This is the one concrete encoding this repository
// commits to for its own CLI, since the parser producing the in-memory
// tree is itself out of scope.
type nodeJSON struct {
	Type     string             `json:"type"`
	Value    any                `json:"value,omitempty"`
	Children map[string]*Node   `json:"children,omitempty"`
	Lists    map[string][]*Node `json:"lists,omitempty"`
}

func (n *Node) MarshalJSON() ([]byte, error) {
	return json.Marshal(nodeJSON{
		Type:     n.Type,
		Value:    n.val,
		Children: n.children,
		Lists:    n.lists,
	})
}

// UnmarshalJSON decodes a node, normalizing JSON numbers (which
// encoding/json always hands back as float64) to the int64 literal
// payload the evaluator expects for "int" nodes.
func (n *Node) UnmarshalJSON(data []byte) error {
	var aux nodeJSON
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	n.Type = aux.Type
	n.children = aux.Children
	n.lists = aux.Lists
	if f, ok := aux.Value.(float64); ok {
		n.val = int64(f)
	} else {
		n.val = aux.Value
	}
	return nil
}
