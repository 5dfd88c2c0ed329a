package cfg

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ValueKind discriminates the tagged variants of Value.
type ValueKind int

const (
	// KindEmpty is the zero value: no value was ever produced for a parameter.
	KindEmpty ValueKind = iota
	// KindItem holds a single scalar string.
	KindItem
	// KindList holds a sequence of strings.
	KindList
	// KindDict holds a string-to-string mapping.
	KindDict
)

// Value is the tagged union bound parameter values and constants take.
// It mirrors the Value enum in the Rust original (Item/List/Dict/Empty).
type Value struct {
	Kind ValueKind
	Item string
	List []string
	Dict map[string]string
}

// EmptyValue is the zero Value.
var EmptyValue = Value{Kind: KindEmpty}

// ItemValue constructs a scalar Value.
func ItemValue(s string) Value {
	return Value{Kind: KindItem, Item: s}
}

// ListValue constructs a list Value.
func ListValue(ss []string) Value {
	return Value{Kind: KindList, List: ss}
}

// DictValue constructs a mapping Value.
func DictValue(m map[string]string) Value {
	return Value{Kind: KindDict, Dict: m}
}

func (v Value) String() string {
	switch v.Kind {
	case KindItem:
		return fmt.Sprintf("Value::Item(%s)", v.Item)
	case KindList:
		return fmt.Sprintf("Value::List(%v)", v.List)
	case KindDict:
		return fmt.Sprintf("Value::Dict(%v)", v.Dict)
	default:
		return "Value::Empty"
	}
}

// IsEmpty reports whether the value carries nothing.
func (v Value) IsEmpty() bool {
	return v.Kind == KindEmpty
}

// UnmarshalYAML dispatches on the YAML node shape: a scalar becomes an Item,
// a sequence becomes a List, a mapping becomes a Dict. This is the Go
// equivalent of the hand-rolled serde Visitor in the Rust original
// (cfg/param.rs::deserialize_value).
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var s string
		if err := node.Decode(&s); err != nil {
			return err
		}
		*v = ItemValue(s)
	case yaml.SequenceNode:
		var ss []string
		if err := node.Decode(&ss); err != nil {
			return err
		}
		*v = ListValue(ss)
	case yaml.MappingNode:
		var m map[string]string
		if err := node.Decode(&m); err != nil {
			return err
		}
		*v = DictValue(m)
	default:
		*v = EmptyValue
	}
	return nil
}
