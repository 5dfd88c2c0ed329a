package cfg

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// NargsKind discriminates the Nargs variants.
type NargsKind int

const (
	NargsOne NargsKind = iota
	NargsZero
	NargsOneOrZero
	NargsOneOrMore
	NargsZeroOrMore
	NargsRange
)

// Nargs describes how many argument tokens a parameter consumes. Range
// carries (lo, hi) with lo already decremented by one, matching the Rust
// original's "{lo}:{hi}" -> Range(lo-1, hi) literal syntax (spec.md §6).
type Nargs struct {
	Kind NargsKind
	Lo   int
	Hi   int
}

func (n Nargs) String() string {
	switch n.Kind {
	case NargsOne:
		return "1"
	case NargsZero:
		return "0"
	case NargsOneOrZero:
		return "?"
	case NargsOneOrMore:
		return "+"
	case NargsZeroOrMore:
		return "*"
	case NargsRange:
		return fmt.Sprintf("%d:%d", n.Lo+1, n.Hi)
	default:
		return ""
	}
}

// DefaultNargs is the Nargs used when a ParamDef omits the field.
var DefaultNargs = Nargs{Kind: NargsOne}

// ParseNargs implements the `nargs` literal syntax from spec.md §6.
func ParseNargs(s string) (Nargs, error) {
	switch s {
	case "1":
		return Nargs{Kind: NargsOne}, nil
	case "0":
		return Nargs{Kind: NargsZero}, nil
	case "?":
		return Nargs{Kind: NargsOneOrZero}, nil
	case "+":
		return Nargs{Kind: NargsOneOrMore}, nil
	case "*":
		return Nargs{Kind: NargsZeroOrMore}, nil
	}
	if strings.Contains(s, ":") {
		parts := strings.SplitN(s, ":", 2)
		lo, err := strconv.Atoi(parts[0])
		if err != nil {
			return Nargs{}, fmt.Errorf("nargs: invalid range %q: %w", s, err)
		}
		hi, err := strconv.Atoi(parts[1])
		if err != nil {
			return Nargs{}, fmt.Errorf("nargs: invalid range %q: %w", s, err)
		}
		return Nargs{Kind: NargsRange, Lo: lo - 1, Hi: hi}, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return Nargs{}, fmt.Errorf("nargs: invalid literal %q: %w", s, err)
	}
	return Nargs{Kind: NargsRange, Lo: 0, Hi: n}, nil
}

// UnmarshalYAML decodes the scalar nargs literal.
func (n *Nargs) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseNargs(s)
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}
