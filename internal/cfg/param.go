package cfg

import "strings"

// ParamKind is the inferred shape of a parameter's command-line surface.
type ParamKind int

const (
	// Positional has no short/long flag; it fills declared positional slots.
	Positional ParamKind = iota
	// Option takes a flag plus a value.
	Option
	// Flag takes a bare flag with no value (boolean-shaped default).
	Flag
)

func (k ParamKind) String() string {
	switch k {
	case Flag:
		return "flag"
	case Option:
		return "option"
	default:
		return "positional"
	}
}

// ParamDef is the in-memory representation of a manifest parameter, after
// title parsing and kind inference (spec.md §3, §4.1).
type ParamDef struct {
	// Title is the raw map key as written in the manifest, e.g. "-g|--greeting".
	Title string

	// Derived during ingestion.
	Name  string
	Short string // one character, empty if absent
	Long  string
	Kind  ParamKind

	// Declared fields.
	Dest     string   `yaml:"dest"`
	Metavar  string   `yaml:"metavar"`
	Default  *string  `yaml:"default"`
	Constant Value    `yaml:"constant"`
	Choices  []string `yaml:"choices"`
	Nargs    Nargs    `yaml:"nargs"`
	Help     string   `yaml:"help"`
}

// paramDefYAML mirrors ParamDef's declared (non-derived) fields for decoding.
type paramDefYAML struct {
	Dest     string   `yaml:"dest"`
	Metavar  string   `yaml:"metavar"`
	Default  *string  `yaml:"default"`
	Constant Value    `yaml:"constant"`
	Choices  []string `yaml:"choices"`
	Nargs    *Nargs   `yaml:"nargs"`
	Help     string   `yaml:"help"`
}

func newParamDefFromYAML(y paramDefYAML) ParamDef {
	nargs := DefaultNargs
	if y.Nargs != nil {
		nargs = *y.Nargs
	}
	return ParamDef{
		Dest:     y.Dest,
		Metavar:  y.Metavar,
		Default:  y.Default,
		Constant: y.Constant,
		Choices:  y.Choices,
		Nargs:    nargs,
		Help:     y.Help,
	}
}

// divine splits a parameter title on '|' and derives (name, short, long),
// exactly as the Rust original's cfg/spec.rs::divine does: a 2-character
// token beginning with '-' contributes short; a >2-character token
// beginning with "--" contributes long; canonical name is long, else
// short's one-character form, else the raw title.
func divine(title string) (name, short, long string) {
	for _, tok := range strings.Split(title, "|") {
		switch {
		case len(tok) == 2 && strings.HasPrefix(tok, "-") && !strings.HasPrefix(tok, "--"):
			short = strings.TrimPrefix(tok, "-")
		case len(tok) > 2 && strings.HasPrefix(tok, "--"):
			long = strings.TrimPrefix(tok, "--")
		}
	}
	switch {
	case long != "":
		name = long
	case short != "":
		name = short
	default:
		name = title
	}
	return name, short, long
}

// applyTitle derives Name/Short/Long/Kind from Title per spec.md §3's
// ParamDef invariant.
func (p *ParamDef) applyTitle() {
	p.Name, p.Short, p.Long = divine(p.Title)
	switch {
	case p.Short != "" || p.Long != "":
		p.Kind = Option
		if p.Default != nil && (*p.Default == "true" || *p.Default == "false") {
			p.Kind = Flag
		}
	default:
		p.Kind = Positional
	}
}
