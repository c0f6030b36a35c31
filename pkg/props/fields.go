package props

import (
	"fmt"
	"strings"
)

type Kind string

const (
	KindString      Kind = "string"
	KindNumber      Kind = "number"
	KindBoolean     Kind = "boolean"
	KindReactNode   Kind = "ReactNode"
	KindAny         Kind = "any"
	KindUnknown     Kind = "unknown"
	KindNull        Kind = "null"
	KindUndefined   Kind = "undefined"
	KindDate        Kind = "Date"
	KindStringList  Kind = "string[]"
	KindNumberList  Kind = "number[]"
	KindBooleanList Kind = "boolean[]"
	KindRecord      Kind = "Record<string, any>"
	KindCustom      Kind = "Custom"
	KindStateSetter Kind = "setState"
)

// Kinds lists every selectable kind in display order.
var Kinds = []Kind{
	KindString,
	KindNumber,
	KindBoolean,
	KindReactNode,
	KindAny,
	KindUnknown,
	KindNull,
	KindUndefined,
	KindDate,
	KindStringList,
	KindNumberList,
	KindBooleanList,
	KindRecord,
	KindCustom,
	KindStateSetter,
}

const (
	dispatchName       = "Dispatch"
	setStateActionName = "SetStateAction"
	setterPrefix       = dispatchName + "<" + setStateActionName + "<"
)

func ParseKind(s string) (Kind, error) {
	s = strings.TrimSpace(s)
	for _, k := range Kinds {
		if string(k) == s || strings.EqualFold(string(k), s) {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown field kind %q", s)
}

// FieldDescriptor is one requested prop. Custom holds the free-form type of
// KindCustom; Inner holds the state type of KindStateSetter.
type FieldDescriptor struct {
	Name   string `yaml:"name" json:"name"`
	Kind   Kind   `yaml:"kind" json:"kind"`
	Custom string `yaml:"custom,omitempty" json:"custom,omitempty"`
	Inner  string `yaml:"inner,omitempty" json:"inner,omitempty"`
}

// Field is a resolved name and type pair.
type Field struct {
	Name string
	Type string
}

func (f Field) Line() string {
	return f.Name + ": " + f.Type + ";"
}

// IsSetter reports whether the field's type is a state-setter function type.
func (f Field) IsSetter() bool {
	return strings.HasPrefix(f.Type, setterPrefix)
}

func SetterType(inner string) string {
	inner = strings.TrimSpace(inner)
	if inner == "" {
		inner = "any"
	}
	return setterPrefix + inner + ">>"
}

// Resolve turns d into a Field. The second result is false for rows whose
// name is blank.
func (d FieldDescriptor) Resolve() (Field, bool) {
	name := strings.TrimSpace(d.Name)
	if name == "" {
		return Field{}, false
	}

	switch d.Kind {
	case KindCustom:
		typ := strings.TrimSpace(d.Custom)
		if typ == "" {
			typ = "any"
		}
		return Field{Name: name, Type: typ}, true
	case KindStateSetter:
		return Field{Name: name, Type: SetterType(d.Inner)}, true
	case "":
		return Field{Name: name, Type: string(KindString)}, true
	default:
		return Field{Name: name, Type: strings.TrimSpace(string(d.Kind))}, true
	}
}

// ResolveFields resolves every non-blank descriptor in order.
func ResolveFields(ds []FieldDescriptor) []Field {
	fields := make([]Field, 0, len(ds))
	for _, d := range ds {
		if f, ok := d.Resolve(); ok {
			fields = append(fields, f)
		}
	}
	return fields
}

// ParseFieldSpec parses the compact `name:kind[:type]` form used on the
// command line, e.g. `count:setState:number` or `user:Custom:User`.
func ParseFieldSpec(spec string) (FieldDescriptor, error) {
	parts := strings.SplitN(spec, ":", 3)
	d := FieldDescriptor{Name: strings.TrimSpace(parts[0]), Kind: KindString}
	if d.Name == "" {
		return FieldDescriptor{}, fmt.Errorf("field %q: name is empty", spec)
	}

	if len(parts) > 1 {
		k, err := ParseKind(parts[1])
		if err != nil {
			return FieldDescriptor{}, fmt.Errorf("field %q: %w", spec, err)
		}
		d.Kind = k
	}

	if len(parts) > 2 {
		switch d.Kind {
		case KindCustom:
			d.Custom = parts[2]
		case KindStateSetter:
			d.Inner = parts[2]
		default:
			return FieldDescriptor{}, fmt.Errorf("field %q: kind %s takes no type argument", spec, d.Kind)
		}
	}

	return d, nil
}
