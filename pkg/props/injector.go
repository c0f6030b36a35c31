// Package props injects typed props into a default-exported function
// component.
//
// Injection finds the component declaration and merges the requested field
// names into its destructured parameter list. It then creates or extends the
// component's props interface and, when a state-setter prop is requested,
// makes sure the setter types are imported from the framework module.
package props

import (
	"strconv"
	"strings"
)

type Options struct {
	// InterfaceSuffix is appended to the component name to name the props
	// interface.
	InterfaceSuffix string
	// FrameworkModule is the module the setter types are imported from.
	FrameworkModule string
}

func DefaultOptions() Options {
	return Options{
		InterfaceSuffix: "Props",
		FrameworkModule: "react",
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.InterfaceSuffix == "" {
		o.InterfaceSuffix = d.InterfaceSuffix
	}
	if o.FrameworkModule == "" {
		o.FrameworkModule = d.FrameworkModule
	}
	return o
}

func (o Options) InterfaceName(component string) string {
	return component + o.withDefaults().InterfaceSuffix
}

type Result struct {
	Output    string
	Component string
	Interface string
	Params    []Param
	// AddedFields are the fields appended to the props interface.
	AddedFields []Field
	// CreatedInterface is set when no props interface existed before.
	CreatedInterface bool
	ImportsChanged   bool
}

// Inject rewrites src so that the default-exported component accepts every
// field in fields. It returns a ParseError, and no output, when src has no
// `export default function Name(...)` declaration.
func Inject(src string, fields []FieldDescriptor, opts Options) (*Result, error) {
	opts = opts.withDefaults()

	sig, err := ParseSignature(src)
	if err != nil {
		return nil, err
	}

	resolved := uniqueFields(ResolveFields(fields))
	iface := opts.InterfaceName(sig.Name)

	names := make([]string, len(resolved))
	for i, f := range resolved {
		names[i] = f.Name
	}
	params := MergeParams(ParseParams(sig.Params), names)

	out := src[:sig.ParamsStart] + RenderParams(params, iface) + src[sig.ParamsEnd:]

	res := &Result{
		Component: sig.Name,
		Interface: iface,
		Params:    params,
	}

	if block, ok := FindTypeBlock(out, iface); ok {
		merged, added := block.Merge(resolved)
		out = out[:block.Start] + merged.Render() + out[block.End:]
		res.AddedFields = added
	} else {
		block := NewTypeBlock(iface, resolved)
		out = out[:sig.Start] + block.Render() + "\n\n" + out[sig.Start:]
		res.AddedFields = resolved
		res.CreatedInterface = true
	}

	if hasSetter(resolved) {
		out, res.ImportsChanged = EnsureImports(out, opts.FrameworkModule, SetterImports)
	}

	res.Output = out
	return res, nil
}

func uniqueFields(fields []Field) []Field {
	seen := make(map[string]bool, len(fields))
	out := fields[:0:0]
	for _, f := range fields {
		if seen[f.Name] {
			continue
		}
		seen[f.Name] = true
		out = append(out, f)
	}
	return out
}

func hasSetter(fields []Field) bool {
	for _, f := range fields {
		if f.IsSetter() {
			return true
		}
	}
	return false
}

// Describe summarises r in one line for status output.
func (r *Result) Describe() string {
	var parts []string
	if r.CreatedInterface {
		parts = append(parts, "created "+r.Interface)
	} else {
		parts = append(parts, "extended "+r.Interface)
	}
	if n := len(r.AddedFields); n == 1 {
		parts = append(parts, "1 field added")
	} else {
		parts = append(parts, strconv.Itoa(n)+" fields added")
	}
	if r.ImportsChanged {
		parts = append(parts, "imports updated")
	}
	return r.Component + ": " + strings.Join(parts, ", ")
}
