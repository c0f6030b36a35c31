package studio

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/withgalaxy/tsxkit/pkg/config"
	"github.com/withgalaxy/tsxkit/pkg/props"
)

const SampleComponent = `export default function Panel() {
  return (<div></div>);
}`

type RowField string

const (
	RowName   RowField = "name"
	RowKind   RowField = "type"
	RowCustom RowField = "customType"
	RowInner  RowField = "stateType"
)

// PropsPage injects the rows as props into the pasted component.
type PropsPage struct {
	Input  string
	Rows   []props.FieldDescriptor
	Output string
	// Last is the result of the most recent successful Generate.
	Last *props.Result

	opts props.Options
	env  Env
}

func NewPropsPage(cfg *config.Config, env Env) *PropsPage {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	p := &PropsPage{
		opts: PropsOptions(cfg),
		env:  env.withDefaults(),
	}
	p.Reset()
	return p
}

func PropsOptions(cfg *config.Config) props.Options {
	return props.Options{
		InterfaceSuffix: cfg.Props.InterfaceSuffix,
		FrameworkModule: cfg.Props.FrameworkModule,
	}
}

func blankRow() props.FieldDescriptor {
	return props.FieldDescriptor{Kind: props.KindString}
}

// Reset restores the sample input and a single blank row.
func (p *PropsPage) Reset() {
	p.Input = SampleComponent
	p.Rows = []props.FieldDescriptor{blankRow()}
	p.Output = ""
	p.Last = nil
}

func (p *PropsPage) AddRow() {
	p.Rows = append(p.Rows, blankRow())
}

func (p *PropsPage) RemoveRow(i int) error {
	if i < 0 || i >= len(p.Rows) {
		return fmt.Errorf("remove row %d: out of range [0,%d)", i, len(p.Rows))
	}
	p.Rows = append(p.Rows[:i:i], p.Rows[i+1:]...)
	return nil
}

func (p *PropsPage) SetRow(i int, field RowField, value string) error {
	if i < 0 || i >= len(p.Rows) {
		return fmt.Errorf("set row %d: out of range [0,%d)", i, len(p.Rows))
	}

	row := &p.Rows[i]
	switch field {
	case RowName:
		row.Name = value
	case RowKind:
		k, err := props.ParseKind(value)
		if err != nil {
			return fmt.Errorf("set row %d: %w", i, err)
		}
		row.Kind = k
	case RowCustom:
		row.Custom = value
	case RowInner:
		row.Inner = value
	default:
		return fmt.Errorf("set row %d: unknown field %q", i, field)
	}
	return nil
}

// Generate injects the rows into Input. A missing declaration leaves Output
// untouched.
func (p *PropsPage) Generate(ctx context.Context) error {
	if strings.TrimSpace(p.Input) == "" {
		p.env.Notifier.Failure(TitleInputError, "Paste the component source first.")
		return ErrInputValidation
	}

	res, err := props.Inject(p.Input, p.Rows, p.opts)
	if err != nil {
		if errors.Is(err, props.ErrNoDeclaration) {
			p.env.Notifier.Failure(TitleParseFailed, "Could not find an `export default function` component declaration.")
		} else {
			p.env.Notifier.Failure(TitleFailed, err.Error())
		}
		return err
	}

	p.Output = res.Output
	p.Last = res

	if err := p.env.Clipboard.Write(ctx, res.Output); err != nil {
		p.env.Notifier.Failure(TitleFailed, "Could not copy to the clipboard.")
		return fmt.Errorf("%w: %v", ErrClipboard, err)
	}

	p.env.Notifier.Success(TitleDone, "Props injected and copied ✅")
	return nil
}
