package studio

import (
	"context"
	"fmt"

	"github.com/withgalaxy/tsxkit/pkg/config"
	"github.com/withgalaxy/tsxkit/pkg/transform"
)

// IconPage converts pasted SVG markup into an icon component.
type IconPage struct {
	Name   string
	Color  string
	SVG    string
	Output string

	opts transform.IconOptions
	env  Env
}

func NewIconPage(cfg *config.Config, env Env) *IconPage {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &IconPage{
		Color: cfg.Icon.DefaultColor,
		opts:  IconOptions(cfg),
		env:   env.withDefaults(),
	}
}

func IconOptions(cfg *config.Config) transform.IconOptions {
	return transform.IconOptions{
		PropsType: cfg.Icon.PropsType,
		Rewrite: transform.RewriteOptions{
			ExtendedAttributes: cfg.Icon.ExtendedAttributes,
		},
	}
}

// Generate converts the current input. On success Output holds the
// component, even when copying it fails afterwards.
func (p *IconPage) Generate(ctx context.Context) error {
	out, err := transform.ConvertIcon(transform.IconRequest{
		Name:  p.Name,
		Color: p.Color,
		SVG:   p.SVG,
	}, p.opts)
	if err != nil {
		p.env.Notifier.Failure(TitleInputError, "Enter an icon name and the SVG markup.")
		return fmt.Errorf("%w: %v", ErrInputValidation, err)
	}

	p.Output = out

	if err := p.env.Clipboard.Write(ctx, out); err != nil {
		p.env.Notifier.Failure(TitleFailed, "Could not copy to the clipboard.")
		return fmt.Errorf("%w: %v", ErrClipboard, err)
	}

	p.env.Notifier.Success(TitleCopied, "The converted component was copied to the clipboard ✅")
	return nil
}
