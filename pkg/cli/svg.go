package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/withgalaxy/tsxkit/pkg/config"
	"github.com/withgalaxy/tsxkit/pkg/notify"
	"github.com/withgalaxy/tsxkit/pkg/studio"
	"github.com/withgalaxy/tsxkit/pkg/watch"
)

var (
	svgName        string
	svgColor       string
	svgOut         string
	svgNoClip      bool
	svgInteractive bool
)

var svgCmd = &cobra.Command{
	Use:   "svg [file]",
	Short: "Convert SVG markup into a TSX icon component",
	Long: `Convert SVG markup from a file or stdin into an exported icon component.
Static stroke and fill colors become the color prop.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSVG,
}

func init() {
	rootCmd.AddCommand(svgCmd)
	svgCmd.Flags().StringVar(&svgName, "name", "", "component name (default derived from the file name)")
	svgCmd.Flags().StringVar(&svgColor, "color", "", "default color (default from config)")
	svgCmd.Flags().StringVarP(&svgOut, "out", "o", "", "write the component to this file")
	svgCmd.Flags().BoolVar(&svgNoClip, "no-clipboard", false, "do not copy the result")
	svgCmd.Flags().BoolVarP(&svgInteractive, "interactive", "i", false, "prompt for missing values")
}

func runSVG(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	file := ""
	if len(args) > 0 {
		file = args[0]
	}

	req := svgRequest{Name: svgName, Color: svgColor}
	if req.Name == "" && file != "" && file != "-" {
		req.Name = watch.ComponentName(cfg.Icon.Prefix, file)
	}

	if file != "" || !svgInteractive {
		req.SVG, err = readInput(file, cmd.InOrStdin())
		if err != nil {
			return err
		}
	}

	if svgInteractive {
		if err := promptSVG(&req, cfg); err != nil {
			return err
		}
	}

	out, err := convertSVG(cmd.Context(), cfg, req, svgNoClip)
	if out == "" {
		return err
	}

	if werr := writeOutput(svgOut, out, cmd.OutOrStdout()); werr != nil {
		return werr
	}
	if svgOut != "" {
		status("📝 Wrote %s\n", svgOut)
	}

	// A failed copy has already been reported; the component still stands.
	if errors.Is(err, studio.ErrClipboard) {
		return nil
	}
	return err
}

type svgRequest struct {
	Name  string
	Color string
	SVG   string
}

// convertSVG runs the icon page once. The returned output is set whenever
// conversion succeeded, even if copying failed.
func convertSVG(ctx context.Context, cfg *config.Config, req svgRequest, noClip bool) (string, error) {
	env := studio.Env{
		Clipboard: clipboardFor(cfg, noClip),
		Notifier:  terminalNotifier(),
	}
	if noClip || !cfg.Clipboard.Enabled {
		env.Notifier = notify.Discard
	}

	page := studio.NewIconPage(cfg, env)
	page.Name = req.Name
	page.SVG = strings.TrimSpace(req.SVG)
	if req.Color != "" {
		page.Color = req.Color
	}

	if ctx == nil {
		ctx = context.Background()
	}
	if err := page.Generate(ctx); err != nil {
		if errors.Is(err, studio.ErrInputValidation) {
			return "", fmt.Errorf("convert svg: %w", err)
		}
		return page.Output, err
	}
	return page.Output, nil
}

func promptSVG(req *svgRequest, cfg *config.Config) error {
	var qs []*survey.Question

	if req.Name == "" {
		qs = append(qs, &survey.Question{
			Name:     "Name",
			Prompt:   &survey.Input{Message: "Component name:", Default: cfg.Icon.Prefix},
			Validate: survey.Required,
		})
	}
	if req.Color == "" {
		qs = append(qs, &survey.Question{
			Name:   "Color",
			Prompt: &survey.Input{Message: "Default color:", Default: cfg.Icon.DefaultColor},
		})
	}
	if strings.TrimSpace(req.SVG) == "" {
		qs = append(qs, &survey.Question{
			Name:     "SVG",
			Prompt:   &survey.Multiline{Message: "SVG markup:"},
			Validate: survey.Required,
		})
	}

	if len(qs) == 0 {
		return nil
	}
	if err := survey.Ask(qs, req, surveyStdio()); err != nil {
		return fmt.Errorf("prompt: %w", err)
	}
	return nil
}
