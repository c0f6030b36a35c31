package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/withgalaxy/tsxkit/pkg/config"
	"github.com/withgalaxy/tsxkit/pkg/notify"
	"github.com/withgalaxy/tsxkit/pkg/props"
	"github.com/withgalaxy/tsxkit/pkg/studio"
)

var (
	propsFields      []string
	propsFieldsFile  string
	propsWrite       bool
	propsOut         string
	propsNoClip      bool
	propsInteractive bool
)

var propsCmd = &cobra.Command{
	Use:   "props [file]",
	Short: "Inject typed props into a React component",
	Long: `Inject typed props into the "export default function" component of a file
or stdin. Fields are given as name:kind[:type], for example:

  tsxkit props Panel.tsx --field title --field count:setState:number`,
	Args: cobra.MaximumNArgs(1),
	RunE: runProps,
}

func init() {
	rootCmd.AddCommand(propsCmd)
	propsCmd.Flags().StringArrayVarP(&propsFields, "field", "f", nil, "field as name:kind[:type] (repeatable)")
	propsCmd.Flags().StringVar(&propsFieldsFile, "fields", "", "YAML file listing fields")
	propsCmd.Flags().BoolVarP(&propsWrite, "write", "w", false, "rewrite the input file in place")
	propsCmd.Flags().StringVarP(&propsOut, "out", "o", "", "write the result to this file")
	propsCmd.Flags().BoolVar(&propsNoClip, "no-clipboard", false, "do not copy the result")
	propsCmd.Flags().BoolVarP(&propsInteractive, "interactive", "i", false, "add fields interactively")
}

func runProps(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	file := ""
	if len(args) > 0 {
		file = args[0]
	}
	if propsWrite && (file == "" || file == "-") {
		return fmt.Errorf("--write needs an input file")
	}

	source, err := readInput(file, cmd.InOrStdin())
	if err != nil {
		return err
	}

	fields, err := collectFields(propsFieldsFile, propsFields)
	if err != nil {
		return err
	}
	if propsInteractive {
		more, err := promptFields()
		if err != nil {
			return err
		}
		fields = append(fields, more...)
	}

	res, err := injectProps(cmd.Context(), cfg, source, fields, propsNoClip)
	if res == nil {
		return err
	}

	target := propsOut
	if propsWrite {
		target = file
	}
	if target != "" {
		if werr := os.WriteFile(target, []byte(res.Output), 0644); werr != nil {
			return fmt.Errorf("write output: %w", werr)
		}
		status("📝 Wrote %s\n", target)
	} else {
		fmt.Fprint(cmd.OutOrStdout(), res.Output)
	}
	status("✨ %s\n", res.Describe())

	if errors.Is(err, studio.ErrClipboard) {
		return nil
	}
	return err
}

// injectProps runs the props page once. The result is non-nil whenever the
// injection succeeded, even if copying failed.
func injectProps(ctx context.Context, cfg *config.Config, source string, fields []props.FieldDescriptor, noClip bool) (*props.Result, error) {
	env := studio.Env{
		Clipboard: clipboardFor(cfg, noClip),
		Notifier:  terminalNotifier(),
	}
	if noClip || !cfg.Clipboard.Enabled {
		env.Notifier = notify.Discard
	}

	page := studio.NewPropsPage(cfg, env)
	page.Input = source
	page.Rows = fields

	if ctx == nil {
		ctx = context.Background()
	}
	err := page.Generate(ctx)
	if page.Last == nil {
		return nil, fmt.Errorf("inject props: %w", err)
	}
	return page.Last, err
}

// collectFields reads the fields file, if any, followed by each spec.
func collectFields(file string, specs []string) ([]props.FieldDescriptor, error) {
	var fields []props.FieldDescriptor

	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("read fields: %w", err)
		}
		if err := yaml.Unmarshal(data, &fields); err != nil {
			return nil, fmt.Errorf("parse fields: %w", err)
		}
		for i := range fields {
			if fields[i].Kind == "" {
				continue
			}
			k, err := props.ParseKind(string(fields[i].Kind))
			if err != nil {
				return nil, fmt.Errorf("fields %s entry %d: %w", file, i+1, err)
			}
			fields[i].Kind = k
		}
	}

	for _, spec := range specs {
		f, err := props.ParseFieldSpec(spec)
		if err != nil {
			return nil, err
		}
		fields = append(fields, f)
	}

	return fields, nil
}

func promptFields() ([]props.FieldDescriptor, error) {
	kinds := make([]string, len(props.Kinds))
	for i, k := range props.Kinds {
		kinds[i] = string(k)
	}

	var fields []props.FieldDescriptor
	for {
		var f props.FieldDescriptor

		if err := survey.AskOne(&survey.Input{Message: "Field name (empty to finish):"}, &f.Name, surveyStdio()); err != nil {
			return nil, fmt.Errorf("prompt: %w", err)
		}
		if f.Name == "" {
			return fields, nil
		}

		var kind string
		if err := survey.AskOne(&survey.Select{
			Message: "Type:",
			Options: kinds,
			Default: string(props.KindString),
		}, &kind, surveyStdio()); err != nil {
			return nil, fmt.Errorf("prompt: %w", err)
		}
		f.Kind = props.Kind(kind)

		switch f.Kind {
		case props.KindCustom:
			if err := survey.AskOne(&survey.Input{Message: "Custom type:"}, &f.Custom, surveyStdio()); err != nil {
				return nil, fmt.Errorf("prompt: %w", err)
			}
		case props.KindStateSetter:
			if err := survey.AskOne(&survey.Input{Message: "State type:", Default: "any"}, &f.Inner, surveyStdio()); err != nil {
				return nil, fmt.Errorf("prompt: %w", err)
			}
		}

		fields = append(fields, f)
	}
}
