package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/withgalaxy/tsxkit/pkg/props"
)

var kindsCmd = &cobra.Command{
	Use:   "kinds",
	Short: "List the field kinds accepted by props",
	RunE:  runKinds,
}

func init() {
	rootCmd.AddCommand(kindsCmd)
}

func runKinds(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	for _, k := range props.Kinds {
		fmt.Fprintf(out, "%-24s %s\n", k, kindType(k))
	}
	return nil
}

func kindType(k props.Kind) string {
	switch k {
	case props.KindCustom:
		return "<type>"
	case props.KindStateSetter:
		return props.SetterType("<type>")
	}
	f, _ := props.FieldDescriptor{Name: "x", Kind: k}.Resolve()
	return f.Type
}
