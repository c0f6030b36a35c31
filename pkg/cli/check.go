package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/withgalaxy/tsxkit/pkg/props"
)

var checkCmd = &cobra.Command{
	Use:   "check <files...>",
	Short: "Check files for an injectable component declaration",
	Long:  `Report, per file, whether an "export default function" component declaration is found`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	if !silent {
		fmt.Println("🔍 Checking components...")
	}

	failed := checkFiles(args, func(path, name string, err error) {
		if silent {
			return
		}
		if err != nil {
			fmt.Printf("❌ %s: %v\n", path, err)
			return
		}
		fmt.Printf("✅ %s: %s\n", path, name)
	})

	if failed > 0 {
		return fmt.Errorf("%d of %d file(s) have no component declaration", failed, len(args))
	}

	if !silent {
		fmt.Printf("\n✅ No errors found\n")
	}
	return nil
}

// checkFiles parses each file and reports the outcome. It returns the
// number of files that failed.
func checkFiles(paths []string, report func(path, name string, err error)) int {
	failed := 0
	for _, path := range paths {
		content, err := os.ReadFile(path)
		if err != nil {
			failed++
			report(path, "", err)
			continue
		}

		sig, err := props.ParseSignature(string(content))
		if err != nil {
			failed++
			report(path, "", err)
			continue
		}
		report(path, sig.Name, nil)
	}
	return failed
}
