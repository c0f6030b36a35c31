package cli

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Display environment information",
	Long:  `Display useful information about your current tsxkit setup`,
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	cwd, _ := projectDir()

	fmt.Printf("tsxkit                   v%s\n", Version)
	fmt.Printf("Go                       %s\n", runtime.Version())
	fmt.Printf("System                   %s (%s)\n", runtime.GOOS, runtime.GOARCH)
	fmt.Printf("Working Directory        %s\n", cwd)

	if path, err := configPath(); err == nil {
		if _, err := os.Stat(path); err == nil {
			fmt.Printf("Config                   %s\n", path)
		}
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	fmt.Printf("Icon props type          %s\n", cfg.Icon.PropsType)
	fmt.Printf("Icon default color       %s\n", cfg.Icon.DefaultColor)
	fmt.Printf("Icon prefix              %s\n", cfg.Icon.Prefix)
	fmt.Printf("Props interface suffix   %s\n", cfg.Props.InterfaceSuffix)
	fmt.Printf("Framework module         %s\n", cfg.Props.FrameworkModule)
	fmt.Printf("Studio                   http://%s\n", cfg.Addr())
	fmt.Printf("Clipboard                %v\n", cfg.Clipboard.Enabled)

	return nil
}
