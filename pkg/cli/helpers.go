package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/AlecAivazis/survey/v2"

	"github.com/withgalaxy/tsxkit/pkg/clipboard"
	"github.com/withgalaxy/tsxkit/pkg/config"
	"github.com/withgalaxy/tsxkit/pkg/notify"
)

func openBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "linux":
		cmd = exec.Command("xdg-open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	}
	if cmd != nil {
		cmd.Start()
	}
}

func projectDir() (string, error) {
	if rootDir != "" {
		return rootDir, nil
	}
	return os.Getwd()
}

func configPath() (string, error) {
	if cfgFile != "" {
		return cfgFile, nil
	}
	dir, err := projectDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, config.FileName), nil
}

func loadConfig() (*config.Config, error) {
	path, err := configPath()
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

func status(format string, args ...interface{}) {
	if silent {
		return
	}
	fmt.Fprintf(os.Stderr, format, args...)
}

func terminalNotifier() notify.Notifier {
	if silent {
		return notify.Discard
	}
	return notify.NewTerminal(os.Stderr)
}

// clipboardFor picks the system clipboard unless copying is turned off by
// config or by --no-clipboard.
func clipboardFor(cfg *config.Config, disabled bool) clipboard.Writer {
	if disabled || !cfg.Clipboard.Enabled {
		return skipClipboard{}
	}
	return clipboard.System{}
}

type skipClipboard struct{}

func (skipClipboard) Write(context.Context, string) error { return nil }

// readInput reads path, or stdin when path is empty or "-".
func readInput(path string, stdin io.Reader) (string, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return string(data), nil
}

// writeOutput writes text to path, or to w when path is empty.
func writeOutput(path, text string, w io.Writer) error {
	if path == "" {
		_, err := fmt.Fprintln(w, text)
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(text+"\n"), 0644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// surveyStdio keeps prompts on stderr so generated code can be piped.
func surveyStdio() survey.AskOpt {
	return survey.WithStdio(os.Stdin, os.Stderr, os.Stderr)
}
