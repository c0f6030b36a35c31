package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/BurntSushi/toml"
)

const FileName = "tsxkit.toml"

var identRegex = regexp.MustCompile(`^[A-Za-z_$][\w$]*$`)

func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

func LoadFromDir(dir string) (*Config, error) {
	return Load(filepath.Join(dir, FileName))
}

func (c *Config) Validate() error {
	if c.Icon.DefaultColor == "" {
		c.Icon.DefaultColor = DefaultIconColor
	}

	if c.Icon.PropsType == "" {
		c.Icon.PropsType = DefaultIconPropsType
	}
	if !identRegex.MatchString(c.Icon.PropsType) {
		return fmt.Errorf("invalid icon.props_type: %q is not an identifier", c.Icon.PropsType)
	}

	if c.Icon.Prefix != "" && !identRegex.MatchString(c.Icon.Prefix) {
		return fmt.Errorf("invalid icon.prefix: %q is not an identifier", c.Icon.Prefix)
	}

	if c.Props.InterfaceSuffix == "" {
		c.Props.InterfaceSuffix = DefaultInterfaceSuffix
	}
	if !identRegex.MatchString("X" + c.Props.InterfaceSuffix) {
		return fmt.Errorf("invalid props.interface_suffix: %q", c.Props.InterfaceSuffix)
	}

	if c.Props.FrameworkModule == "" {
		c.Props.FrameworkModule = DefaultFrameworkModule
	}

	if c.Server.Port == 0 {
		c.Server.Port = DefaultPort
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server.port: %d", c.Server.Port)
	}

	if c.Server.Host == "" {
		c.Server.Host = DefaultHost
	}

	if c.Markdown.SyntaxHighlight == "" {
		c.Markdown.SyntaxHighlight = DefaultHighlightStyle
	}

	if c.Security.BodyLimit.Enabled && c.Security.BodyLimit.MaxBytes <= 0 {
		c.Security.BodyLimit.MaxBytes = 1 << 20
	}

	return nil
}

func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
