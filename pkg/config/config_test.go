package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte(body), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return dir
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadFromDir(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Icon.DefaultColor != DefaultIconColor {
		t.Errorf("expected color %s, got %s", DefaultIconColor, cfg.Icon.DefaultColor)
	}
	if cfg.Server.Port != DefaultPort {
		t.Errorf("expected port %d, got %d", DefaultPort, cfg.Server.Port)
	}
	if !cfg.Clipboard.Enabled {
		t.Error("expected clipboard to be enabled by default")
	}
	if !cfg.Security.CSRF.CheckOrigin {
		t.Error("expected origin checks to be enabled by default")
	}
}

func TestLoad_Overrides(t *testing.T) {
	dir := writeConfig(t, `
[icon]
default_color = "#000000"
props_type = "SvgIconProps"
prefix = "Ic"
extended_attributes = true

[props]
interface_suffix = "Properties"
framework_module = "preact/compat"

[server]
port = 8080

[clipboard]
enabled = false

[security.headers]
enabled = true
xFrameOptions = "SAMEORIGIN"

[security.csrf]
checkOrigin = true
allowOrigins = ["https://studio.example.com"]
`)

	cfg, err := LoadFromDir(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Icon.PropsType != "SvgIconProps" {
		t.Errorf("expected props type SvgIconProps, got %s", cfg.Icon.PropsType)
	}
	if cfg.Icon.Prefix != "Ic" || !cfg.Icon.ExtendedAttributes {
		t.Errorf("unexpected icon config: %+v", cfg.Icon)
	}
	if cfg.Props.InterfaceSuffix != "Properties" || cfg.Props.FrameworkModule != "preact/compat" {
		t.Errorf("unexpected props config: %+v", cfg.Props)
	}
	if cfg.Addr() != "localhost:8080" {
		t.Errorf("expected addr localhost:8080, got %s", cfg.Addr())
	}
	if cfg.Clipboard.Enabled {
		t.Error("expected clipboard to be disabled")
	}
	if cfg.Security.Headers.XFrameOptions != "SAMEORIGIN" {
		t.Errorf("expected SAMEORIGIN, got %s", cfg.Security.Headers.XFrameOptions)
	}
	if cfg.Security.Headers.XContentTypeOptions != "nosniff" {
		t.Errorf("expected unset keys to keep defaults, got %q", cfg.Security.Headers.XContentTypeOptions)
	}
	if len(cfg.Security.CSRF.AllowOrigins) != 1 {
		t.Errorf("expected 1 allowed origin, got %v", cfg.Security.CSRF.AllowOrigins)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"bad toml", "[icon\n"},
		{"props type", "[icon]\nprops_type = \"not an ident\""},
		{"prefix", "[icon]\nprefix = \"1x\""},
		{"suffix", "[props]\ninterface_suffix = \"-Props\""},
		{"port", "[server]\nport = 70000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadFromDir(writeConfig(t, tt.body)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestValidate_NormalizesZeroValues(t *testing.T) {
	cfg := &Config{}
	cfg.Security.BodyLimit.Enabled = true

	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Icon.PropsType != DefaultIconPropsType {
		t.Errorf("expected %s, got %s", DefaultIconPropsType, cfg.Icon.PropsType)
	}
	if cfg.Props.InterfaceSuffix != DefaultInterfaceSuffix {
		t.Errorf("expected %s, got %s", DefaultInterfaceSuffix, cfg.Props.InterfaceSuffix)
	}
	if cfg.Props.FrameworkModule != DefaultFrameworkModule {
		t.Errorf("expected %s, got %s", DefaultFrameworkModule, cfg.Props.FrameworkModule)
	}
	if cfg.Addr() != "localhost:4410" {
		t.Errorf("expected localhost:4410, got %s", cfg.Addr())
	}
	if cfg.Security.BodyLimit.MaxBytes != 1<<20 {
		t.Errorf("expected 1MiB body limit, got %d", cfg.Security.BodyLimit.MaxBytes)
	}
}
