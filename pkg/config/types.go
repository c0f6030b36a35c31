package config

type Config struct {
	Icon      IconConfig      `toml:"icon"`
	Props     PropsConfig     `toml:"props"`
	Server    ServerConfig    `toml:"server"`
	Security  SecurityConfig  `toml:"security"`
	Clipboard ClipboardConfig `toml:"clipboard"`
	Markdown  MarkdownConfig  `toml:"markdown"`
}

type IconConfig struct {
	DefaultColor       string `toml:"default_color"`
	PropsType          string `toml:"props_type"`
	Prefix             string `toml:"prefix"`
	ExtendedAttributes bool   `toml:"extended_attributes"`
}

type PropsConfig struct {
	InterfaceSuffix string `toml:"interface_suffix"`
	FrameworkModule string `toml:"framework_module"`
}

type ServerConfig struct {
	Port int    `toml:"port"`
	Host string `toml:"host"`
}

type ClipboardConfig struct {
	Enabled bool `toml:"enabled"`
}

type MarkdownConfig struct {
	SyntaxHighlight string `toml:"syntax_highlight"`
}

type SecurityConfig struct {
	Headers   HeadersConfig   `toml:"headers"`
	BodyLimit BodyLimitConfig `toml:"bodyLimit"`
	CSRF      CSRFConfig      `toml:"csrf"`
}

type HeadersConfig struct {
	Enabled               bool   `toml:"enabled"`
	XFrameOptions         string `toml:"xFrameOptions"`
	XContentTypeOptions   string `toml:"xContentTypeOptions"`
	ReferrerPolicy        string `toml:"referrerPolicy"`
	ContentSecurityPolicy string `toml:"contentSecurityPolicy"`
}

type BodyLimitConfig struct {
	Enabled  bool  `toml:"enabled"`
	MaxBytes int64 `toml:"maxBytes"`
}

// CSRFConfig guards the studio API against cross-site posts. Loopback
// origins are always allowed.
type CSRFConfig struct {
	CheckOrigin  bool     `toml:"checkOrigin"`
	AllowOrigins []string `toml:"allowOrigins"`
}

const (
	DefaultIconColor       = "#7B7B7B"
	DefaultIconPropsType   = "Icon"
	DefaultIconPrefix      = "Icon"
	DefaultInterfaceSuffix = "Props"
	DefaultFrameworkModule = "react"
	DefaultPort            = 4410
	DefaultHost            = "localhost"
	DefaultHighlightStyle  = "github"
)

func DefaultConfig() *Config {
	return &Config{
		Icon: IconConfig{
			DefaultColor: DefaultIconColor,
			PropsType:    DefaultIconPropsType,
			Prefix:       DefaultIconPrefix,
		},
		Props: PropsConfig{
			InterfaceSuffix: DefaultInterfaceSuffix,
			FrameworkModule: DefaultFrameworkModule,
		},
		Server: ServerConfig{
			Port: DefaultPort,
			Host: DefaultHost,
		},
		Clipboard: ClipboardConfig{
			Enabled: true,
		},
		Markdown: MarkdownConfig{
			SyntaxHighlight: DefaultHighlightStyle,
		},
		Security: SecurityConfig{
			Headers: HeadersConfig{
				Enabled:             true,
				XFrameOptions:       "DENY",
				XContentTypeOptions: "nosniff",
				ReferrerPolicy:      "same-origin",
			},
			BodyLimit: BodyLimitConfig{
				Enabled:  true,
				MaxBytes: 1 << 20,
			},
			CSRF: CSRFConfig{
				CheckOrigin: true,
			},
		},
	}
}
