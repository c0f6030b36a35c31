// Package watch converts a directory of SVG files into icon components and
// keeps them in sync as the files change.
package watch

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/withgalaxy/tsxkit/pkg/notify"
	"github.com/withgalaxy/tsxkit/pkg/transform"
)

// ComponentName derives an exported component name from an SVG file name:
// `arrow-left.svg` becomes `IconArrowLeft` for prefix `Icon`. A name that
// already starts with the prefix is not prefixed twice.
func ComponentName(prefix, file string) string {
	base := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))

	words := strings.FieldsFunc(base, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	// Casers are stateful and must not be shared between goroutines.
	title := cases.Title(language.Und, cases.NoLower)

	var b strings.Builder
	for _, w := range words {
		b.WriteString(title.String(w))
	}
	name := b.String()

	if prefix != "" && !strings.HasPrefix(name, prefix) {
		name = prefix + name
	}
	if name == "" || unicode.IsDigit(rune(name[0])) {
		name = "Icon" + name
	}
	return name
}

// Generated is called after a component has been written.
type Generated func(path, content string)

type Converter struct {
	OutDir  string
	Prefix  string
	Color   string
	Options transform.IconOptions

	Notifier    notify.Notifier
	OnGenerated Generated
}

func (c *Converter) notifier() notify.Notifier {
	if c.Notifier == nil {
		return notify.Discard
	}
	return c.Notifier
}

// ConvertFile converts the SVG at path and writes <OutDir>/<Name>.tsx. It
// returns the written path.
func (c *Converter) ConvertFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read svg: %w", err)
	}

	name := ComponentName(c.Prefix, path)
	out, err := transform.ConvertIcon(transform.IconRequest{
		Name:  name,
		Color: c.Color,
		SVG:   strings.TrimSpace(string(data)),
	}, c.Options)
	if err != nil {
		return "", fmt.Errorf("convert %s: %w", filepath.Base(path), err)
	}

	if err := os.MkdirAll(c.OutDir, 0755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	target := filepath.Join(c.OutDir, name+".tsx")
	if err := os.WriteFile(target, []byte(out+"\n"), 0644); err != nil {
		return "", fmt.Errorf("write component: %w", err)
	}

	if c.OnGenerated != nil {
		c.OnGenerated(target, out)
	}
	return target, nil
}

// ConvertAll converts every .svg file directly inside dir, in name order.
// Failures are reported per file and do not stop the pass.
func (c *Converter) ConvertAll(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read svg dir: %w", err)
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	var written []string
	var failed int
	for _, e := range entries {
		if e.IsDir() || !IsSVG(e.Name()) {
			continue
		}

		target, err := c.ConvertFile(filepath.Join(dir, e.Name()))
		if err != nil {
			failed++
			c.notifier().Failure("Failed", err.Error())
			continue
		}
		written = append(written, target)
	}

	if failed > 0 {
		return written, fmt.Errorf("%d of %d svg files failed", failed, failed+len(written))
	}
	return written, nil
}

func IsSVG(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".svg")
}
