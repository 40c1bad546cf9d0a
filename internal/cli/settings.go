package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"reflect"
	"strconv"
	"strings"
	"unicode"

	toml "github.com/pelletier/go-toml"
	yaml "gopkg.in/yaml.v3"

	"keyshift/internal/config"
)

// SettingsCmd groups settings subcommands.
type SettingsCmd struct {
	Init SettingsInit `cmd:"" help:"Write a settings template"`
}

// SettingsInit writes a settings template with every flag at its default.
type SettingsInit struct {
	Format string `help:"Output format" enum:"json,yaml,toml" default:"yaml"`
	Output string `help:"Destination file (defaults to the per-user config directory)" type:"path"`
	Force  bool   `help:"Overwrite an existing file"`
}

// Run is called by Kong when the settings init command is executed.
func (s *SettingsInit) Run(logger *slog.Logger) error {
	format := config.ParseFormat(s.Format)
	if format == "" {
		return fmt.Errorf("unsupported format: %s", s.Format)
	}

	dest := s.Output
	if dest == "" {
		p, err := config.DefaultPath(format)
		if err != nil {
			return fmt.Errorf("failed to resolve settings path: %w", err)
		}
		dest = p
	}
	if err := writeTemplate(dest, format, s.Force); err != nil {
		return err
	}
	logger.Info("Settings template written", "path", dest)
	return nil
}

func writeTemplate(dest string, format config.Format, force bool) error {
	if !force {
		if _, err := os.Stat(dest); err == nil {
			return errors.New("destination exists; use --force to overwrite")
		}
	}
	if err := config.EnsureDir(dest); err != nil {
		return err
	}

	data, err := encodeTemplate(settingsTemplate(), format)
	if err != nil {
		return err
	}
	return os.WriteFile(dest, data, 0o644)
}

func encodeTemplate(root map[string]any, format config.Format) ([]byte, error) {
	switch format {
	case config.JSON:
		return json.MarshalIndent(root, "", "  ")
	case config.YAML:
		return yaml.Marshal(root)
	case config.TOML:
		return toml.Marshal(root)
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// settingsTemplate lists the flags a settings file may set, keyed by flag
// name, at their defaults.
func settingsTemplate() map[string]any {
	out := map[string]any{}
	addFlags(out, reflect.TypeOf(LogFlags{}), "log-")
	addFlags(out, reflect.TypeOf(RunCmd{}), "")
	return out
}

func addFlags(out map[string]any, t reflect.Type, prefix string) {
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name := f.Tag.Get("name")
		if name == "" {
			name = kebab(f.Name)
		}
		out[prefix+name] = defaultValue(f)
	}
}

func defaultValue(f reflect.StructField) any {
	def := f.Tag.Get("default")
	switch f.Type.Kind() {
	case reflect.Bool:
		b, _ := strconv.ParseBool(def)
		return b
	case reflect.Int, reflect.Int64:
		n, _ := strconv.ParseInt(def, 10, 64)
		return n
	default:
		return def
	}
}

// kebab converts a Go field name to a kong flag name.
func kebab(s string) string {
	var b strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('-')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}
