// Package config provides centralized management for application settings, defaults, and the Viper-based configuration engine.
package config

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"text/template"

	"github.com/muesli/reflow/wordwrap"
	"github.com/samber/lo"
	"github.com/spf13/viper"
	"github.com/vimeolb/vimeolb/color"
	"github.com/vimeolb/vimeolb/constant"
	"github.com/vimeolb/vimeolb/key"
	"github.com/vimeolb/vimeolb/selector"
	"github.com/vimeolb/vimeolb/style"
	"github.com/vimeolb/vimeolb/util"
)

// Field represents a configuration field definition.
type Field struct {
	Key         string
	Value       any
	Description string

	validate func(any) error
}

// Pretty returns a colored string representation of the field for display.
func (f *Field) Pretty() string {
	var b strings.Builder
	lo.Must0(prettyTemplate.Execute(&b, f))
	return b.String()
}

// Env returns the environment variable name for this field.
func (f *Field) Env() string {
	env := strings.ToUpper(EnvKeyReplacer.Replace(f.Key))
	prefix := strings.ToUpper(constant.App + "_")
	if strings.HasPrefix(env, prefix) {
		return env
	}
	return prefix + env
}

// Validate reports whether v is an acceptable value for the field.
func (f *Field) Validate(v any) error {
	if f.validate == nil {
		return nil
	}
	if err := f.validate(v); err != nil {
		return fmt.Errorf("invalid value for %s: %w", f.Key, err)
	}
	return nil
}

// MarshalJSON customizes JSON output to include current and default values.
func (f *Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Key         string `json:"key"`
		Value       any    `json:"value"`
		Default     any    `json:"default"`
		Description string `json:"description"`
		Type        string `json:"type"`
	}{
		Key:         f.Key,
		Value:       viper.Get(f.Key),
		Default:     f.Value,
		Description: f.Description,
		Type:        f.typeName(),
	})
}

// typeName returns the string representation of the field's underlying value type.
func (f *Field) typeName() string {
	switch f.Value.(type) {
	case string:
		return "string"
	case int:
		return "int"
	case bool:
		return "bool"
	case []string:
		return "[]string"
	default:
		return "unknown"
	}
}

// Default holds the map of all configuration fields.
var Default = make(map[string]Field)

// EnvExposed holds keys that are bound to environment variables.
var EnvExposed []string

func validateGenerator(v any) error {
	_, err := selector.GeneratorOf(v)
	return err
}

func validateFramework(v any) error {
	_, err := selector.ParseFramework(fmt.Sprint(v))
	return err
}

func init() {
	register := func(k string, v any, desc string, validate func(any) error) {
		if _, exists := Default[k]; exists {
			panic("Duplicate config key: " + k)
		}
		Default[k] = Field{Key: k, Value: v, Description: desc, validate: validate}
		EnvExposed = append(EnvExposed, k)
	}

	register(key.Videos, []string{}, "Ordered list of Vimeo video ids.\nIndex 0 is the static video, indices 0-6 are played Sunday to Saturday", nil)
	register(key.PlayerAutoplay, true, "Start playback automatically", nil)
	register(key.SelectGenerator, "0", "Generator used when none is given.\nAvailable options are: an index, static, random, weekday", validateGenerator)
	register(key.EmbedFramework, string(selector.Bootstrap4), "Markup convention for embed snippets.\nAvailable options are: bootstrap4, bootstrap5", validateFramework)
	register(key.EmbedRatio, "", "Aspect ratio token for embed snippets, e.g. 16by9 or 16x9.\nEmpty uses the framework default", nil)
	register(key.IconsVariant, "plain", "Icons variant.\nAvailable options are: emoji, kaomoji, plain, squares, nerd (nerd-font required)", nil)
	register(key.CliColored, true, "Enable colored CLI output", nil)
	register(key.LogsWrite, false, "Write logs", nil)
	register(key.LogsLevel, "info", "Available options are: (from less to most verbose)\npanic, fatal, error, warn, info, debug, trace", nil)
	register(key.LogsJson, false, "Use json format for logs", nil)
}

// descriptionWidth caps wrapped descriptions at the terminal width.
func descriptionWidth() int {
	width, _, err := util.TerminalSize()
	if err != nil || width <= 0 {
		return 80
	}
	return util.Min(width, 80)
}

var prettyTemplate = lo.Must(template.New("pretty").Funcs(template.FuncMap{
	"faint":    style.Faint,
	"bold":     style.Bold,
	"purple":   style.Fg(color.Purple),
	"blue":     style.Fg(color.Blue),
	"cyan":     style.Fg(color.Cyan),
	"wrap":     func(s string) string { return wordwrap.String(s, descriptionWidth()) },
	"value":    func(k string) any { return viper.Get(k) },
	"typename": func(v any) string { return reflect.TypeOf(v).String() },
	"hl": func(v any) string {
		switch value := v.(type) {
		case bool:
			b := strconv.FormatBool(value)
			if value {
				return style.Fg(color.Green)(b)
			}
			return style.Fg(color.Red)(b)
		case string:
			return style.Fg(color.Yellow)(value)
		default:
			return fmt.Sprint(value)
		}
	},
}).Parse(`{{ faint (wrap .Description) }}
{{ blue "Key:" }}     {{ purple .Key }}
{{ blue "Env:" }}     {{ .Env }}
{{ blue "Value:" }}   {{ hl (value .Key) }}
{{ blue "Default:" }} {{ hl (.Value) }}
{{ blue "Type:" }}    {{ typename .Value }}`))
