// Package icon renders UI symbols in the variant selected by icons.variant.
package icon

import (
	"github.com/spf13/viper"
	"github.com/vimeolb/vimeolb/key"
)

const (
	emoji   = "emoji"
	nerd    = "nerd"
	plain   = "plain"
	kaomoji = "kaomoji"
	squares = "squares"
)

// AvailableVariants returns all supported icon variants.
func AvailableVariants() []string {
	return []string{emoji, nerd, plain, kaomoji, squares}
}

// Icon identifies a UI symbol.
type Icon int

const (
	Success Icon = iota
	Fail
	Progress
	Video
)

type iconDef struct {
	emoji   string
	nerd    string
	plain   string
	kaomoji string
	squares string
}

var icons = map[Icon]*iconDef{
	Success:  {emoji: "🎉", nerd: "", plain: "✓", kaomoji: "(ᵔ◡ᵔ)", squares: "▣"},
	Fail:     {emoji: "💀", nerd: "", plain: "✗", kaomoji: "(╯°□°)╯", squares: "▨"},
	Progress: {emoji: "⏳", nerd: "", plain: "…", kaomoji: "(・_・ヾ", squares: "▧"},
	Video:    {emoji: "🎬", nerd: "", plain: "▶", kaomoji: "(⌐■_■)", squares: "▶"},
}

func (d *iconDef) get() string {
	switch viper.GetString(key.IconsVariant) {
	case emoji:
		return d.emoji
	case nerd:
		return d.nerd
	case plain:
		return d.plain
	case kaomoji:
		return d.kaomoji
	case squares:
		return d.squares
	default:
		return ""
	}
}

// Get returns the symbol for i in the configured variant.
func Get(i Icon) string {
	d, ok := icons[i]
	if !ok {
		return ""
	}
	return d.get()
}
