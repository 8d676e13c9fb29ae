package theme

import (
	"fmt"
	"strings"

	"github.com/five82/visionchat/internal/validate"
)

// Mode selects the visual variant.
type Mode string

const (
	ModeDark  Mode = "dark"
	ModeLight Mode = "light"
)

// ParseMode normalizes s into a Mode.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case ModeDark, ModeLight:
		return m, nil
	default:
		return "", fmt.Errorf("unknown theme mode %q (want dark or light)", s)
	}
}

// Other returns the opposite mode.
func (m Mode) Other() Mode {
	if m == ModeLight {
		return ModeDark
	}
	return ModeLight
}

// Tokens maps the nine style roles to colors.
type Tokens struct {
	Background    string `yaml:"background" validate:"required,hexcolor"`
	Text          string `yaml:"text" validate:"required,hexcolor"`
	Card          string `yaml:"card" validate:"required,hexcolor"`
	CardHover     string `yaml:"cardHover" validate:"required,hexcolor"`
	Border        string `yaml:"border" validate:"required,hexcolor"`
	Button        string `yaml:"button" validate:"required,hexcolor"`
	ButtonText    string `yaml:"buttonText" validate:"required,hexcolor"`
	Input         string `yaml:"input" validate:"required,hexcolor"`
	SecondaryText string `yaml:"secondaryText" validate:"required,hexcolor"`
}

// Roles lists the role names in declaration order.
var Roles = []string{
	"background", "text", "card", "cardHover", "border",
	"button", "buttonText", "input", "secondaryText",
}

// Role looks a token up by role name.
func (t Tokens) Role(name string) (string, bool) {
	switch name {
	case "background":
		return t.Background, true
	case "text":
		return t.Text, true
	case "card":
		return t.Card, true
	case "cardHover":
		return t.CardHover, true
	case "border":
		return t.Border, true
	case "button":
		return t.Button, true
	case "buttonText":
		return t.ButtonText, true
	case "input":
		return t.Input, true
	case "secondaryText":
		return t.SecondaryText, true
	default:
		return "", false
	}
}

// Merge returns t with every non-empty role of over applied on top.
func (t Tokens) Merge(over Tokens) Tokens {
	pick := func(base, o string) string {
		if strings.TrimSpace(o) == "" {
			return base
		}
		return strings.TrimSpace(o)
	}
	return Tokens{
		Background:    pick(t.Background, over.Background),
		Text:          pick(t.Text, over.Text),
		Card:          pick(t.Card, over.Card),
		CardHover:     pick(t.CardHover, over.CardHover),
		Border:        pick(t.Border, over.Border),
		Button:        pick(t.Button, over.Button),
		ButtonText:    pick(t.ButtonText, over.ButtonText),
		Input:         pick(t.Input, over.Input),
		SecondaryText: pick(t.SecondaryText, over.SecondaryText),
	}
}

// Validate checks that every role holds a hex color.
func (t Tokens) Validate() error {
	if err := validate.Struct(t); err != nil {
		return fmt.Errorf("theme tokens: %w", err)
	}
	return nil
}

// Theme is the value handed to descendants of the theme scope.
type Theme struct {
	Mode   Mode
	Tokens Tokens
}

// Palettes holds the token sets for both modes.
type Palettes struct {
	Dark  Tokens `yaml:"dark"`
	Light Tokens `yaml:"light"`
}

// For returns the tokens for m.
func (p Palettes) For(m Mode) Tokens {
	if m == ModeLight {
		return p.Light
	}
	return p.Dark
}

// Validate checks both modes.
func (p Palettes) Validate() error {
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("theme palettes: %w", err)
	}
	return nil
}

// DefaultPalettes returns the built-in zinc/indigo palettes.
func DefaultPalettes() Palettes {
	return Palettes{
		// Tailwind zinc + indigo: https://tailwindcss.com/docs/colors
		Dark: Tokens{
			Background:    "#09090b", // zinc-950
			Text:          "#fafafa", // zinc-50
			Card:          "#18181b", // zinc-900
			CardHover:     "#27272a", // zinc-800
			Border:        "#3f3f46", // zinc-700
			Button:        "#6366f1", // indigo-500
			ButtonText:    "#ffffff",
			Input:         "#27272a", // zinc-800
			SecondaryText: "#a1a1aa", // zinc-400
		},
		Light: Tokens{
			Background:    "#ffffff",
			Text:          "#18181b", // zinc-900
			Card:          "#f4f4f5", // zinc-100
			CardHover:     "#e4e4e7", // zinc-200
			Border:        "#d4d4d8", // zinc-300
			Button:        "#4f46e5", // indigo-600
			ButtonText:    "#ffffff",
			Input:         "#e4e4e7", // zinc-200
			SecondaryText: "#52525b", // zinc-600
		},
	}
}
