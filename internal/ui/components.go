package ui

import (
	"math"
	"strconv"
	"strings"

	"github.com/sngm3741/shopfront/internal/public/domain"
)

// Cn joins non-empty class names with single spaces.
func Cn(classes ...string) string {
	parts := make([]string, 0, len(classes))
	for _, c := range classes {
		if c = strings.TrimSpace(c); c != "" {
			parts = append(parts, c)
		}
	}
	return strings.Join(parts, " ")
}

// StarCount is the number of icons every rating renders.
const StarCount = 5

const (
	starFilledClass = "text-amber-400"
	starEmptyClass  = "text-slate-200"
)

// StarIcon is one icon of a star rating.
type StarIcon struct {
	Filled bool
	Class  string
}

// StarRating is the rendered form of a numeric rating.
type StarRating struct {
	Value  float64
	Filled int
	Label  string
	Icons  []StarIcon
}

// Stars renders value as exactly StarCount icons. Icon i is filled when i < round(value),
// rounding half up. Callers clamp value first; out-of-range input saturates.
func Stars(value float64) StarRating {
	full := roundHalfUp(value)
	icons := make([]StarIcon, StarCount)
	for i := range icons {
		filled := i < full
		class := starEmptyClass
		if filled {
			class = starFilledClass
		}
		icons[i] = StarIcon{Filled: filled, Class: Cn("h-4 w-4", class)}
	}

	filled := full
	switch {
	case filled < 0:
		filled = 0
	case filled > StarCount:
		filled = StarCount
	}

	return StarRating{
		Value:  value,
		Filled: filled,
		Label:  FormatNumber(value) + " stars",
		Icons:  icons,
	}
}

func roundHalfUp(v float64) int {
	if math.IsNaN(v) {
		return 0
	}
	return int(math.Floor(v + 0.5))
}

// FormatNumber prints v with the shortest representation, so 5 stays "5" and 4.9 stays "4.9".
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// BadgeClasses selects the colour treatment for a badge variant. Unknown variants use slate.
func BadgeClasses(v domain.BadgeVariant) string {
	switch v {
	case domain.BadgeGreen:
		return "bg-emerald-50 text-emerald-700 ring-emerald-200"
	case domain.BadgeBlue:
		return "bg-blue-50 text-blue-700 ring-blue-200"
	case domain.BadgeGray:
		return "bg-slate-50 text-slate-700 ring-slate-200"
	default:
		return "bg-slate-50 text-slate-700 ring-slate-200"
	}
}

const badgeBase = "inline-flex items-center gap-2 rounded-full px-3 py-1 text-xs font-medium ring-1"

// BadgePill is a styled badge label.
type BadgePill struct {
	Label string
	Class string
}

// NewBadgePill builds the pill for b.
func NewBadgePill(b domain.Badge) BadgePill {
	return BadgePill{Label: b.Label, Class: Cn(badgeBase, BadgeClasses(b.Variant))}
}

// ButtonVariant selects the visual style of a button.
type ButtonVariant string

const (
	ButtonPrimary   ButtonVariant = "primary"
	ButtonSecondary ButtonVariant = "secondary"
	ButtonGhost     ButtonVariant = "ghost"
)

// ButtonKind is the semantic type attribute of a button.
type ButtonKind string

const (
	KindButton ButtonKind = "button"
	KindSubmit ButtonKind = "submit"
)

const buttonBase = "inline-flex items-center justify-center gap-2 rounded-xl px-4 py-3 text-sm font-semibold transition focus:outline-none focus:ring-2 focus:ring-slate-400 focus:ring-offset-2"

// ButtonClasses merges the base, variant and extra classes. Unknown variants render as primary.
func ButtonClasses(v ButtonVariant, extra string) string {
	var styles string
	switch v {
	case ButtonSecondary:
		styles = "bg-white text-slate-900 ring-1 ring-slate-300 hover:bg-slate-50"
	case ButtonGhost:
		styles = "bg-transparent text-slate-700 hover:bg-slate-100"
	default:
		styles = "bg-blue-600 text-white hover:bg-blue-700"
	}
	return Cn(buttonBase, styles, extra)
}

// Button is a rendered button.
type Button struct {
	Label string
	Type  ButtonKind
	Class string
}

// NewButton builds a button. Any kind other than submit renders as a plain button.
func NewButton(label string, variant ButtonVariant, kind ButtonKind, extra string) Button {
	if kind != KindSubmit {
		kind = KindButton
	}
	return Button{Label: label, Type: kind, Class: ButtonClasses(variant, extra)}
}

const cardBase = "rounded-2xl bg-white shadow-sm ring-1 ring-slate-200"

// CardClasses merges the card container classes with extra.
func CardClasses(extra string) string {
	return Cn(cardBase, extra)
}

const fieldBase = "w-full rounded-xl border border-slate-200 bg-white px-3 py-3 text-sm text-slate-900 focus:border-slate-400 focus:outline-none focus:ring-2 focus:ring-slate-200"

// Input is a free-text field.
type Input struct {
	Name        string
	Placeholder string
	Class       string
}

// NewInput builds a text input.
func NewInput(name, placeholder string) Input {
	return Input{Name: name, Placeholder: placeholder, Class: Cn(fieldBase, "placeholder:text-slate-400")}
}

// Option is one entry of a select.
type Option struct {
	Value string
	Label string
	// Placeholder options are shown initially but cannot be chosen.
	Placeholder bool
}

// Select is a dropdown.
type Select struct {
	Name    string
	Options []Option
	Class   string
}

// NewServiceSelect lists one option per service after a non-selectable placeholder.
func NewServiceSelect(name, placeholder string, services []domain.Service) Select {
	return Select{Name: name, Options: SelectOptions(placeholder, services), Class: fieldBase}
}

// SelectOptions returns the placeholder option followed by one option per service, in order.
func SelectOptions(placeholder string, services []domain.Service) []Option {
	opts := make([]Option, 0, len(services)+1)
	opts = append(opts, Option{Value: "", Label: placeholder, Placeholder: true})
	for _, s := range services {
		opts = append(opts, Option{Value: s.Title, Label: s.Title})
	}
	return opts
}
