// internal/models/themes.go
package models

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/lucasb-eyer/go-colorful"
)

// Body text sits directly on the background, so it needs the AA normal-text threshold.
const wcagAAMinTextContrastRatio = 4.5

// Primary colors back buttons and large UI elements, so we use the AA large-text threshold.
const wcagAAMinUIContrastRatio = 3.0
const maxThemeNameLength = 100
const darkTextColor = "#000000"
const lightTextColor = "#FFFFFF"

const (
	lightTintAmount = 0.35
	darkTintAmount  = 0.25
)

var hexColorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

var (
	ErrUnknownRole  = errors.New("unknown theme role")
	ErrInvalidColor = errors.New("color must be a 6-digit hex color like #AABBCC")
)

var (
	themeValidator     *validator.Validate
	themeValidatorOnce sync.Once
)

func IsHexColor(value string) bool {
	return hexColorRegex.MatchString(strings.TrimSpace(value))
}

type ThemeColors struct {
	Primary        string `json:"primary" yaml:"primary" validate:"required,hexcolor"`
	PrimaryLight   string `json:"primaryLight,omitempty" yaml:"primaryLight,omitempty" validate:"omitempty,hexcolor"`
	PrimaryDark    string `json:"primaryDark,omitempty" yaml:"primaryDark,omitempty" validate:"omitempty,hexcolor"`
	Secondary      string `json:"secondary" yaml:"secondary" validate:"required,hexcolor"`
	SecondaryLight string `json:"secondaryLight,omitempty" yaml:"secondaryLight,omitempty" validate:"omitempty,hexcolor"`
	SecondaryDark  string `json:"secondaryDark,omitempty" yaml:"secondaryDark,omitempty" validate:"omitempty,hexcolor"`
	Accent         string `json:"accent" yaml:"accent" validate:"required,hexcolor"`
	AccentLight    string `json:"accentLight,omitempty" yaml:"accentLight,omitempty" validate:"omitempty,hexcolor"`
	AccentDark     string `json:"accentDark,omitempty" yaml:"accentDark,omitempty" validate:"omitempty,hexcolor"`
	Background     string `json:"background" yaml:"background" validate:"required,hexcolor"`
	Surface        string `json:"surface" yaml:"surface" validate:"required,hexcolor"`
	Text           string `json:"text" yaml:"text" validate:"required,hexcolor"`
	TextSecondary  string `json:"textSecondary" yaml:"textSecondary" validate:"required,hexcolor"`
	Border         string `json:"border" yaml:"border" validate:"required,hexcolor"`
	Success        string `json:"success" yaml:"success" validate:"required,hexcolor"`
	Warning        string `json:"warning" yaml:"warning" validate:"required,hexcolor"`
	Error          string `json:"error" yaml:"error" validate:"required,hexcolor"`
}

type ThemeFonts struct {
	Primary   string `json:"primary" yaml:"primary" validate:"required"`
	Secondary string `json:"secondary" yaml:"secondary" validate:"required"`
	Accent    string `json:"accent" yaml:"accent" validate:"required"`
}

type ThemeShadows struct {
	Sm string `json:"sm" yaml:"sm" validate:"required"`
	Md string `json:"md" yaml:"md" validate:"required"`
	Lg string `json:"lg" yaml:"lg" validate:"required"`
	Xl string `json:"xl" yaml:"xl" validate:"required"`
}

// Theme is a named bundle of color, font and shadow tokens shared by every section of a
// project. Renderers read it through Resolved so a partial theme still renders.
type Theme struct {
	ID      string       `json:"id" yaml:"id" validate:"required"`
	Name    string       `json:"name" yaml:"name" validate:"required"`
	Colors  ThemeColors  `json:"colors" yaml:"colors"`
	Fonts   ThemeFonts   `json:"fonts" yaml:"fonts"`
	Shadows ThemeShadows `json:"shadows" yaml:"shadows"`
}

// Token is one named value of a theme category, e.g. {Role: "textSecondary", Value: "#6b7280"}.
type Token struct {
	Role  string
	Value string
}

func DefaultTheme() Theme {
	theme := Theme{
		ID:   "default",
		Name: "Default",
		Colors: ThemeColors{
			Primary:       "#2563eb",
			Secondary:     "#7c3aed",
			Accent:        "#f59e0b",
			Background:    "#ffffff",
			Surface:       "#f9fafb",
			Text:          "#111827",
			TextSecondary: "#4b5563",
			Border:        "#e5e7eb",
			Success:       "#16a34a",
			Warning:       "#d97706",
			Error:         "#dc2626",
		},
		Fonts: ThemeFonts{
			Primary:   "Inter",
			Secondary: "Merriweather",
			Accent:    "Poppins",
		},
		Shadows: ThemeShadows{
			Sm: "0 1px 2px 0 rgba(0, 0, 0, 0.05)",
			Md: "0 4px 6px -1px rgba(0, 0, 0, 0.1), 0 2px 4px -1px rgba(0, 0, 0, 0.06)",
			Lg: "0 10px 15px -3px rgba(0, 0, 0, 0.1), 0 4px 6px -2px rgba(0, 0, 0, 0.05)",
			Xl: "0 20px 25px -5px rgba(0, 0, 0, 0.1), 0 10px 10px -5px rgba(0, 0, 0, 0.04)",
		},
	}
	return theme.withTints()
}

// Resolved fills every empty or invalid role with the default for that role and derives
// missing tints from the resolved base colors.
func (t Theme) Resolved() Theme {
	def := DefaultTheme()
	out := t

	colors := out.colorRoles()
	defaults := def.colorRoles()
	for i, role := range colors {
		if isTintRole(role.name) {
			if !IsHexColor(*role.value) {
				*role.value = ""
			}
			continue
		}
		*role.value = colorOrDefault(*role.value, *defaults[i].value)
	}

	out.Fonts.Primary = stringOrDefault(out.Fonts.Primary, def.Fonts.Primary)
	out.Fonts.Secondary = stringOrDefault(out.Fonts.Secondary, def.Fonts.Secondary)
	out.Fonts.Accent = stringOrDefault(out.Fonts.Accent, def.Fonts.Accent)

	out.Shadows.Sm = stringOrDefault(out.Shadows.Sm, def.Shadows.Sm)
	out.Shadows.Md = stringOrDefault(out.Shadows.Md, def.Shadows.Md)
	out.Shadows.Lg = stringOrDefault(out.Shadows.Lg, def.Shadows.Lg)
	out.Shadows.Xl = stringOrDefault(out.Shadows.Xl, def.Shadows.Xl)

	if strings.TrimSpace(out.Name) == "" {
		out.Name = def.Name
	}
	if strings.TrimSpace(out.ID) == "" {
		out.ID = def.ID
	}
	return out.fillTints()
}

func (t Theme) Validate() error {
	trimmedName := strings.TrimSpace(t.Name)
	if trimmedName != t.Name {
		return fmt.Errorf("name must not have leading or trailing whitespace")
	}
	if len(trimmedName) > maxThemeNameLength {
		return fmt.Errorf("name must be %d characters or fewer", maxThemeNameLength)
	}

	if err := validatorInstance().Struct(t); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return fmt.Errorf("%s failed %q validation", fe.Namespace(), fe.Tag())
		}
		return err
	}

	ratio, err := contrastRatio(t.Colors.Text, t.Colors.Background)
	if err != nil {
		return err
	}
	if ratio < wcagAAMinTextContrastRatio {
		return fmt.Errorf(
			"text color must have contrast ratio >= %.1f with background; got %.2f",
			wcagAAMinTextContrastRatio,
			ratio,
		)
	}
	return validateTextContrast("primary", t.Colors.Primary)
}

// ColorTokens lists every color role in a fixed order.
func (t Theme) ColorTokens() []Token {
	roles := t.colorRoles()
	tokens := make([]Token, len(roles))
	for i, role := range roles {
		tokens[i] = Token{Role: role.name, Value: *role.value}
	}
	return tokens
}

func (t Theme) FontTokens() []Token {
	return []Token{
		{Role: "primary", Value: t.Fonts.Primary},
		{Role: "secondary", Value: t.Fonts.Secondary},
		{Role: "accent", Value: t.Fonts.Accent},
	}
}

func (t Theme) ShadowTokens() []Token {
	return []Token{
		{Role: "sm", Value: t.Shadows.Sm},
		{Role: "md", Value: t.Shadows.Md},
		{Role: "lg", Value: t.Shadows.Lg},
		{Role: "xl", Value: t.Shadows.Xl},
	}
}

// WithColor returns a copy of t with one color role replaced. Changing primary,
// secondary or accent recomputes that role's tints.
func (t Theme) WithColor(role, value string) (Theme, error) {
	value = strings.TrimSpace(value)
	if !IsHexColor(value) {
		return t, fmt.Errorf("%s: %w", role, ErrInvalidColor)
	}
	out := t
	for _, r := range out.colorRoles() {
		if r.name != role {
			continue
		}
		*r.value = value
		switch role {
		case "primary":
			out.Colors.PrimaryLight, out.Colors.PrimaryDark = tints(value)
		case "secondary":
			out.Colors.SecondaryLight, out.Colors.SecondaryDark = tints(value)
		case "accent":
			out.Colors.AccentLight, out.Colors.AccentDark = tints(value)
		}
		return out, nil
	}
	return t, fmt.Errorf("color %q: %w", role, ErrUnknownRole)
}

// WithFont returns a copy of t with one font role replaced.
func (t Theme) WithFont(role, family string) (Theme, error) {
	family = strings.TrimSpace(family)
	if family == "" {
		return t, fmt.Errorf("font %q: family is required", role)
	}
	out := t
	switch role {
	case "primary":
		out.Fonts.Primary = family
	case "secondary":
		out.Fonts.Secondary = family
	case "accent":
		out.Fonts.Accent = family
	default:
		return t, fmt.Errorf("font %q: %w", role, ErrUnknownRole)
	}
	return out, nil
}

// WithShadow returns a copy of t with one shadow token replaced.
func (t Theme) WithShadow(role, value string) (Theme, error) {
	value = strings.TrimSpace(value)
	out := t
	switch role {
	case "sm":
		out.Shadows.Sm = value
	case "md":
		out.Shadows.Md = value
	case "lg":
		out.Shadows.Lg = value
	case "xl":
		out.Shadows.Xl = value
	default:
		return t, fmt.Errorf("shadow %q: %w", role, ErrUnknownRole)
	}
	return out, nil
}

// WithFonts swaps all three font roles at once, as picked from a font collection.
func (t Theme) WithFonts(fonts ThemeFonts) Theme {
	out := t
	out.Fonts = fonts
	return out
}

// ApplyCustomColors replaces the brand colors and recomputes their tints. Empty
// arguments keep the current value.
func (t Theme) ApplyCustomColors(primary, secondary, accent string) (Theme, error) {
	out := t
	var err error
	for _, change := range []struct{ role, value string }{
		{"primary", primary},
		{"secondary", secondary},
		{"accent", accent},
	} {
		if strings.TrimSpace(change.value) == "" {
			continue
		}
		out, err = out.WithColor(change.role, change.value)
		if err != nil {
			return t, err
		}
	}
	return out, nil
}

type colorRole struct {
	name  string
	value *string
}

func (t *Theme) colorRoles() []colorRole {
	c := &t.Colors
	return []colorRole{
		{"primary", &c.Primary},
		{"primaryLight", &c.PrimaryLight},
		{"primaryDark", &c.PrimaryDark},
		{"secondary", &c.Secondary},
		{"secondaryLight", &c.SecondaryLight},
		{"secondaryDark", &c.SecondaryDark},
		{"accent", &c.Accent},
		{"accentLight", &c.AccentLight},
		{"accentDark", &c.AccentDark},
		{"background", &c.Background},
		{"surface", &c.Surface},
		{"text", &c.Text},
		{"textSecondary", &c.TextSecondary},
		{"border", &c.Border},
		{"success", &c.Success},
		{"warning", &c.Warning},
		{"error", &c.Error},
	}
}

func isTintRole(name string) bool {
	return strings.HasSuffix(name, "Light") || strings.HasSuffix(name, "Dark")
}

func (t Theme) withTints() Theme {
	t.Colors.PrimaryLight, t.Colors.PrimaryDark = tints(t.Colors.Primary)
	t.Colors.SecondaryLight, t.Colors.SecondaryDark = tints(t.Colors.Secondary)
	t.Colors.AccentLight, t.Colors.AccentDark = tints(t.Colors.Accent)
	return t
}

func (t Theme) fillTints() Theme {
	fill := func(base string, light, dark *string) {
		l, d := tints(base)
		if *light == "" {
			*light = l
		}
		if *dark == "" {
			*dark = d
		}
	}
	fill(t.Colors.Primary, &t.Colors.PrimaryLight, &t.Colors.PrimaryDark)
	fill(t.Colors.Secondary, &t.Colors.SecondaryLight, &t.Colors.SecondaryDark)
	fill(t.Colors.Accent, &t.Colors.AccentLight, &t.Colors.AccentDark)
	return t
}

// tints blends base toward white and black in Lab space.
func tints(base string) (string, string) {
	c, err := colorful.Hex(strings.TrimSpace(base))
	if err != nil {
		return "", ""
	}
	white := colorful.Color{R: 1, G: 1, B: 1}
	black := colorful.Color{R: 0, G: 0, B: 0}
	light := c.BlendLab(white, lightTintAmount).Clamped().Hex()
	dark := c.BlendLab(black, darkTintAmount).Clamped().Hex()
	return light, dark
}

func colorOrDefault(value, fallback string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" || !IsHexColor(trimmed) {
		return fallback
	}
	return trimmed
}

func stringOrDefault(value, fallback string) string {
	if trimmed := strings.TrimSpace(value); trimmed != "" {
		return trimmed
	}
	return fallback
}

func validatorInstance() *validator.Validate {
	themeValidatorOnce.Do(func() {
		themeValidator = validator.New(validator.WithRequiredStructEnabled())
	})
	return themeValidator
}

func validateTextContrast(colorName, backgroundColor string) error {
	textColors := []string{darkTextColor, lightTextColor}
	bestRatio := 0.0
	bestText := ""
	for _, textColor := range textColors {
		ratio, err := contrastRatio(textColor, backgroundColor)
		if err != nil {
			return err
		}
		if ratio > bestRatio {
			bestRatio = ratio
			bestText = textColor
		}
	}
	if bestRatio < wcagAAMinUIContrastRatio {
		return fmt.Errorf(
			"%s must have contrast ratio >= %.1f with #000000 or #FFFFFF text; best is %s at %.2f",
			colorName,
			wcagAAMinUIContrastRatio,
			bestText,
			bestRatio,
		)
	}
	return nil
}

// ReadableTextColor picks black or white, whichever contrasts more with background.
func ReadableTextColor(background string) string {
	dark, errDark := contrastRatio(darkTextColor, background)
	light, errLight := contrastRatio(lightTextColor, background)
	if errDark != nil || errLight != nil {
		return lightTextColor
	}
	if dark >= light {
		return darkTextColor
	}
	return lightTextColor
}

func contrastRatio(textColor, backgroundColor string) (float64, error) {
	textL, err := relativeLuminance(textColor)
	if err != nil {
		return 0, err
	}
	backgroundL, err := relativeLuminance(backgroundColor)
	if err != nil {
		return 0, err
	}
	lightest := math.Max(textL, backgroundL)
	darkest := math.Min(textL, backgroundL)
	return (lightest + 0.05) / (darkest + 0.05), nil
}

func relativeLuminance(hexColor string) (float64, error) {
	r, g, b, err := parseHexColor(hexColor)
	if err != nil {
		return 0, err
	}

	rl := srgbToLinear(r)
	gl := srgbToLinear(g)
	bl := srgbToLinear(b)

	return 0.2126*rl + 0.7152*gl + 0.0722*bl, nil
}

func parseHexColor(hexColor string) (float64, float64, float64, error) {
	if !hexColorRegex.MatchString(hexColor) {
		return 0, 0, 0, fmt.Errorf("invalid hex color: %s", hexColor)
	}

	hex := strings.TrimPrefix(hexColor, "#")
	value, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid hex color: %s", hexColor)
	}

	r := float64((value >> 16) & 0xFF)
	g := float64((value >> 8) & 0xFF)
	b := float64(value & 0xFF)

	return r / 255, g / 255, b / 255, nil
}

func srgbToLinear(value float64) float64 {
	if value <= 0.03928 {
		return value / 12.92
	}
	return math.Pow((value+0.055)/1.055, 2.4)
}
