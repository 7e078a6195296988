package theme

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jcholuj/DesignSystem/pkg/errors"
	"github.com/jcholuj/DesignSystem/pkg/graphics"
)

// Tokens is the design-token document loaded from YAML. Color values are
// hex strings ("#RRGGBB") or references to other entries; defs holds the
// shared palette that per-brightness maps reference:
//
//	defs:
//	  brand: "#8839ef"
//	  brand-dim: brand
//	colors:
//	  light:
//	    primary: brand
//	    onPrimary: "#ffffff"
//	  dark:
//	    primary: "#cba6f7"
//	spacing:
//	  md: 16
//	radius:
//	  md: 8
//	typography:
//	  fontFamily: Go
//	  baseSize: 16
//
// Roles absent from a brightness map keep the built-in scheme's value.
type Tokens struct {
	Defs       map[string]string            `yaml:"defs,omitempty"`
	Colors     map[string]map[string]string `yaml:"colors"`
	Spacing    *SpacingTokens               `yaml:"spacing,omitempty"`
	Radius     *RadiusTokens                `yaml:"radius,omitempty"`
	Typography *TypographyTokens            `yaml:"typography,omitempty"`
}

// SpacingTokens overrides the spacing scale steps.
type SpacingTokens struct {
	XS float64 `yaml:"xs"`
	SM float64 `yaml:"sm"`
	MD float64 `yaml:"md"`
	LG float64 `yaml:"lg"`
	XL float64 `yaml:"xl"`
}

// RadiusTokens overrides the corner radius steps.
type RadiusTokens struct {
	SM   float64 `yaml:"sm"`
	MD   float64 `yaml:"md"`
	LG   float64 `yaml:"lg"`
	Full float64 `yaml:"full"`
}

// TypographyTokens adjusts the generated text theme.
type TypographyTokens struct {
	// FontFamily is stamped on every text style when set.
	FontFamily string `yaml:"fontFamily,omitempty"`
	// BaseSize rescales the type scale; the default scale is based on 16.
	BaseSize float64 `yaml:"baseSize,omitempty"`
}

// ParseTokens unmarshals a token document.
func ParseTokens(data []byte) (*Tokens, error) {
	var tokens Tokens
	if err := yaml.Unmarshal(data, &tokens); err != nil {
		return nil, fmt.Errorf("failed to parse tokens: %w", err)
	}
	return &tokens, nil
}

// LoadTokens reads and parses a token file. Failures carry the file path
// through the errors.Error taxonomy.
func LoadTokens(path string) (*Tokens, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &errors.Error{
			Op:   "theme.LoadTokens",
			Kind: errors.KindTokens,
			Path: path,
			Err:  err,
		}
	}
	tokens, err := ParseTokens(data)
	if err != nil {
		return nil, &errors.Error{
			Op:   "theme.LoadTokens",
			Kind: errors.KindTokens,
			Path: path,
			Err:  err,
		}
	}
	return tokens, nil
}

// Scheme resolves the color map for the given brightness over the built-in
// scheme of that brightness.
func (t *Tokens) Scheme(brightness Brightness) (ColorScheme, error) {
	scheme := LightColorScheme()
	if brightness == BrightnessDark {
		scheme = DarkColorScheme()
	}

	overrides := t.Colors[brightness.String()]
	if len(overrides) == 0 {
		return scheme, nil
	}

	resolver := newColorResolver(t.Defs, overrides)
	for key, value := range overrides {
		resolved, err := resolver.resolve(key, value)
		if err != nil {
			return ColorScheme{}, fmt.Errorf("failed to resolve color %s: %w", key, err)
		}
		color, err := graphics.ParseHex(resolved)
		if err != nil {
			return ColorScheme{}, fmt.Errorf("failed to parse color %s: %w", key, err)
		}
		// Unknown roles are ignored for forward compatibility.
		applySchemeColor(&scheme, key, color)
	}
	return scheme, nil
}

// Theme builds a full Theme for the given brightness: resolved colors over
// the built-in scheme, token scales, and the text theme adjusted by the
// typography tokens.
func (t *Tokens) Theme(brightness Brightness) (Theme, error) {
	scheme, err := t.Scheme(brightness)
	if err != nil {
		return Theme{}, err
	}

	theme := Theme{
		ColorScheme: scheme,
		TextTheme:   t.textTheme(scheme.OnBackground),
		Spacing:     t.spacingScale(),
		Radii:       t.radiusScale(),
		Brightness:  brightness,
	}
	return theme, nil
}

// Diagnostics resolves every color in every brightness map and returns one
// message per problem (unknown references, cycles, malformed hex values).
// A nil result means the document is clean.
func (t *Tokens) Diagnostics() []string {
	var diags []string
	for _, brightness := range []string{"light", "dark"} {
		colors, ok := t.Colors[brightness]
		if !ok {
			continue
		}
		resolver := newColorResolver(t.Defs, colors)
		keys := make([]string, 0, len(colors))
		for key := range colors {
			keys = append(keys, key)
		}
		slices.Sort(keys)
		for _, key := range keys {
			resolved, err := resolver.resolve(key, colors[key])
			if err != nil {
				diags = append(diags, fmt.Sprintf("%s.%s: %v", brightness, key, err))
				continue
			}
			if _, err := graphics.ParseHex(resolved); err != nil {
				diags = append(diags, fmt.Sprintf("%s.%s: %v", brightness, key, err))
			}
		}
	}
	return diags
}

func (t *Tokens) spacingScale() SpacingScale {
	if t.Spacing == nil {
		return DefaultSpacingScale()
	}
	return SpacingScale{
		XS: t.Spacing.XS,
		SM: t.Spacing.SM,
		MD: t.Spacing.MD,
		LG: t.Spacing.LG,
		XL: t.Spacing.XL,
	}
}

func (t *Tokens) radiusScale() RadiusScale {
	if t.Radius == nil {
		return DefaultRadiusScale()
	}
	return RadiusScale{
		SM:   t.Radius.SM,
		MD:   t.Radius.MD,
		LG:   t.Radius.LG,
		Full: t.Radius.Full,
	}
}

func (t *Tokens) textTheme(base graphics.Color) TextTheme {
	theme := DefaultTextTheme(base)
	if t.Typography == nil {
		return theme
	}

	factor := 1.0
	if t.Typography.BaseSize > 0 {
		factor = t.Typography.BaseSize / 16
	}
	for _, style := range []*graphics.TextStyle{
		&theme.HeadlineLarge, &theme.HeadlineMedium, &theme.HeadlineSmall,
		&theme.TitleLarge, &theme.TitleMedium,
		&theme.BodyLarge, &theme.BodyMedium, &theme.BodySmall,
		&theme.LabelLarge, &theme.LabelMedium, &theme.LabelSmall,
	} {
		if t.Typography.FontFamily != "" {
			style.FontFamily = t.Typography.FontFamily
		}
		style.FontSize *= factor
	}
	return theme
}

// colorRef tracks a token value through resolution.
type colorRef struct {
	value    string
	resolved bool
}

// colorResolver resolves token references to hex values. Defs and the
// brightness map share one namespace so theme entries can reference each
// other; resolved entries are memoized.
type colorResolver struct {
	colors  map[string]*colorRef
	visited map[string]bool
}

func newColorResolver(defs, overrides map[string]string) *colorResolver {
	colors := make(map[string]*colorRef, len(defs)+len(overrides))
	for key, value := range defs {
		colors[key] = &colorRef{value: value}
	}
	for key, value := range overrides {
		colors[key] = &colorRef{value: value}
	}
	return &colorResolver{
		colors:  colors,
		visited: make(map[string]bool),
	}
}

func (r *colorResolver) resolve(key, value string) (string, error) {
	if r.visited[key] {
		return "", fmt.Errorf("circular reference detected for color %s", key)
	}
	r.visited[key] = true
	defer func() { r.visited[key] = false }()

	if strings.HasPrefix(value, "#") {
		return value, nil
	}
	return r.resolveReference(value)
}

func (r *colorResolver) resolveReference(ref string) (string, error) {
	target, exists := r.colors[ref]
	if !exists {
		return "", fmt.Errorf("color reference %q not found", ref)
	}
	if target.resolved {
		return target.value, nil
	}

	resolved, err := r.resolve(ref, target.value)
	if err != nil {
		return "", err
	}
	target.value = resolved
	target.resolved = true
	return resolved, nil
}

// applySchemeColor writes a resolved color into its scheme role. Returns
// false for unknown roles.
func applySchemeColor(scheme *ColorScheme, key string, color graphics.Color) bool {
	switch key {
	case "primary":
		scheme.Primary = color
	case "onPrimary":
		scheme.OnPrimary = color
	case "secondary":
		scheme.Secondary = color
	case "onSecondary":
		scheme.OnSecondary = color
	case "secondaryContainer":
		scheme.SecondaryContainer = color
	case "onSecondaryContainer":
		scheme.OnSecondaryContainer = color
	case "background":
		scheme.Background = color
	case "onBackground":
		scheme.OnBackground = color
	case "surface":
		scheme.Surface = color
	case "onSurface":
		scheme.OnSurface = color
	case "surfaceVariant":
		scheme.SurfaceVariant = color
	case "onSurfaceVariant":
		scheme.OnSurfaceVariant = color
	case "surfaceContainerHigh":
		scheme.SurfaceContainerHigh = color
	case "outline":
		scheme.Outline = color
	case "outlineVariant":
		scheme.OutlineVariant = color
	case "error":
		scheme.Error = color
	case "onError":
		scheme.OnError = color
	case "shadow":
		scheme.Shadow = color
	default:
		return false
	}
	return true
}
