package cmd

import (
	"bytes"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jcholuj/DesignSystem/cmd/themegen/internal/project"
	"github.com/jcholuj/DesignSystem/pkg/errors"
	"github.com/jcholuj/DesignSystem/pkg/graphics"
	"github.com/jcholuj/DesignSystem/pkg/theme"
)

// themeModule provides pkg/theme and pkg/graphics when the enclosing
// module does not carry its own copies.
const themeModule = "github.com/jcholuj/DesignSystem"

func init() {
	RegisterCommand(&Command{
		Name:  "generate",
		Short: "Compile a token file into Go theme source",
		Long: `Compile a design-token YAML file into Go source.

The generated file declares LightTheme() and DarkTheme() constructors
returning fully resolved theme values, so the application depends on
the token file at build time only.

Flags:
  -tokens FILE   Token YAML file to compile (required)
  -out FILE      Output path for the generated source (default: theme_gen.go)
  -pkg NAME      Package name for the generated file (default: the output
                 directory name, or the module name for a bare file name)`,
		Usage: "themegen generate -tokens tokens.yaml -out theme_gen.go [-pkg name]",
		Run:   runGenerate,
	})
}

func runGenerate(args []string) error {
	tokensPath := ""
	outPath := "theme_gen.go"
	pkgName := ""

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-tokens", "--tokens":
			if i+1 < len(args) {
				tokensPath = args[i+1]
				i++
			}
		case "-out", "--out":
			if i+1 < len(args) {
				outPath = args[i+1]
				i++
			}
		case "-pkg", "--pkg":
			if i+1 < len(args) {
				pkgName = args[i+1]
				i++
			}
		}
	}

	if tokensPath == "" {
		return fmt.Errorf("-tokens is required\n\nUsage: themegen generate -tokens tokens.yaml -out theme_gen.go")
	}

	root, err := project.Root()
	if err != nil {
		return err
	}
	modulePath, err := project.ModulePath(root)
	if err != nil {
		return err
	}
	if pkgName == "" {
		pkgName = defaultPackage(outPath, modulePath)
	}

	tokens, err := theme.LoadTokens(tokensPath)
	if err != nil {
		return err
	}
	if diags := tokens.Diagnostics(); len(diags) > 0 {
		for _, d := range diags {
			fmt.Fprintf(os.Stderr, "  %s\n", d)
		}
		return &errors.Error{
			Op:   "themegen.generate",
			Kind: errors.KindTokens,
			Path: tokensPath,
			Err:  fmt.Errorf("%d problem(s) found", len(diags)),
		}
	}

	source, err := generateSource(tokens, pkgName, filepath.Base(tokensPath), importBase(root, modulePath))
	if err != nil {
		return err
	}

	if dir := filepath.Dir(outPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(outPath, source, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", outPath, err)
	}

	fmt.Printf("Wrote %s (package %s)\n", outPath, pkgName)
	return nil
}

// defaultPackage picks the generated file's package name: the output
// directory's base name when the file lands in a subdirectory, otherwise
// the enclosing module's name.
func defaultPackage(outPath, modulePath string) string {
	dir := filepath.Dir(outPath)
	if dir != "." && dir != string(filepath.Separator) {
		return project.PackageName(filepath.Base(dir))
	}
	return project.DefaultPackageName(modulePath)
}

// importBase returns the module whose pkg/theme the generated file should
// import: the enclosing module when it carries its own pkg/theme,
// otherwise the canonical one.
func importBase(root, modulePath string) string {
	if info, err := os.Stat(filepath.Join(root, "pkg", "theme")); err == nil && info.IsDir() {
		return modulePath
	}
	return themeModule
}

// generateSource renders both themes from the tokens and emits them as a
// gofmt-formatted Go source file.
func generateSource(tokens *theme.Tokens, pkgName, tokensFile, base string) ([]byte, error) {
	light, err := tokens.Theme(theme.BrightnessLight)
	if err != nil {
		return nil, err
	}
	dark, err := tokens.Theme(theme.BrightnessDark)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by themegen from %s. DO NOT EDIT.\n\n", tokensFile)
	fmt.Fprintf(&buf, "package %s\n\n", pkgName)
	fmt.Fprintf(&buf, "import (\n")
	fmt.Fprintf(&buf, "\t%q\n", base+"/pkg/graphics")
	fmt.Fprintf(&buf, "\t%q\n", base+"/pkg/theme")
	fmt.Fprintf(&buf, ")\n\n")

	writeThemeFunc(&buf, "LightTheme", "light", light)
	buf.WriteString("\n")
	writeThemeFunc(&buf, "DarkTheme", "dark", dark)

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to format generated source: %w", err)
	}
	return formatted, nil
}

func writeThemeFunc(buf *bytes.Buffer, name, variant string, th theme.Theme) {
	fmt.Fprintf(buf, "// %s returns the %s theme compiled from the token file.\n", name, variant)
	fmt.Fprintf(buf, "func %s() theme.Theme {\n", name)
	buf.WriteString("\treturn theme.Theme{\n")

	buf.WriteString("\t\tColorScheme: theme.ColorScheme{\n")
	for _, field := range colorSchemeFields(th.ColorScheme) {
		fmt.Fprintf(buf, "\t\t\t%s: %s,\n", field.name, colorExpr(field.color))
	}
	buf.WriteString("\t\t},\n")

	buf.WriteString("\t\tTextTheme: theme.TextTheme{\n")
	for _, slot := range textThemeSlots(th.TextTheme) {
		fmt.Fprintf(buf, "\t\t\t%s: %s,\n", slot.name, textStyleExpr(slot.style))
	}
	buf.WriteString("\t\t},\n")

	fmt.Fprintf(buf, "\t\tSpacing: theme.SpacingScale{XS: %s, SM: %s, MD: %s, LG: %s, XL: %s},\n",
		floatExpr(th.Spacing.XS), floatExpr(th.Spacing.SM), floatExpr(th.Spacing.MD),
		floatExpr(th.Spacing.LG), floatExpr(th.Spacing.XL))
	fmt.Fprintf(buf, "\t\tRadii: theme.RadiusScale{SM: %s, MD: %s, LG: %s, Full: %s},\n",
		floatExpr(th.Radii.SM), floatExpr(th.Radii.MD), floatExpr(th.Radii.LG), floatExpr(th.Radii.Full))
	fmt.Fprintf(buf, "\t\tBrightness: theme.Brightness%s,\n", capitalize(th.Brightness.String()))

	buf.WriteString("\t}\n")
	buf.WriteString("}\n")
}

type namedColor struct {
	name  string
	color graphics.Color
}

func colorSchemeFields(s theme.ColorScheme) []namedColor {
	return []namedColor{
		{"Primary", s.Primary},
		{"OnPrimary", s.OnPrimary},
		{"Secondary", s.Secondary},
		{"OnSecondary", s.OnSecondary},
		{"SecondaryContainer", s.SecondaryContainer},
		{"OnSecondaryContainer", s.OnSecondaryContainer},
		{"Background", s.Background},
		{"OnBackground", s.OnBackground},
		{"Surface", s.Surface},
		{"OnSurface", s.OnSurface},
		{"SurfaceVariant", s.SurfaceVariant},
		{"OnSurfaceVariant", s.OnSurfaceVariant},
		{"SurfaceContainerHigh", s.SurfaceContainerHigh},
		{"Outline", s.Outline},
		{"OutlineVariant", s.OutlineVariant},
		{"Error", s.Error},
		{"OnError", s.OnError},
		{"Shadow", s.Shadow},
	}
}

type namedStyle struct {
	name  string
	style graphics.TextStyle
}

func textThemeSlots(t theme.TextTheme) []namedStyle {
	return []namedStyle{
		{"HeadlineLarge", t.HeadlineLarge},
		{"HeadlineMedium", t.HeadlineMedium},
		{"HeadlineSmall", t.HeadlineSmall},
		{"TitleLarge", t.TitleLarge},
		{"TitleMedium", t.TitleMedium},
		{"BodyLarge", t.BodyLarge},
		{"BodyMedium", t.BodyMedium},
		{"BodySmall", t.BodySmall},
		{"LabelLarge", t.LabelLarge},
		{"LabelMedium", t.LabelMedium},
		{"LabelSmall", t.LabelSmall},
	}
}

func colorExpr(c graphics.Color) string {
	return fmt.Sprintf("graphics.Color(0x%08X)", uint32(c))
}

func textStyleExpr(s graphics.TextStyle) string {
	parts := []string{"Color: " + colorExpr(s.Color)}
	if s.FontFamily != "" {
		parts = append(parts, fmt.Sprintf("FontFamily: %q", s.FontFamily))
	}
	parts = append(parts, "FontSize: "+floatExpr(s.FontSize))
	if s.FontWeight != 0 {
		parts = append(parts, "FontWeight: "+fontWeightExpr(s.FontWeight))
	}
	return "graphics.TextStyle{" + strings.Join(parts, ", ") + "}"
}

var fontWeightNames = map[graphics.FontWeight]string{
	graphics.FontWeightThin:       "graphics.FontWeightThin",
	graphics.FontWeightExtraLight: "graphics.FontWeightExtraLight",
	graphics.FontWeightLight:      "graphics.FontWeightLight",
	graphics.FontWeightNormal:     "graphics.FontWeightNormal",
	graphics.FontWeightMedium:     "graphics.FontWeightMedium",
	graphics.FontWeightSemibold:   "graphics.FontWeightSemibold",
	graphics.FontWeightBold:       "graphics.FontWeightBold",
	graphics.FontWeightExtraBold:  "graphics.FontWeightExtraBold",
	graphics.FontWeightBlack:      "graphics.FontWeightBlack",
}

func fontWeightExpr(w graphics.FontWeight) string {
	if name, ok := fontWeightNames[w]; ok {
		return name
	}
	return fmt.Sprintf("graphics.FontWeight(%d)", int(w))
}

func floatExpr(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
