package graphics

import (
	"fmt"
	"math"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/jcholuj/DesignSystem/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomediumitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

import stderrors "errors"

const (
	// defaultFontSize is used when no font size is specified.
	defaultFontSize = 16

	// DefaultFontFamily is the bundled family registered by NewFontManager.
	DefaultFontFamily = "Go"

	// faceDPI makes one font point equal one logical pixel.
	faceDPI = 72
)

// FontWeight represents a numeric font weight.
type FontWeight int

const (
	FontWeightThin       FontWeight = 100
	FontWeightExtraLight FontWeight = 200
	FontWeightLight      FontWeight = 300
	FontWeightNormal     FontWeight = 400
	FontWeightMedium     FontWeight = 500
	FontWeightSemibold   FontWeight = 600
	FontWeightBold       FontWeight = 700
	FontWeightExtraBold  FontWeight = 800
	FontWeightBlack      FontWeight = 900
)

// FontStyle represents normal or italic text styles.
type FontStyle int

const (
	FontStyleNormal FontStyle = iota
	FontStyleItalic
)

// TextStyle describes how text should be rendered.
type TextStyle struct {
	Color              Color
	FontFamily         string
	FontSize           float64
	FontWeight         FontWeight
	FontStyle          FontStyle
	PreserveWhitespace bool
}

// TextLine represents a single laid-out line of text.
type TextLine struct {
	Text  string
	Width float64
}

// TextLayout contains measured text metrics and a resolved font face.
type TextLayout struct {
	Text       string
	Style      TextStyle
	Size       Size
	Ascent     float64
	Descent    float64
	Face       font.Face
	LineHeight float64
	Lines      []TextLine
}

// weightClass buckets numeric font weights onto the registered variants.
type weightClass int

const (
	classRegular weightClass = iota
	classMedium
	classBold
)

func classify(w FontWeight) weightClass {
	switch {
	case w >= FontWeightSemibold:
		return classBold
	case w >= FontWeightMedium:
		return classMedium
	default:
		return classRegular
	}
}

// fontKey identifies a registered font variant within a family.
type fontKey struct {
	family string
	class  weightClass
	italic bool
}

// faceKey identifies a cached face at a specific size.
type faceKey struct {
	fontKey
	size float64
}

// FontManager registers font data and resolves faces for text measurement.
type FontManager struct {
	mu          sync.Mutex
	fonts       map[fontKey]*sfnt.Font
	faces       map[faceKey]font.Face
	defaultName string
}

var (
	defaultFontManager     *FontManager
	defaultFontManagerErr  error
	defaultFontManagerOnce sync.Once
)

// NewFontManager creates a font manager with the bundled Go font family
// registered in regular, medium and bold weights plus italic variants.
func NewFontManager() (*FontManager, error) {
	manager := &FontManager{
		fonts:       make(map[fontKey]*sfnt.Font),
		faces:       make(map[faceKey]font.Face),
		defaultName: DefaultFontFamily,
	}
	bundled := []struct {
		class  weightClass
		italic bool
		data   []byte
	}{
		{classRegular, false, goregular.TTF},
		{classMedium, false, gomedium.TTF},
		{classBold, false, gobold.TTF},
		{classRegular, true, goitalic.TTF},
		{classMedium, true, gomediumitalic.TTF},
		{classBold, true, gobolditalic.TTF},
	}
	for _, variant := range bundled {
		if err := manager.register(DefaultFontFamily, variant.class, variant.italic, variant.data); err != nil {
			return nil, fmt.Errorf("failed to register bundled font: %w", err)
		}
	}
	return manager, nil
}

// DefaultFontManagerErr returns a shared font manager with the bundled fonts.
// It returns both the manager and any error that occurred during initialization.
func DefaultFontManagerErr() (*FontManager, error) {
	defaultFontManagerOnce.Do(func() {
		manager, err := NewFontManager()
		if err != nil {
			defaultFontManagerErr = err
			errors.Report(&errors.Error{
				Op:   "graphics.DefaultFontManager",
				Kind: errors.KindFont,
				Err:  err,
			})
			return
		}
		defaultFontManager = manager
	})
	return defaultFontManager, defaultFontManagerErr
}

// DefaultFontManager returns a shared font manager with the bundled fonts.
// Returns nil if initialization failed; see DefaultFontManagerErr.
func DefaultFontManager() *FontManager {
	manager, _ := DefaultFontManagerErr()
	return manager
}

// RegisterFont registers a new font family from TrueType or OpenType data.
// The data becomes the family's regular weight.
func (m *FontManager) RegisterFont(name string, data []byte) error {
	if name == "" {
		return stderrors.New("font name required")
	}
	return m.register(name, classRegular, false, data)
}

// RegisterFontVariant registers weight- or style-specific data for a family.
func (m *FontManager) RegisterFontVariant(name string, weight FontWeight, style FontStyle, data []byte) error {
	if name == "" {
		return stderrors.New("font name required")
	}
	return m.register(name, classify(weight), style == FontStyleItalic, data)
}

func (m *FontManager) register(family string, class weightClass, italic bool, data []byte) error {
	parsed, err := opentype.Parse(data)
	if err != nil {
		return fmt.Errorf("failed to parse font %q: %w", family, err)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fonts[fontKey{family: family, class: class, italic: italic}] = parsed
	return nil
}

// Face resolves a font face for the given style, falling back to the
// nearest registered variant and finally to the default family.
func (m *FontManager) Face(style TextStyle) (font.Face, error) {
	family := style.FontFamily
	if family == "" {
		family = m.defaultName
	}
	size := style.FontSize
	if size <= 0 {
		size = defaultFontSize
	}
	class := classify(style.FontWeight)
	italic := style.FontStyle == FontStyleItalic

	m.mu.Lock()
	defer m.mu.Unlock()

	key := faceKey{fontKey: fontKey{family: family, class: class, italic: italic}, size: size}
	if face, ok := m.faces[key]; ok {
		return face, nil
	}
	parsed := m.lookup(family, class, italic)
	if parsed == nil && family != m.defaultName {
		parsed = m.lookup(m.defaultName, class, italic)
	}
	if parsed == nil {
		return nil, fmt.Errorf("no font registered for family %q", family)
	}
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     faceDPI,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create face for %q: %w", family, err)
	}
	m.faces[key] = face
	return face, nil
}

// lookup finds the closest registered variant. Callers must hold m.mu.
func (m *FontManager) lookup(family string, class weightClass, italic bool) *sfnt.Font {
	candidates := []fontKey{
		{family: family, class: class, italic: italic},
		{family: family, class: classRegular, italic: italic},
		{family: family, class: class, italic: false},
		{family: family, class: classRegular, italic: false},
	}
	for _, key := range candidates {
		if parsed, ok := m.fonts[key]; ok {
			return parsed
		}
	}
	return nil
}

// measure returns the advance width of s in logical pixels.
// Faces are not safe for concurrent use, so measurement holds the lock.
func (m *FontManager) measure(face font.Face, s string) float64 {
	m.mu.Lock()
	advance := font.MeasureString(face, s)
	m.mu.Unlock()
	return fixedToFloat(advance)
}

// faceMetrics returns ascent, descent and recommended line height in pixels.
func (m *FontManager) faceMetrics(face font.Face) (ascent, descent, lineHeight float64) {
	m.mu.Lock()
	metrics := face.Metrics()
	m.mu.Unlock()
	return fixedToFloat(metrics.Ascent), fixedToFloat(metrics.Descent), fixedToFloat(metrics.Height)
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

// LayoutText measures and shapes the given text using the provided font manager.
func LayoutText(text string, style TextStyle, manager *FontManager) (*TextLayout, error) {
	return LayoutTextWithConstraints(text, style, manager, 0)
}

// LayoutTextWithConstraints measures and wraps text within the given width.
// A maxWidth of zero disables wrapping.
func LayoutTextWithConstraints(text string, style TextStyle, manager *FontManager, maxWidth float64) (*TextLayout, error) {
	if manager == nil {
		return nil, stderrors.New("font manager required")
	}
	if style.FontFamily == "" && manager.defaultName != "" {
		style.FontFamily = manager.defaultName
	}
	if style.FontSize <= 0 {
		style.FontSize = defaultFontSize
	}
	face, err := manager.Face(style)
	if err != nil {
		return nil, err
	}
	ascent, descent, lineHeight := manager.faceMetrics(face)
	if lineHeight < ascent+descent {
		lineHeight = ascent + descent
	}
	measure := func(s string) float64 {
		return manager.measure(face, s)
	}
	lines := layoutLines(text, maxWidth, measure, style.PreserveWhitespace)
	maxLineWidth := 0.0
	for _, line := range lines {
		maxLineWidth = math.Max(maxLineWidth, line.Width)
	}
	if len(lines) == 0 {
		lines = []TextLine{{Text: "", Width: 0}}
	}
	layoutSize := Size{Width: maxLineWidth, Height: lineHeight * float64(len(lines))}
	return &TextLayout{
		Text:       text,
		Style:      style,
		Size:       layoutSize,
		Ascent:     ascent,
		Descent:    descent,
		Face:       face,
		LineHeight: lineHeight,
		Lines:      lines,
	}, nil
}

func layoutLines(text string, maxWidth float64, measure func(string) float64, preserveWhitespace bool) []TextLine {
	if maxWidth < 0 || math.IsInf(maxWidth, 0) {
		maxWidth = 0
	}
	paragraphs := strings.Split(text, "\n")
	lines := make([]TextLine, 0, len(paragraphs))
	for _, paragraph := range paragraphs {
		if paragraph == "" {
			lines = append(lines, TextLine{})
			continue
		}
		if maxWidth == 0 {
			lines = append(lines, TextLine{Text: paragraph, Width: measure(paragraph)})
			continue
		}
		for _, line := range wrapParagraph(paragraph, maxWidth, measure, preserveWhitespace) {
			lines = append(lines, TextLine{Text: line, Width: measure(line)})
		}
	}
	return lines
}

// wrapParagraph greedily packs runes into lines, breaking at the last
// whitespace that fits. A word longer than maxWidth is force-broken so
// every line holds at least one rune.
func wrapParagraph(text string, maxWidth float64, measure func(string) float64, preserveWhitespace bool) []string {
	var lines []string
	start := 0
	for start < len(text) {
		lastBreak := -1
		lastFit := -1
		for i := start; i < len(text); {
			r, size := utf8.DecodeRuneInString(text[i:])
			next := i + size
			width := measure(text[start:next])
			if width > maxWidth {
				break
			}
			lastFit = next
			if unicode.IsSpace(r) {
				lastBreak = next
			}
			i = next
		}
		if lastFit == -1 {
			_, size := utf8.DecodeRuneInString(text[start:])
			lastFit = start + size
		}
		cut := lastFit
		if lastFit < len(text) && lastBreak > start && lastBreak < lastFit {
			cut = lastBreak
		}
		line := text[start:cut]
		if !preserveWhitespace {
			line = strings.TrimRightFunc(line, unicode.IsSpace)
		}
		lines = append(lines, line)
		start = cut
		if preserveWhitespace {
			continue
		}
		for start < len(text) {
			r, size := utf8.DecodeRuneInString(text[start:])
			if !unicode.IsSpace(r) {
				break
			}
			start += size
		}
	}
	if len(lines) == 0 {
		return []string{""}
	}
	return lines
}
