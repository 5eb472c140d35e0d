package diagram

import (
	"fmt"
	"os"
	"sync"

	"github.com/golang/freetype/truetype"
	"github.com/rook-computer/diagramkit/internal/logging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Default candidate locations for a bold and a regular sans-serif face.
var (
	BoldFontPaths = []string{
		"/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf",
		"/usr/share/fonts/TTF/DejaVuSans-Bold.ttf",
	}
	RegularFontPaths = []string{
		"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
		"/usr/share/fonts/TTF/DejaVuSans.ttf",
	}
)

// Source values for fonts that were not loaded from a file.
const (
	SourceBuiltinRegular = "builtin:goregular"
	SourceBuiltinBold    = "builtin:gobold"
	SourceBasic          = "builtin:basicfont"
)

// Font is a face loaded at a fixed pixel size.
// Source is the file it came from, or one of the builtin sources.
type Font struct {
	Face   font.Face
	Size   float64
	Source string
}

// Builtin reports whether the font is a fallback rather than a file on disk.
func (f *Font) Builtin() bool {
	switch f.Source {
	case SourceBuiltinRegular, SourceBuiltinBold, SourceBasic:
		return true
	}
	return false
}

// Fonts is the conventional four-tier bundle.
type Fonts struct {
	Bold   *Font // titles
	Medium *Font // labels
	Small  *Font // body
	Tiny   *Font // captions and badges
}

var logger logging.Logger = logging.NoopLogger{}

// SetLogger routes font provisioning diagnostics to l. A nil l silences them.
func SetLogger(l logging.Logger) { logger = logging.OrNoop(l) }

// Parsed font files, keyed by path. Faces are built per call since a
// font.Face is not safe for concurrent use.
var parsed = struct {
	mu       sync.Mutex
	files    map[string]*opentype.Font
	builtins map[string]*truetype.Font
}{
	files:    make(map[string]*opentype.Font),
	builtins: make(map[string]*truetype.Font),
}

// FindFont returns a face at size pixels from the first path that loads.
// Paths that are missing or fail to parse are skipped. When none loads, the
// embedded Go regular face is used, so the result is never nil.
func FindFont(paths []string, size float64) *Font {
	return findFont(paths, size, SourceBuiltinRegular)
}

func findFont(paths []string, size float64, fallback string) *Font {
	for _, path := range paths {
		face, err := loadFace(path, size)
		if err != nil {
			logger.Infof("fonts", "skipping %s: %v", path, err)
			continue
		}
		return &Font{Face: face, Size: size, Source: path}
	}
	return builtinFont(fallback, size)
}

// LoadFonts resolves the four tiers from the default candidate lists.
func LoadFonts() Fonts {
	return LoadFontsFrom(BoldFontPaths, RegularFontPaths)
}

// LoadFontsFrom resolves bold/22, bold/16, regular/14 and regular/11.
func LoadFontsFrom(bold, regular []string) Fonts {
	return Fonts{
		Bold:   findFont(bold, 22, SourceBuiltinBold),
		Medium: findFont(bold, 16, SourceBuiltinBold),
		Small:  findFont(regular, 14, SourceBuiltinRegular),
		Tiny:   findFont(regular, 11, SourceBuiltinRegular),
	}
}

func loadFace(path string, size float64) (font.Face, error) {
	f, err := parseFontFile(path)
	if err != nil {
		return nil, err
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return nil, fmt.Errorf("create face: %w", err)
	}
	return face, nil
}

func parseFontFile(path string) (*opentype.Font, error) {
	parsed.mu.Lock()
	defer parsed.mu.Unlock()
	if f, ok := parsed.files[path]; ok {
		return f, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	parsed.files[path] = f
	return f, nil
}

func builtinFont(source string, size float64) *Font {
	ttf, err := parseBuiltin(source)
	if err != nil {
		logger.Errorf("fonts", "builtin face unavailable, using basicfont: %v", err)
		return &Font{Face: basicfont.Face7x13, Size: 13, Source: SourceBasic}
	}
	face := truetype.NewFace(ttf, &truetype.Options{Size: size, DPI: 72, Hinting: font.HintingFull})
	return &Font{Face: face, Size: size, Source: source}
}

func parseBuiltin(source string) (*truetype.Font, error) {
	parsed.mu.Lock()
	defer parsed.mu.Unlock()
	if f, ok := parsed.builtins[source]; ok {
		return f, nil
	}
	data := goregular.TTF
	if source == SourceBuiltinBold {
		data = gobold.TTF
	}
	f, err := truetype.Parse(data)
	if err != nil {
		return nil, err
	}
	parsed.builtins[source] = f
	return f, nil
}
