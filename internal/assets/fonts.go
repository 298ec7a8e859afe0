package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"

	"github.com/golang/freetype/truetype"
	"github.com/rook-computer/mockups/internal/render"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

// Font assets consulted by convention.
const (
	BoldFontFile    = "DejaVuSans-Bold.ttf"
	RegularFontFile = "DejaVuSans.ttf"
)

// Pixel sizes per text role (rendered at 72 DPI, so points equal pixels).
const (
	LargeSize  = 48
	MediumSize = 30
	BodySize   = 24

	fontDPI = 72
)

type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

// FontLoader locates the preferred font assets and builds the shared FontSet.
type FontLoader struct {
	// Dirs are searched in order, each recursively; the first match wins.
	Dirs   []string
	Logger Logger
}

// NewFontLoader searches fontDir (when set) before the system font directories.
func NewFontLoader(fontDir string, logger Logger) *FontLoader {
	var dirs []string
	if fontDir != "" {
		dirs = append(dirs, fontDir)
	}
	dirs = append(dirs, SystemFontDirs()...)
	return &FontLoader{Dirs: dirs, Logger: logger}
}

// SystemFontDirs returns the conventional font directories of the platform.
func SystemFontDirs() []string {
	home, _ := os.UserHomeDir()
	switch runtime.GOOS {
	case "linux":
		dirs := []string{"/usr/share/fonts", "/usr/local/share/fonts"}
		if home != "" {
			dirs = append(dirs, filepath.Join(home, ".local/share/fonts"), filepath.Join(home, ".fonts"))
		}
		return dirs
	case "darwin":
		dirs := []string{"/System/Library/Fonts", "/Library/Fonts"}
		if home != "" {
			dirs = append(dirs, filepath.Join(home, "Library/Fonts"))
		}
		return dirs
	case "windows":
		return []string{filepath.Join(os.Getenv("WINDIR"), "Fonts")}
	default:
		return nil
	}
}

// FallbackFontSet uses the built-in bitmap face for every role.
func FallbackFontSet() render.FontSet {
	face := basicfont.Face7x13
	return render.FontSet{Large: face, Medium: face, Body: face, Fallback: true}
}

// Load builds the FontSet. Any failure to locate, read or parse the assets
// is logged and answered with the fallback set.
func (l *FontLoader) Load() render.FontSet {
	boldPath, boldOK := l.Find(BoldFontFile)
	regularPath, regularOK := l.Find(RegularFontFile)
	if !boldOK || !regularOK {
		l.infof("font assets not found, using built-in bitmap font")
		return FallbackFontSet()
	}

	fonts, err := loadFaces(boldPath, regularPath)
	if err != nil {
		l.errorf("font load failed, using built-in bitmap font: %v", err)
		return FallbackFontSet()
	}
	l.infof("loaded %s and %s", boldPath, regularPath)
	return fonts
}

func loadFaces(boldPath, regularPath string) (render.FontSet, error) {
	bold, err := parseFontFile(boldPath)
	if err != nil {
		return render.FontSet{}, err
	}
	regular, err := parseFontFile(regularPath)
	if err != nil {
		return render.FontSet{}, err
	}

	large, err := bold.face(LargeSize)
	if err != nil {
		return render.FontSet{}, fmt.Errorf("%s at %dpx: %w", boldPath, LargeSize, err)
	}
	medium, err := bold.face(MediumSize)
	if err != nil {
		return render.FontSet{}, fmt.Errorf("%s at %dpx: %w", boldPath, MediumSize, err)
	}
	body, err := regular.face(BodySize)
	if err != nil {
		return render.FontSet{}, fmt.Errorf("%s at %dpx: %w", regularPath, BodySize, err)
	}
	return render.FontSet{Large: large, Medium: medium, Body: body}, nil
}

// Find returns the path of the first file called name under l.Dirs.
func (l *FontLoader) Find(name string) (string, bool) {
	for _, dir := range l.Dirs {
		if dir == "" {
			continue
		}
		direct := filepath.Join(dir, name)
		if info, err := os.Stat(direct); err == nil && !info.IsDir() {
			return direct, true
		}
		found := ""
		_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				// Unreadable entries do not stop the search.
				return nil
			}
			if !d.IsDir() && d.Name() == name {
				found = path
				return fs.SkipAll
			}
			return nil
		})
		if found != "" {
			return found, true
		}
	}
	return "", false
}

func (l *FontLoader) infof(format string, args ...interface{}) {
	if l.Logger != nil {
		l.Logger.Infof("fonts", format, args...)
	}
}

func (l *FontLoader) errorf(format string, args ...interface{}) {
	if l.Logger != nil {
		l.Logger.Errorf("fonts", format, args...)
	}
}

// parsedFont wraps whichever parser accepted the file.
type parsedFont struct {
	sfnt *opentype.Font
	tt   *truetype.Font
}

func parseFontFile(path string) (parsedFont, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return parsedFont{}, fmt.Errorf("read font %s: %w", path, err)
	}
	f, otErr := opentype.Parse(data)
	if otErr == nil {
		return parsedFont{sfnt: f}, nil
	}
	// Older TrueType files rejected by the sfnt parser may still load here.
	tt, ttErr := truetype.Parse(data)
	if ttErr != nil {
		return parsedFont{}, fmt.Errorf("parse font %s: %w", path, errors.Join(otErr, ttErr))
	}
	return parsedFont{tt: tt}, nil
}

func (p parsedFont) face(sizePx float64) (font.Face, error) {
	if p.tt != nil {
		return truetype.NewFace(p.tt, &truetype.Options{Size: sizePx, DPI: fontDPI, Hinting: font.HintingFull}), nil
	}
	return opentype.NewFace(p.sfnt, &opentype.FaceOptions{Size: sizePx, DPI: fontDPI, Hinting: font.HintingFull})
}
