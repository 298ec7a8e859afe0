package app

import (
	"bytes"
	"context"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/rook-computer/mockups/internal/assets"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

func newTestApp(t *testing.T, outDir string) *App {
	t.Helper()
	a := New(Config{OutDir: outDir, HelpURL: DefaultHelpURL}, nil)
	// An empty font directory forces the bitmap fallback.
	a.Fonts = &assets.FontLoader{Dirs: []string{t.TempDir()}}
	return a
}

func TestRunWritesTwoFixedSizeImages(t *testing.T) {
	outDir := t.TempDir()
	paths, err := newTestApp(t, outDir).Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("wrote %d files, want 2", len(paths))
	}

	entries, err := os.ReadDir(outDir)
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	if strings.Join(names, ",") != "login-page.png,student-dashboard.png" {
		t.Fatalf("output dir holds %v", names)
	}

	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			t.Fatal(err)
		}
		cfg, err := png.DecodeConfig(f)
		f.Close()
		if err != nil {
			t.Fatalf("%s: %v", path, err)
		}
		if cfg.Width != 1280 || cfg.Height != 720 {
			t.Errorf("%s: %dx%d, want 1280x720", filepath.Base(path), cfg.Width, cfg.Height)
		}
	}
}

func TestRunIsDeterministic(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()
	if _, err := newTestApp(t, first).Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	if _, err := newTestApp(t, second).Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"login-page.png", "student-dashboard.png"} {
		a, err := os.ReadFile(filepath.Join(first, name))
		if err != nil {
			t.Fatal(err)
		}
		b, err := os.ReadFile(filepath.Join(second, name))
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(a, b) {
			t.Errorf("%s differs between runs", name)
		}
	}
}

func TestRunOverwritesPreviousOutput(t *testing.T) {
	outDir := t.TempDir()
	stale := filepath.Join(outDir, "login-page.png")
	if err := os.WriteFile(stale, []byte("stale"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := newTestApp(t, outDir).Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(stale)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte{0x89, 0x50, 0x4E, 0x47}) {
		t.Error("stale file was not replaced with a PNG")
	}
}

func TestRunCreatesOutputDir(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "docs", "mockups")
	if _, err := newTestApp(t, outDir).Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if _, err := os.Stat(filepath.Join(outDir, "student-dashboard.png")); err != nil {
		t.Fatal(err)
	}
}

func TestRunFailsOnUnwritableOutput(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "not-a-dir")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := newTestApp(t, blocker).Run(context.Background()); err == nil {
		t.Fatal("expected an error when the output path is a file")
	}
}

func writeFontDir(t *testing.T, bold, regular []byte) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, assets.BoldFontFile), bold, 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, assets.RegularFontFile), regular, 0o644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestRunFallsBackOnCorruptFont(t *testing.T) {
	var logBuf bytes.Buffer
	fontDir := writeFontDir(t, []byte("garbage"), []byte("garbage"))
	a := New(Config{OutDir: t.TempDir(), FontDir: fontDir}, NewFileLogger(&logBuf))

	paths, err := a.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("wrote %d files, want 2", len(paths))
	}
	if !a.fonts.Fallback {
		t.Error("expected the bitmap fallback")
	}
	if !strings.Contains(logBuf.String(), "[ERROR] fonts: font load failed") {
		t.Errorf("log = %q, want font load error", logBuf.String())
	}
}

func TestRunWithTrueTypeFontsIsDeterministic(t *testing.T) {
	fontDir := writeFontDir(t, gobold.TTF, goregular.TTF)

	run := func() (string, *App) {
		outDir := t.TempDir()
		a := New(Config{OutDir: outDir, FontDir: fontDir, HelpURL: DefaultHelpURL}, nil)
		paths, err := a.Run(context.Background())
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
		if len(paths) != 2 {
			t.Fatalf("wrote %d files, want 2", len(paths))
		}
		for _, path := range paths {
			f, err := os.Open(path)
			if err != nil {
				t.Fatal(err)
			}
			cfg, err := png.DecodeConfig(f)
			f.Close()
			if err != nil {
				t.Fatalf("%s: %v", path, err)
			}
			if cfg.Width != 1280 || cfg.Height != 720 {
				t.Errorf("%s: %dx%d, want 1280x720", filepath.Base(path), cfg.Width, cfg.Height)
			}
		}
		return outDir, a
	}

	first, a := run()
	if a.fonts.Fallback {
		t.Fatal("TrueType fonts in the font dir were not used")
	}
	second, _ := run()
	for _, name := range []string{"login-page.png", "student-dashboard.png"} {
		x, err := os.ReadFile(filepath.Join(first, name))
		if err != nil {
			t.Fatal(err)
		}
		y, err := os.ReadFile(filepath.Join(second, name))
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(x, y) {
			t.Errorf("%s differs between runs", name)
		}
	}
}

func TestRunHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	paths, err := newTestApp(t, t.TempDir()).Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if len(paths) != 0 {
		t.Errorf("wrote %v after cancellation", paths)
	}
}

func TestRunPreviewUnavailableIsIgnored(t *testing.T) {
	var logBuf bytes.Buffer
	a := newTestApp(t, t.TempDir())
	a.Logger = NewFileLogger(&logBuf)
	a.Config.Preview = true
	a.Config.FBDevice = filepath.Join(t.TempDir(), "no-such-fb")

	if _, err := a.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(logBuf.String(), "[ERROR] fb: preview disabled") {
		t.Errorf("log = %q, want preview error", logBuf.String())
	}
}
