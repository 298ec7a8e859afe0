package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

const (
	EnvOutDir   = "MOCKUPS_OUT_DIR"
	EnvFontDir  = "MOCKUPS_FONT_DIR"
	EnvHelpURL  = "MOCKUPS_HELP_URL"
	EnvPreview  = "MOCKUPS_PREVIEW"
	EnvFBDevice = "MOCKUPS_FB_DEVICE"
)

// DefaultHelpURL points at the LMS backend's default local address.
const DefaultHelpURL = "http://localhost:4000/"

// Config contains settings for one generator run.
type Config struct {
	// OutDir receives the PNG files; defaults to the executable's directory.
	OutDir  string
	FontDir string
	// HelpURL is encoded as a QR code on the login page; empty disables it.
	HelpURL  string
	Preview  bool
	FBDevice string
}

func DefaultConfigFromEnv() (Config, error) {
	outDir := os.Getenv(EnvOutDir)
	if outDir == "" {
		outDir = ExecutableDir()
	}

	helpURL, ok := os.LookupEnv(EnvHelpURL)
	if !ok {
		helpURL = DefaultHelpURL
	}

	preview := false
	if raw := os.Getenv(EnvPreview); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return Config{}, fmt.Errorf("%s must be a boolean (got %q): %w", EnvPreview, raw, err)
		}
		preview = parsed
	}

	return Config{
		OutDir:   outDir,
		FontDir:  os.Getenv(EnvFontDir),
		HelpURL:  helpURL,
		Preview:  preview,
		FBDevice: os.Getenv(EnvFBDevice),
	}, nil
}

// ExecutableDir returns the directory of the running binary, or "." if it
// cannot be determined.
func ExecutableDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe)
}
