package app

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestDefaultConfigFromEnv(t *testing.T) {
	t.Setenv(EnvOutDir, "/tmp/mockups")
	t.Setenv(EnvFontDir, "/opt/fonts")
	t.Setenv(EnvPreview, "true")
	t.Setenv(EnvFBDevice, "/dev/fb1")

	cfg, err := DefaultConfigFromEnv()
	if err != nil {
		t.Fatalf("DefaultConfigFromEnv: %v", err)
	}
	want := Config{OutDir: "/tmp/mockups", FontDir: "/opt/fonts", HelpURL: DefaultHelpURL, Preview: true, FBDevice: "/dev/fb1"}
	if cfg != want {
		t.Errorf("cfg = %+v, want %+v", cfg, want)
	}
}

func TestDefaultConfigFromEnvEmptyHelpURLDisablesQR(t *testing.T) {
	t.Setenv(EnvHelpURL, "")
	cfg, err := DefaultConfigFromEnv()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.HelpURL != "" {
		t.Errorf("HelpURL = %q, want empty", cfg.HelpURL)
	}
	if cfg.OutDir == "" {
		t.Error("OutDir should default to the executable directory")
	}
}

func TestDefaultConfigFromEnvRejectsBadBool(t *testing.T) {
	t.Setenv(EnvPreview, "sometimes")
	if _, err := DefaultConfigFromEnv(); err == nil || !strings.Contains(err.Error(), EnvPreview) {
		t.Fatalf("err = %v, want %s parse error", err, EnvPreview)
	}
}

func TestFileLoggerFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewFileLogger(&buf)
	logger.now = func() time.Time { return time.Date(2026, 10, 16, 9, 30, 0, 0, time.UTC) }
	logger.Infof("app", "wrote %d files", 2)
	logger.Errorf("fb", "boom")

	want := "2026-10-16T09:30:00Z [INFO] app: wrote 2 files\n" +
		"2026-10-16T09:30:00Z [ERROR] fb: boom\n"
	if buf.String() != want {
		t.Errorf("log = %q, want %q", buf.String(), want)
	}
}

func TestFileLoggerZeroValueIsSafe(t *testing.T) {
	var logger FileLogger
	logger.Infof("app", "dropped")
}
