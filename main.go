package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rook-computer/mockups/internal/app"
	"github.com/rook-computer/mockups/internal/render"
)

func main() {
	defaults, err := app.DefaultConfigFromEnv()
	if err != nil {
		fmt.Println("config error:", err)
		os.Exit(2)
	}

	// Flags
	outDir := flag.String("out", defaults.OutDir, "directory the PNG mockups are written to; also configurable via "+app.EnvOutDir)
	fontDir := flag.String("font-dir", defaults.FontDir, "directory searched for DejaVu fonts before the system font directories; also configurable via "+app.EnvFontDir)
	helpURL := flag.String("help-url", defaults.HelpURL, "URL encoded as a QR code in the login footer (empty disables); also configurable via "+app.EnvHelpURL)
	preview := flag.Bool("preview", defaults.Preview, "show each mockup on the framebuffer after rendering; also configurable via "+app.EnvPreview)
	fbDevice := flag.String("fb-device", orDefault(defaults.FBDevice, render.DefaultFramebufferDevice), "framebuffer device used by -preview; also configurable via "+app.EnvFBDevice)
	debug := flag.Bool("debug", false, "enable debug logging to ./mockups-debug.log")
	stdioLog := flag.String("stdio-log", "", "redirect stdout+stderr (including panics) to this file; also configurable via MOCKUPS_STDIO_LOG")
	flag.Parse()

	logPath := *stdioLog
	if logPath == "" {
		logPath = os.Getenv("MOCKUPS_STDIO_LOG")
	}
	if logPath != "" {
		if err := redirectStdIO(logPath); err != nil {
			fmt.Println("stdio log redirect error:", err)
		}
	}

	// Local file logger when debug enabled
	var logger app.Logger = app.NoopLogger{}
	if *debug {
		f, err := os.OpenFile("./mockups-debug.log", os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err == nil {
			defer f.Close()
			logger = app.NewFileLogger(f)
			logger.Infof("main", "debug logging enabled")
		} else {
			fmt.Println("debug log open error:", err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := app.New(app.Config{
		OutDir:   *outDir,
		FontDir:  *fontDir,
		HelpURL:  *helpURL,
		Preview:  *preview,
		FBDevice: *fbDevice,
	}, logger)

	if _, err := a.Run(ctx); err != nil {
		fmt.Println("mockup generation error:", err)
		stop()
		os.Exit(1)
	}

	fmt.Println("Mockups generated in", *outDir)
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
