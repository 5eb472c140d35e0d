package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

const (
	EnvOut               = "DIAGRAMKIT_OUT"
	EnvFramebuffer       = "DIAGRAMKIT_FB"
	EnvFramebufferDevice = "DIAGRAMKIT_FB_DEVICE"
	EnvFramebufferHold   = "DIAGRAMKIT_FB_HOLD"
	EnvStdioLog          = "DIAGRAMKIT_STDIO_LOG"
	EnvFontBold          = "DIAGRAMKIT_FONT_BOLD"
	EnvFontRegular       = "DIAGRAMKIT_FONT_REGULAR"
)

const (
	DefaultOut               = "diagram.png"
	DefaultFramebufferDevice = "/dev/fb0"
	DefaultFramebufferHold   = 5 * time.Second
)

// Config holds the settings of the diagramkit command that can come from
// the environment. Flags override these values.
type Config struct {
	OutPath string

	Framebuffer       bool
	FramebufferDevice string
	FramebufferHold   time.Duration

	StdioLog string

	// Extra font candidates, tried before the built-in defaults.
	BoldFonts    []string
	RegularFonts []string
}

func FromEnv() (Config, error) {
	cfg := Config{
		OutPath:           DefaultOut,
		FramebufferDevice: DefaultFramebufferDevice,
		FramebufferHold:   DefaultFramebufferHold,
		StdioLog:          os.Getenv(EnvStdioLog),
		BoldFonts:         splitPaths(os.Getenv(EnvFontBold)),
		RegularFonts:      splitPaths(os.Getenv(EnvFontRegular)),
	}
	if out := os.Getenv(EnvOut); out != "" {
		cfg.OutPath = out
	}
	if dev := os.Getenv(EnvFramebufferDevice); dev != "" {
		cfg.FramebufferDevice = dev
	}

	if raw := os.Getenv(EnvFramebuffer); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return Config{}, fmt.Errorf("%s must be a boolean (got %q): %w", EnvFramebuffer, raw, err)
		}
		cfg.Framebuffer = parsed
	}
	if raw := os.Getenv(EnvFramebufferHold); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return Config{}, fmt.Errorf("%s must be a duration (got %q): %w", EnvFramebufferHold, raw, err)
		}
		cfg.FramebufferHold = parsed
	}

	return cfg, nil
}

func splitPaths(raw string) []string {
	var out []string
	for _, p := range filepath.SplitList(raw) {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
