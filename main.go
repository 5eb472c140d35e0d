package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rook-computer/diagramkit/internal/config"
	"github.com/rook-computer/diagramkit/internal/diagram"
	"github.com/rook-computer/diagramkit/internal/display"
	"github.com/rook-computer/diagramkit/internal/logging"
	"github.com/rook-computer/diagramkit/internal/sheets"
)

func main() {
	defaults, err := config.FromEnv()
	if err != nil {
		fmt.Println("config error:", err)
		os.Exit(2)
	}

	// Flags
	sheetName := flag.String("sheet", "architecture", "sheet to render; see -list")
	list := flag.Bool("list", false, "list available sheets and exit")
	out := flag.String("out", defaults.OutPath, "output PNG path; also configurable via "+config.EnvOut)
	bg := flag.String("bg", "#ffffff", "background color as #rrggbb")
	link := flag.String("link", "", "stamp this URL as a QR code in the bottom-right corner")
	showFB := flag.Bool("fb", defaults.Framebuffer, "also show the diagram on the framebuffer; also configurable via "+config.EnvFramebuffer)
	fbDevice := flag.String("fb-device", defaults.FramebufferDevice, "framebuffer device; also configurable via "+config.EnvFramebufferDevice)
	fbHold := flag.Duration("fb-hold", defaults.FramebufferHold, "how long to keep the diagram on the framebuffer; also configurable via "+config.EnvFramebufferHold)
	debug := flag.Bool("debug", false, "enable debug logging to ./diagramkit-debug.log")
	stdioLog := flag.String("stdio-log", defaults.StdioLog, "redirect stdout+stderr (including panics) to this file; also configurable via "+config.EnvStdioLog)
	flag.Parse()

	if *list {
		for _, name := range sheets.Names() {
			fmt.Println(name)
		}
		return
	}

	if *stdioLog != "" {
		if err := redirectStdIO(*stdioLog); err != nil {
			fmt.Println("stdio log redirect error:", err)
		}
	}

	var logger logging.Logger = logging.NoopLogger{}
	if *debug {
		f, err := os.OpenFile("./diagramkit-debug.log", os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err == nil {
			defer f.Close()
			logger = logging.NewFileLogger(f)
			logger.Infof("main", "debug logging enabled")
		} else {
			fmt.Println("debug log open error:", err)
		}
	}
	diagram.SetLogger(logger)

	fonts := diagram.LoadFontsFrom(
		append(defaults.BoldFonts, diagram.BoldFontPaths...),
		append(defaults.RegularFonts, diagram.RegularFontPaths...),
	)
	logger.Infof("fonts", "bold=%s regular=%s", fonts.Bold.Source, fonts.Small.Source)

	canvas, err := render(*sheetName, *bg, *link, fonts)
	if err != nil {
		fmt.Println("render error:", err)
		os.Exit(1)
	}
	if err := writePNG(canvas, *out); err != nil {
		fmt.Println("write error:", err)
		os.Exit(1)
	}
	logger.Infof("main", "wrote %s (%dx%d)", *out, canvas.Width(), canvas.Height())
	fmt.Println("wrote", *out)

	if *showFB {
		sink := &display.Framebuffer{Device: *fbDevice, Hold: *fbHold, Background: canvas.Image().RGBAAt(0, 0), Logger: logger}
		if err := sink.Show(canvas.Image()); err != nil {
			logger.Errorf("fb", "show failed: %v", err)
			fmt.Println("framebuffer error:", err)
			os.Exit(1)
		}
	}
}

func render(sheetName, bgHex, link string, fonts diagram.Fonts) (*diagram.Canvas, error) {
	sheet, ok := sheets.Lookup(sheetName)
	if !ok {
		return nil, fmt.Errorf("unknown sheet %q (have %v)", sheetName, sheets.Names())
	}
	bg, err := diagram.ParseHex(bgHex)
	if err != nil {
		return nil, err
	}
	return sheets.Render(sheet, fonts, sheets.Options{Background: bg, Link: link})
}

func writePNG(canvas *diagram.Canvas, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := canvas.EncodePNG(f); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
