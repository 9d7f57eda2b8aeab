// Command inkdemo is a Fyne desktop harness for the ink engine: a window
// with a drawing surface and a toolbar for grid/profile switching, driven
// entirely through internal/engine's verb surface.
//
// The entry point follows the usual emulator-harness shape: flag parsing,
// optional -log logging setup, then handing off to a Fyne UI's Run().
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/sensoryink/core/internal/audio"
	"github.com/sensoryink/core/internal/config"
	"github.com/sensoryink/core/internal/diag"
	"github.com/sensoryink/core/internal/engine"
	"github.com/sensoryink/core/internal/grid"
)

func main() {
	width := flag.Int("width", 1000, "canvas width in pixels")
	height := flag.Int("height", 700, "canvas height in pixels")
	enableLogging := flag.Bool("log", false, "enable diagnostic logging")
	enableRealAudio := flag.Bool("audio", true, "enable SDL procedural audio")
	enableRealHaptics := flag.Bool("haptics", true, "enable D-Bus haptic pulses")
	flag.Parse()

	var logger *diag.Logger
	if *enableLogging {
		logger = diag.NewLogger(10000)
		logger.SetMinLevel(diag.LogLevelDebug)
	}

	cfg, err := config.Load(config.Path())
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: using defaults after load error: %v\n", err)
	}

	eng := engine.New(logger)
	eng.SetGridType(grid.Type(cfg.DefaultGridType))
	eng.SetSoundProfile(audio.SoundProfile(cfg.DefaultSoundProfile))
	eng.SetSoundVolume(cfg.DefaultSoundVolume)
	eng.SetHapticEnabled(cfg.HapticEnabled)
	eng.SetRawMode(cfg.RawMode)
	eng.SetSurfaceTexture(cfg.SurfaceTexture)

	if *enableRealAudio {
		if err := eng.WireRealAudio(); err != nil {
			fmt.Fprintf(os.Stderr, "audio: %v (continuing silently)\n", err)
		}
	}
	if *enableRealHaptics {
		if err := eng.WireRealHaptics(); err != nil {
			fmt.Fprintf(os.Stderr, "haptics: %v (continuing without pulses)\n", err)
		}
	}

	fyneApp := app.NewWithID("ink.sensory.core.demo")
	window := fyneApp.NewWindow("Sensory Ink")

	canvas := newInkCanvas(eng, *width, *height)
	eng.Resize(float64(*width), float64(*height))

	window.SetContent(container.NewBorder(buildToolbar(eng), nil, nil, nil, canvas))
	window.Resize(canvas.target.MinSize())

	stop := make(chan struct{})
	go runFrameLoop(canvas, stop)
	window.SetOnClosed(func() { close(stop) })

	window.ShowAndRun()
}

// runFrameLoop redraws the canvas at 60fps, matching the usual
// per-frame audio push cadence.
func runFrameLoop(canvas *inkCanvas, stop chan struct{}) {
	ticker := time.NewTicker(time.Second / 60)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			canvas.redraw()
		}
	}
}

func buildToolbar(eng *engine.Engine) *widget.Toolbar {
	return widget.NewToolbar(
		widget.NewToolbarAction(nil, func() { eng.SetGridType(grid.Dot) }),
		widget.NewToolbarAction(nil, func() { eng.SetGridType(grid.Square) }),
		widget.NewToolbarAction(nil, func() { eng.SetGridType(grid.None) }),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(nil, func() { eng.SetSoundProfile(audio.Marker) }),
		widget.NewToolbarAction(nil, func() { eng.SetSoundProfile(audio.Pencil) }),
	)
}
