// Command inkbench is a headless CLI that replays a JSON pointer trace
// through internal/engine and writes the resulting raster export, for
// load-testing and cross-checking recognizer behavior without a UI.
//
// The harness follows the usual testrom-style "load input, run headless,
// report" shape, adapted from ROM frame-stepping to pointer-trace replay.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/sensoryink/core/internal/diag"
	"github.com/sensoryink/core/internal/engine"
	"github.com/sensoryink/core/internal/serialize"
)

// traceSample is one line of the input JSON trace array.
type traceSample struct {
	Phase       string  `json:"phase"` // "down" | "move" | "up"
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	Pressure    float64 `json:"pressure"`
	TiltX       float64 `json:"tiltX"`
	TiltY       float64 `json:"tiltY"`
	TimestampMS float64 `json:"timestampMs"`
}

func main() {
	tracePath := flag.String("trace", "", "path to a JSON array of pointer samples")
	outImage := flag.String("out-png", "", "write the raster export to this path")
	outStrokes := flag.String("out-json", "", "write the stroke export to this path")
	width := flag.Int("width", 800, "viewport width")
	height := flag.Int("height", 600, "viewport height")
	flag.Parse()

	if *tracePath == "" {
		fmt.Fprintln(os.Stderr, "usage: inkbench -trace samples.json [-out-png out.png] [-out-json out.json]")
		os.Exit(1)
	}

	data, err := os.ReadFile(*tracePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "reading trace: %v\n", err)
		os.Exit(1)
	}

	var samples []traceSample
	if err := json.Unmarshal(data, &samples); err != nil {
		fmt.Fprintf(os.Stderr, "parsing trace: %v\n", err)
		os.Exit(1)
	}

	logger := diag.NewLogger(4096)
	defer logger.Close()

	eng := engine.New(logger)
	eng.Resize(float64(*width), float64(*height))

	for _, s := range samples {
		switch s.Phase {
		case "down":
			eng.StartStroke(s.X, s.Y, s.Pressure, s.TiltX, s.TiltY, s.TimestampMS)
		case "move":
			eng.AddPoint(s.X, s.Y, s.Pressure, s.TiltX, s.TiltY, s.TimestampMS)
		case "up":
			eng.EndStroke()
		}
	}

	fmt.Printf("replayed %d samples, %d strokes committed\n", len(samples), len(eng.Document.Strokes))

	if *outImage != "" {
		png, err := eng.ExportImage()
		if err != nil {
			fmt.Fprintf(os.Stderr, "export image: %v\n", err)
			os.Exit(1)
		}
		if err := os.WriteFile(*outImage, png, 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "write %s: %v\n", *outImage, err)
			os.Exit(1)
		}
	}

	if *outStrokes != "" {
		drawing := eng.ExportStrokes()
		data, err := serialize.Marshal(drawing)
		if err != nil {
			fmt.Fprintf(os.Stderr, "marshal strokes: %v\n", err)
			os.Exit(1)
		}
		if err := os.WriteFile(*outStrokes, data, 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "write %s: %v\n", *outStrokes, err)
			os.Exit(1)
		}
	}
}
