// Command billiards runs a billiard scenario read as JSON from a file argument
// (or stdin) and writes the info points of every ball as JSON to stdout.
//
// Usage:
//
//	billiards [-v] [-svg out.svg] [-png out.png] [-size 800] [scenario.json]
//
// A scenario that omits a field uses its default: a single Euclidean ball
// starting in the middle of the first edge of a square at 45°, run for 100
// steps. For example:
//
//	{"shape": "ellipse", "bezier": true, "law": "symplectic", "balls": 3, "steps": 500}
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"image/color"
	"io"
	"log/slog"
	"os"

	"honnef.co/go/billiards"
	"honnef.co/go/billiards/internal/render"
)

var (
	fVerbose = flag.Bool("v", false, "log debug messages, such as stalled steps")
	fSVG     = flag.String("svg", "", "write an SVG snapshot to `file`")
	fPNG     = flag.String("png", "", "write a PNG snapshot to `file`")
	fSize    = flag.Int("size", 800, "width and height of snapshots in pixels")
)

func main() {
	flag.Parse()

	level := slog.LevelInfo
	if *fVerbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	billiards.SetLogger(logger)

	if err := run(logger); err != nil {
		logger.Error("failed", "err", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	in := io.Reader(os.Stdin)
	if flag.NArg() > 0 {
		f, err := os.Open(flag.Arg(0))
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}
	scn, err := ReadScenario(in)
	if err != nil {
		return err
	}
	sim, err := scn.Simulation()
	if err != nil {
		return err
	}
	logger.Info("running scenario",
		"table", sim.Table(), "law", scn.Law, "balls", len(sim.Balls()), "steps", scn.Steps)

	rep := Run(sim, scn.Steps)
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rep); err != nil {
		return err
	}

	if *fSVG == "" && *fPNG == "" {
		return nil
	}
	opts := render.DefaultOptions()
	opts.Width, opts.Height = *fSize, *fSize
	trajs := trajectories(sim)
	if *fSVG != "" {
		if err := writeFile(*fSVG, func(w io.Writer) error {
			return render.WriteSVG(w, sim.Table(), trajs, opts)
		}); err != nil {
			return err
		}
		logger.Info("wrote snapshot", "file", *fSVG)
	}
	if *fPNG != "" {
		if err := writeFile(*fPNG, func(w io.Writer) error {
			return render.WritePNG(w, sim.Table(), trajs, opts)
		}); err != nil {
			return err
		}
		logger.Info("wrote snapshot", "file", *fPNG)
	}
	return nil
}

// trajectories returns the trajectories of all balls, colored with the balls'
// colors.
func trajectories(sim *billiards.Simulation) []render.Trajectory {
	balls := sim.Balls()
	hex := make([]string, len(balls))
	for i, b := range balls {
		hex[i] = b.Color()
	}
	colors := render.Colors(hex)
	out := make([]render.Trajectory, len(balls))
	for i, b := range balls {
		out[i] = render.BallTrajectory(b, color.Color(colors[i]))
	}
	return out
}

func writeFile(name string, fn func(w io.Writer) error) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := fn(f); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", name, err)
	}
	return f.Close()
}
