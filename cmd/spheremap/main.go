package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"spheremap-tool/internal/config"
	"spheremap-tool/internal/cubemap"
	"spheremap-tool/internal/imgio"
	"spheremap-tool/internal/projection"
	"spheremap-tool/internal/render"
)

const usage = `spheremap - cubemap to spheremap converter

Usage:
  spheremap [opts] [-] input_prefix input_extension

Reads the six cube face images <prefix>_right.<ext>, _left, _top, _bottom,
_front, _back and writes a single square spheremap image.

Available options:
  -aa 1|5          Number of AA samples per pixel. (Default: 1)
  -size <int>      Output image size. (Default: 1024)
  -o <filename>    Output file; format chosen by extension:
                   .webp, .png, .bmp, .jpg. (Default: "<prefix>_spheremap.webp")
  -workers <int>   Parallel row workers. (Default: number of CPUs)
  -h / -help       Print this help text.
`

func main() {
	cfg, err := config.ParseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
		if errors.Is(err, config.ErrUsage) {
			fmt.Fprint(os.Stderr, usage)
		}
		os.Exit(1)
	}
	if cfg.ShowHelp {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(0)
	}

	if !imgio.SupportedOutput(cfg.Output) {
		fmt.Fprintf(os.Stderr, "Error: unsupported output format: %s\n\n", cfg.Output)
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	pattern, ok := projection.PatternForSamples(cfg.AASamples)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: invalid AA sample pattern: %d\n", cfg.AASamples)
		os.Exit(1)
	}

	cm, err := cubemap.LoadCubemap(cfg.Prefix, cfg.Extension)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Rendering %dx%d spheremap (AA: %d, workers: %d)\n",
		cfg.Size, cfg.Size, cfg.AASamples, cfg.Workers)

	start := time.Now()
	out := render.Render(cm, cfg.Size, pattern, cfg.Workers)
	fmt.Printf("Done in %.1fs\n", time.Since(start).Seconds())

	if err := imgio.Save(cfg.Output, out); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Output: %s\n", cfg.Output)
}
