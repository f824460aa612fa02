package config

import (
	"errors"
	"fmt"
	"runtime"
	"strconv"
	"strings"
)

// ErrUsage marks argument errors; callers print the usage text and exit
// non-zero when a returned error wraps it.
var ErrUsage = errors.New("usage error")

// Config holds the fully resolved run settings.
type Config struct {
	Prefix    string // input filename prefix (positional 1)
	Extension string // input filename extension (positional 2)
	AASamples int    // 1 or 5
	Size      int    // output side length
	Output    string // output path
	Workers   int    // parallel row workers
	ShowHelp  bool   // -h/-help was given
}

// ParseArgs scans the argument list (without the program name). Options may
// interleave with positionals; a literal "-" marks everything after it as
// positional regardless of leading dashes. Exactly two positionals are
// required: the input prefix and extension.
func ParseArgs(args []string) (Config, error) {
	cfg := Config{
		AASamples: 1,
		Size:      1024,
		Workers:   runtime.NumCPU(),
	}

	var positional []string

	for i := 0; i < len(args); i++ {
		opt := args[i]
		if opt == "" || opt[0] != '-' {
			positional = append(positional, opt)
			continue
		}

		if opt == "-" {
			positional = append(positional, args[i+1:]...)
			break
		}

		takeValue := func() (string, error) {
			i++
			if i >= len(args) {
				return "", fmt.Errorf("config: option %s needs a value: %w", opt, ErrUsage)
			}
			return args[i], nil
		}

		switch opt {
		case "-aa":
			val, err := takeValue()
			if err != nil {
				return cfg, err
			}
			n, err := strconv.Atoi(val)
			if err != nil || (n != 1 && n != 5) {
				return cfg, fmt.Errorf("config: invalid AA sample pattern %q: %w", val, ErrUsage)
			}
			cfg.AASamples = n
		case "-size":
			val, err := takeValue()
			if err != nil {
				return cfg, err
			}
			n, err := strconv.Atoi(val)
			if err != nil || n <= 0 {
				return cfg, fmt.Errorf("config: invalid output size %q: %w", val, ErrUsage)
			}
			cfg.Size = n
		case "-o":
			val, err := takeValue()
			if err != nil {
				return cfg, err
			}
			cfg.Output = val
		case "-workers":
			val, err := takeValue()
			if err != nil {
				return cfg, err
			}
			n, err := strconv.Atoi(val)
			if err != nil || n <= 0 {
				return cfg, fmt.Errorf("config: invalid worker count %q: %w", val, ErrUsage)
			}
			cfg.Workers = n
		case "-h", "-help":
			cfg.ShowHelp = true
			return cfg, nil
		default:
			return cfg, fmt.Errorf("config: unknown option %s: %w", opt, ErrUsage)
		}
	}

	if len(positional) != 2 {
		return cfg, fmt.Errorf("config: need exactly 2 positional arguments, got %d: %w",
			len(positional), ErrUsage)
	}
	cfg.Prefix = positional[0]
	cfg.Extension = strings.TrimPrefix(positional[1], ".")

	if cfg.Output == "" {
		cfg.Output = cfg.Prefix + "_spheremap.webp"
	}

	return cfg, nil
}
