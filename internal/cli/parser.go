// Package cli handles command-line argument parsing.
package cli

import (
	"errors"
	"fmt"
)

var (
	// ErrShowHelp is returned when --help is given.
	ErrShowHelp = errors.New("show_help")
	// ErrShowVersion is returned when --version is given.
	ErrShowVersion = errors.New("show_version")
)

// Args represents parsed command-line arguments.
type Args struct {
	// Wrapper settings
	Image      string
	ConfigPath string

	// Mode flags
	Build   bool
	DryRun  bool
	Verbose bool

	// Remaining arguments to pass to the converter
	ConverterArgs []string
}

// Parse parses command-line arguments into an Args struct. Anything that is
// not a wrapper flag is passed through to the converter in order; a literal
// "--" passes everything after it through.
func Parse(osArgs []string) (*Args, error) {
	args := &Args{
		ConverterArgs: []string{},
	}

	i := 1 // Skip program name
	for i < len(osArgs) {
		arg := osArgs[i]

		switch arg {
		case "--help":
			return nil, ErrShowHelp

		case "--version":
			return nil, ErrShowVersion

		case "--image":
			if i+1 >= len(osArgs) {
				return nil, fmt.Errorf("--image requires an argument")
			}
			args.Image = osArgs[i+1]
			i += 2

		case "--config":
			if i+1 >= len(osArgs) {
				return nil, fmt.Errorf("--config requires a path argument")
			}
			args.ConfigPath = osArgs[i+1]
			i += 2

		case "--build":
			args.Build = true
			i++

		case "--dry-run":
			args.DryRun = true
			i++

		case "--verbose":
			args.Verbose = true
			i++

		case "--":
			args.ConverterArgs = append(args.ConverterArgs, osArgs[i+1:]...)
			return args, nil

		default:
			// Converter argument
			args.ConverterArgs = append(args.ConverterArgs, arg)
			i++
		}
	}

	return args, nil
}
