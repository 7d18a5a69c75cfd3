// Package cli provides command-line argument parsing for cc2olx-run.
//
// Only a handful of flags belong to cc2olx-run itself; everything else is
// handed to the converter untouched and in order:
//   - --image: Converter image to run (overrides config)
//   - --config: Path to a TOML config file
//   - --build: Build the converter image before running
//   - --dry-run: Print the docker command instead of running it
//   - --verbose: Print path remapping details
//   - --: Pass every following argument to the converter
//
// Example usage:
//
//	args, err := cli.Parse(os.Args)
//	if errors.Is(err, cli.ErrShowHelp) {
//	    showHelp()
//	    os.Exit(0)
//	}
//
//	plan, err := planner.Build(args.ConverterArgs)
package cli
