package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/cc2olx/cc2olx-run/internal/cli"
	"github.com/cc2olx/cc2olx-run/internal/config"
	"github.com/cc2olx/cc2olx-run/internal/container"
	"github.com/cc2olx/cc2olx-run/internal/pathargs"
	"github.com/cc2olx/cc2olx-run/internal/ui"
)

const version = "1.0.0"

// stdout receives the converter output and dry-run commands.
var stdout io.Writer = os.Stdout

func main() {
	args, err := cli.Parse(os.Args)
	if err != nil {
		if errors.Is(err, cli.ErrShowHelp) {
			showHelp()
			os.Exit(0)
		}
		if errors.Is(err, cli.ErrShowVersion) {
			fmt.Printf("cc2olx-run %s\n", version)
			os.Exit(0)
		}
		ui.Fail("Error parsing arguments: %v", err)
		ui.Info("Run %s for usage information", ui.Bold("cc2olx-run --help"))
		os.Exit(1)
	}

	os.Exit(run(context.Background(), args))
}

// run executes one conversion and returns the process exit status.
func run(ctx context.Context, args *cli.Args) int {
	ui.Verbose = args.Verbose

	cfg, err := config.Load(args.ConfigPath)
	if err != nil {
		ui.Fail("Failed to load configuration: %v", err)
		return 1
	}
	if args.Image != "" {
		cfg.Image = args.Image
	}

	runCfg, err := buildRunConfig(cfg, args.ConverterArgs)
	if err != nil {
		ui.Fail("%v", err)
		return 1
	}

	if args.DryRun {
		fmt.Fprintln(stdout, container.ShellQuote(container.CommandLine(cfg.DockerBin, runCfg)))
		return 0
	}

	status, err := launch(ctx, cfg, runCfg, args.Build)
	if err != nil {
		ui.Fail("%v", err)
		return 1
	}
	if status != 0 {
		ui.Fail("%v", &container.ExitError{Code: status})
	}
	return status
}

// buildRunConfig rewrites the converter arguments and turns the result into
// a container run configuration.
func buildRunConfig(cfg config.Config, converterArgs []string) (container.RunConfig, error) {
	planner := pathargs.NewPlanner(cfg.DataRoot, cfg.DefaultOutput)

	plan, err := planner.Build(converterArgs)
	if err != nil {
		return container.RunConfig{}, fmt.Errorf("failed to prepare path arguments: %w", err)
	}

	for _, m := range plan.Mappings {
		ui.Debug("%s → %s", m.HostPath, m.TargetPath)
	}

	return container.RunConfig{
		Image:      cfg.Image,
		User:       container.HostUser(),
		Cmd:        plan.Args,
		Binds:      plan.BindSpecs(),
		AutoRemove: true,
	}, nil
}

func launch(ctx context.Context, cfg config.Config, runCfg container.RunConfig, forceBuild bool) (int, error) {
	dockerClient, err := container.NewClient()
	if err != nil {
		return 0, fmt.Errorf("failed to connect to Docker: %w", err)
	}
	defer dockerClient.Close()

	if err := dockerClient.Ping(ctx); err != nil {
		return 0, err
	}

	ui.Header()
	if err := ensureImage(ctx, dockerClient, cfg, forceBuild); err != nil {
		ui.Footer()
		return 0, err
	}
	ui.Debug("%s", container.ShellQuote(container.CommandLine(cfg.DockerBin, runCfg)))
	ui.Footer()

	ui.Banner(stdout)
	return dockerClient.Run(ctx, runCfg, stdout)
}

func ensureImage(ctx context.Context, dockerClient *container.Client, cfg config.Config, forceBuild bool) error {
	if !forceBuild {
		exists, err := dockerClient.ImageExists(ctx, cfg.Image)
		if err != nil {
			ui.Warn("Failed to check image existence: %v", err)
		}
		if exists {
			ui.Info("Using image: %s", cfg.Image)
			return nil
		}

		ui.Warn("Converter image %s not found", ui.Bold(cfg.Image))
		if !ui.AskYesNo("Build it now?", true) {
			return fmt.Errorf("image %s is required; build it with %s", cfg.Image, ui.Bold("cc2olx-run --build"))
		}
	}

	ui.Info("Building image %s from cc2olx branch %s", cfg.Image, cfg.Branch)

	buildContext, err := container.BuildContext()
	if err != nil {
		return fmt.Errorf("failed to create build context: %w", err)
	}

	opts := container.BuildOptions(cfg.Image, cfg.Branch, forceBuild)
	if err := dockerClient.BuildImage(ctx, buildContext, opts, ui.Out); err != nil {
		return err
	}

	ui.Success("Image built: %s", cfg.Image)
	return nil
}

func showHelp() {
	configPath, err := config.Path()
	if err != nil {
		configPath = filepath.Join("~", ".config", "cc2olx-run", "config.toml")
	}

	help := fmt.Sprintf(`cc2olx-run - run the Common Cartridge to OLX converter in Docker

USAGE:
    cc2olx-run [OPTIONS] [CC2OLX_ARGS...]

Path arguments (-i/--inputs, -o/--output, -f/--link_file, -p/--passport-file,
--logs_dir) are resolved on the host and bind mounted into the container.
When no output is given, output/result is used.

OPTIONS:
    --image NAME           Converter image to run (default: cc2olx)
    --config PATH          Configuration file (default: %s)
    --build                Rebuild the converter image before running
    --dry-run              Print the docker command instead of running it
    --verbose              Show how each path argument was remapped
    --                     Pass all remaining arguments to the converter
    --help                 Show this help message
    --version              Show version information

EXAMPLES:
    # Convert a course into ./output
    cc2olx-run -i ~/courses/english_b1.imscc

    # Convert several cartridges with a link map
    cc2olx-run -i a.imscc b.imscc -f links.csv -o converted/result

    # Show the docker command without running it
    cc2olx-run --dry-run -i course.imscc

ENVIRONMENT VARIABLES:
    CC2OLX_IMAGE            Converter image name
    CC2OLX_BRANCH           cc2olx branch used when building the image
    CC2OLX_DATA_ROOT        Container directory for bound paths (default: /data)
    CC2OLX_DEFAULT_OUTPUT   Output used when -o is not given
    CC2OLX_DOCKER           Docker executable shown by --dry-run
`, configPath)
	fmt.Print(help)
}
