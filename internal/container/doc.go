// Package container handles Docker operations for running the converter.
//
// The package provides three main components:
//
// 1. Docker Client Wrapper (docker.go)
//    - Simplified interface to Docker SDK
//    - Daemon ping, image existence check and image build
//
// 2. Container Lifecycle (lifecycle.go)
//    - Create, attach, start and wait for the converter container
//    - Output relay with stdout/stderr demultiplexing
//    - Interrupt forwarding: SIGINT/SIGTERM stop the container, and its
//      exit status is still collected
//
// 3. Bind Management (volumes.go)
//    - Parsing and validation of "source:target" bind specifications
//    - Rendering of the equivalent docker CLI command line
//
// Basic usage:
//
//	client, err := container.NewClient()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	cfg := container.RunConfig{
//	    Image:      "cc2olx",
//	    User:       container.HostUser(),
//	    Cmd:        []string{"-i", "/data/7d1c.../course.imscc"},
//	    Binds:      []string{"/home/user/courses:/data/7d1c..."},
//	    AutoRemove: true,
//	}
//
//	status, err := client.Run(ctx, cfg, os.Stdout)
//
// Building the converter image:
//
//	buildContext, err := container.BuildContext()
//	opts := container.BuildOptions("cc2olx", "master", false)
//	err = client.BuildImage(ctx, buildContext, opts, os.Stderr)
package container
