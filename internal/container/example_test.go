package container_test

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/cc2olx/cc2olx-run/internal/container"
)

// ExampleClient_Run demonstrates running the converter with bound paths.
func ExampleClient_Run() {
	ctx := context.Background()

	client, err := container.NewClient()
	if err != nil {
		log.Fatal(err)
	}
	defer client.Close()

	cfg := container.RunConfig{
		Image: "cc2olx",
		User:  container.HostUser(),
		Cmd:   []string{"-i", "/data/6f1e/course.imscc", "-o", "/data/91ab/result"},
		Binds: []string{
			"/home/user/courses:/data/6f1e",
			"/home/user/output:/data/91ab",
		},
		AutoRemove: true,
	}

	status, err := client.Run(ctx, cfg, os.Stdout)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Converter exited with %d\n", status)
}

// ExampleCommandLine demonstrates rendering the equivalent docker command.
func ExampleCommandLine() {
	cfg := container.RunConfig{
		Image:      "cc2olx",
		User:       "1000",
		Cmd:        []string{"-i", "/data/6f1e/course.imscc"},
		Binds:      []string{"/home/user/My Courses:/data/6f1e"},
		AutoRemove: true,
	}

	fmt.Println(container.ShellQuote(container.CommandLine("docker", cfg)))

	// Output:
	// docker run --user 1000 --rm -v '/home/user/My Courses:/data/6f1e' cc2olx -i /data/6f1e/course.imscc
}

// ExampleParseBind demonstrates parsing bind specifications.
func ExampleParseBind() {
	m, err := container.ParseBind("/home/user/courses:/data/6f1e:ro")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%s -> %s (read-only: %v)\n", m.Source, m.Target, m.ReadOnly)

	// Output:
	// /home/user/courses -> /data/6f1e (read-only: true)
}
