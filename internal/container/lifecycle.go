package container

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/pkg/stdcopy"

	"github.com/cc2olx/cc2olx-run/internal/ui"
)

// stopGrace is how long the converter gets to exit after SIGTERM before
// docker kills it.
const stopGrace = 10 * time.Second

// RunConfig holds the configuration for running the converter container.
type RunConfig struct {
	Name       string
	Image      string
	User       string
	Cmd        []string
	Binds      []string
	AutoRemove bool
}

// ExitError carries a non-zero converter exit status.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("converter exited with status %d", e.Code)
}

// Run creates and starts the container, relays its output to out and returns
// its exit status. An interrupt while the container runs stops it; the exit
// status is still awaited afterwards.
func (c *Client) Run(ctx context.Context, cfg RunConfig, out io.Writer) (int, error) {
	if err := ValidateBinds(cfg.Binds); err != nil {
		return 0, err
	}

	resp, err := c.api.ContainerCreate(
		ctx,
		buildContainerConfig(cfg),
		buildHostConfig(cfg),
		nil,
		nil,
		cfg.Name,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to create container: %w", err)
	}
	id := resp.ID

	hijackedResp, err := c.api.ContainerAttach(ctx, id, container.AttachOptions{
		Stream: true,
		Stdout: true,
		Stderr: true,
	})
	if err != nil {
		c.discard(id)
		return 0, fmt.Errorf("failed to attach to container: %w", err)
	}
	defer hijackedResp.Close()

	// Registered before start so a fast exit is not missed.
	waitCh, errCh := c.api.ContainerWait(ctx, id, waitCondition(cfg))

	if err := c.api.ContainerStart(ctx, id, container.StartOptions{}); err != nil {
		c.discard(id)
		return 0, fmt.Errorf("failed to start container: %w", err)
	}

	sigCh, stopNotify := c.subscribeInterrupts()
	defer stopNotify()

	done := make(chan struct{})
	defer close(done)
	go c.stopOnInterrupt(id, sigCh, done)

	if _, err := stdcopy.StdCopy(out, out, hijackedResp.Reader); err != nil {
		ui.Warn("Lost converter output: %v", err)
	}

	select {
	case result := <-waitCh:
		if result.Error != nil {
			return 0, fmt.Errorf("failed to wait for container: %s", result.Error.Message)
		}
		return int(result.StatusCode), nil
	case err := <-errCh:
		return 0, fmt.Errorf("failed to wait for container: %w", err)
	}
}

func (c *Client) subscribeInterrupts() (<-chan os.Signal, func()) {
	if c.interrupts == nil {
		return notifyInterrupts()
	}
	return c.interrupts()
}

// stopOnInterrupt terminates the container on the first signal received
// before done is closed.
func (c *Client) stopOnInterrupt(id string, sigCh <-chan os.Signal, done <-chan struct{}) {
	select {
	case <-done:
		return
	case sig := <-sigCh:
		ui.Warn("Received %s, stopping the converter", sig)

		ctx, cancel := context.WithTimeout(context.Background(), 2*stopGrace)
		defer cancel()

		timeout := int(stopGrace.Seconds())
		err := c.api.ContainerStop(ctx, id, container.StopOptions{Signal: "SIGTERM", Timeout: &timeout})
		if err != nil && !isNotFoundError(err) {
			ui.Warn("Failed to stop container: %v", err)
		}
	}
}

// Remove removes a container.
func (c *Client) Remove(ctx context.Context, nameOrID string, force bool) error {
	options := container.RemoveOptions{
		Force:         force,
		RemoveVolumes: false,
	}

	err := c.api.ContainerRemove(ctx, nameOrID, options)
	if err != nil && !isNotFoundError(err) {
		return fmt.Errorf("failed to remove container: %w", err)
	}

	return nil
}

// discard removes a container that was created but never ran.
func (c *Client) discard(id string) {
	ctx, cancel := context.WithTimeout(context.Background(), stopGrace)
	defer cancel()

	if err := c.Remove(ctx, id, true); err != nil {
		ui.Warn("%v", err)
	}
}
