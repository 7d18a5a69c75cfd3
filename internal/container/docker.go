// Package container launches the converter in Docker.
package container

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/client"
	"github.com/docker/docker/pkg/jsonmessage"
)

// Client wraps the Docker client with the operations cc2olx-run needs.
type Client struct {
	api client.APIClient

	// interrupts subscribes to the signals that stop a running converter.
	interrupts func() (<-chan os.Signal, func())
}

// NewClient creates a new Docker client wrapper.
func NewClient() (*Client, error) {
	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return nil, err
	}
	return &Client{api: cli, interrupts: notifyInterrupts}, nil
}

// Close closes the underlying Docker client.
func (c *Client) Close() error {
	return c.api.Close()
}

// Ping checks that the Docker daemon is reachable.
func (c *Client) Ping(ctx context.Context) error {
	if _, err := c.api.Ping(ctx); err != nil {
		return fmt.Errorf("docker daemon is not reachable: %w", err)
	}
	return nil
}

// ImageExists checks if an image exists locally.
func (c *Client) ImageExists(ctx context.Context, imageName string) (bool, error) {
	_, _, err := c.api.ImageInspectWithRaw(ctx, imageRef(imageName))
	if err != nil {
		if isNotFoundError(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// BuildImage builds a Docker image, streaming progress to out.
func (c *Client) BuildImage(ctx context.Context, buildContext io.Reader, opts types.ImageBuildOptions, out io.Writer) error {
	resp, err := c.api.ImageBuild(ctx, buildContext, opts)
	if err != nil {
		return fmt.Errorf("failed to build image: %w", err)
	}
	defer resp.Body.Close()

	if err := jsonmessage.DisplayJSONMessagesStream(resp.Body, out, 0, false, nil); err != nil {
		return fmt.Errorf("failed to build image: %w", err)
	}
	return nil
}

// imageRef adds the latest tag to an untagged image name.
func imageRef(imageName string) string {
	if strings.Contains(imageName, "@") {
		return imageName
	}
	if strings.Contains(imageName[strings.LastIndex(imageName, "/")+1:], ":") {
		return imageName
	}
	return imageName + ":latest"
}

func notifyInterrupts() (<-chan os.Signal, func()) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	return sigCh, func() { signal.Stop(sigCh) }
}
