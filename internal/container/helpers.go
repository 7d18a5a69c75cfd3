package container

import (
	"os"
	"strconv"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/client"
)

// buildContainerConfig creates a container.Config from RunConfig.
func buildContainerConfig(cfg RunConfig) *container.Config {
	return &container.Config{
		Image:        imageRef(cfg.Image),
		User:         cfg.User,
		Cmd:          cfg.Cmd,
		AttachStdout: true,
		AttachStderr: true,
	}
}

// buildHostConfig creates a container.HostConfig from RunConfig.
func buildHostConfig(cfg RunConfig) *container.HostConfig {
	hostConfig := &container.HostConfig{
		AutoRemove: cfg.AutoRemove,
	}

	if len(cfg.Binds) > 0 {
		hostConfig.Binds = append([]string(nil), cfg.Binds...)
	}

	return hostConfig
}

// waitCondition picks the wait condition matching the removal policy.
// An auto-removed container is only done once it is gone.
func waitCondition(cfg RunConfig) container.WaitCondition {
	if cfg.AutoRemove {
		return container.WaitConditionRemoved
	}
	return container.WaitConditionNextExit
}

// HostUser returns the numeric id of the invoking host user.
func HostUser() string {
	return strconv.Itoa(os.Getuid())
}

// isNotFoundError checks if an error is a "not found" error from Docker.
func isNotFoundError(err error) bool {
	return client.IsErrNotFound(err)
}
