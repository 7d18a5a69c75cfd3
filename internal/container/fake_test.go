package container

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"net"
	"os"
	"testing"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/network"
	"github.com/docker/docker/client"
	"github.com/docker/docker/pkg/stdcopy"
	ocispec "github.com/opencontainers/image-spec/specs-go/v1"
)

// fakeAPI implements the Docker calls the Client makes. Calls it does not
// override panic through the nil embedded interface.
type fakeAPI struct {
	client.APIClient

	created    *container.Config
	hostConfig *container.HostConfig
	condition  container.WaitCondition
	started    bool
	stopped    *container.StopOptions
	removed    []string

	output    io.Reader
	waitCh    chan container.WaitResponse
	errCh     chan error
	startErr  error
	onStop    func()
	inspect   error
	buildBody string
	built     *types.ImageBuildOptions
}

func newFakeAPI(output io.Reader) *fakeAPI {
	return &fakeAPI{
		output: output,
		waitCh: make(chan container.WaitResponse, 1),
		errCh:  make(chan error, 1),
	}
}

func (f *fakeAPI) Close() error { return nil }

func (f *fakeAPI) Ping(context.Context) (types.Ping, error) {
	return types.Ping{APIVersion: "1.47"}, nil
}

func (f *fakeAPI) ContainerCreate(_ context.Context, config *container.Config, hostConfig *container.HostConfig, _ *network.NetworkingConfig, _ *ocispec.Platform, _ string) (container.CreateResponse, error) {
	f.created = config
	f.hostConfig = hostConfig
	return container.CreateResponse{ID: "c0ffee"}, nil
}

func (f *fakeAPI) ContainerAttach(context.Context, string, container.AttachOptions) (types.HijackedResponse, error) {
	local, remote := net.Pipe()
	go func() { _ = remote.Close() }()
	return types.HijackedResponse{Conn: local, Reader: bufio.NewReader(f.output)}, nil
}

func (f *fakeAPI) ContainerWait(_ context.Context, _ string, condition container.WaitCondition) (<-chan container.WaitResponse, <-chan error) {
	f.condition = condition
	return f.waitCh, f.errCh
}

func (f *fakeAPI) ContainerStart(context.Context, string, container.StartOptions) error {
	f.started = f.startErr == nil
	return f.startErr
}

func (f *fakeAPI) ContainerStop(_ context.Context, _ string, options container.StopOptions) error {
	f.stopped = &options
	if f.onStop != nil {
		f.onStop()
	}
	return nil
}

func (f *fakeAPI) ContainerRemove(_ context.Context, id string, _ container.RemoveOptions) error {
	f.removed = append(f.removed, id)
	return nil
}

func (f *fakeAPI) ImageInspectWithRaw(context.Context, string) (types.ImageInspect, []byte, error) {
	return types.ImageInspect{}, nil, f.inspect
}

func (f *fakeAPI) ImageBuild(_ context.Context, _ io.Reader, options types.ImageBuildOptions) (types.ImageBuildResponse, error) {
	f.built = &options
	return types.ImageBuildResponse{Body: io.NopCloser(bytes.NewBufferString(f.buildBody))}, nil
}

// muxed encodes stdout and stderr the way an attached non-TTY container does.
func muxed(t *testing.T, stdout, stderr string) io.Reader {
	t.Helper()

	var buf bytes.Buffer
	if _, err := stdcopy.NewStdWriter(&buf, stdcopy.Stdout).Write([]byte(stdout)); err != nil {
		t.Fatal(err)
	}
	if _, err := stdcopy.NewStdWriter(&buf, stdcopy.Stderr).Write([]byte(stderr)); err != nil {
		t.Fatal(err)
	}
	return &buf
}

// noInterrupts never delivers a signal.
func noInterrupts() (<-chan os.Signal, func()) {
	return make(chan os.Signal), func() {}
}
