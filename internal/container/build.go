package container

import (
	"archive/tar"
	"bytes"
	_ "embed"
	"io"

	"github.com/docker/docker/api/types"
)

//go:embed assets/Dockerfile
var converterDockerfile []byte

// BranchBuildArg names the build argument selecting the cc2olx git branch.
const BranchBuildArg = "CC2OLX_BRANCH"

// BuildContext returns a tar build context holding the converter Dockerfile.
func BuildContext() (io.Reader, error) {
	var buf bytes.Buffer
	tw := tar.NewWriter(&buf)

	header := &tar.Header{
		Name: "Dockerfile",
		Size: int64(len(converterDockerfile)),
		Mode: 0644,
	}

	if err := tw.WriteHeader(header); err != nil {
		return nil, err
	}

	if _, err := tw.Write(converterDockerfile); err != nil {
		return nil, err
	}

	if err := tw.Close(); err != nil {
		return nil, err
	}

	return &buf, nil
}

// BuildOptions returns the options for building imageName from the given
// cc2olx branch.
func BuildOptions(imageName, branch string, noCache bool) types.ImageBuildOptions {
	return types.ImageBuildOptions{
		Tags:       []string{imageRef(imageName)},
		Dockerfile: "Dockerfile",
		Remove:     true,
		NoCache:    noCache,
		BuildArgs: map[string]*string{
			BranchBuildArg: &branch,
		},
	}
}
