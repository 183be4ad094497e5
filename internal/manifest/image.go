package manifest

import (
	"archive/tar"
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/network"
	"github.com/docker/docker/client"
	ocispec "github.com/opencontainers/image-spec/specs-go/v1"
)

// ContainerAPI is the slice of the Docker client used to copy a manifest
// out of a template image.
type ContainerAPI interface {
	ContainerCreate(ctx context.Context, config *container.Config, hostConfig *container.HostConfig, networkingConfig *network.NetworkingConfig, platform *ocispec.Platform, containerName string) (container.CreateResponse, error)
	CopyFromContainer(ctx context.Context, containerID, srcPath string) (io.ReadCloser, types.ContainerPathStat, error)
	ContainerRemove(ctx context.Context, containerID string, options container.RemoveOptions) error
}

// FromImage reads the manifest at manifestPath inside imageRef using the
// Docker daemon from the environment.
func FromImage(ctx context.Context, imageRef, manifestPath string) (*Manifest, error) {
	docker, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return nil, fmt.Errorf("create docker client: %w", err)
	}
	defer docker.Close()

	return FromImageWith(ctx, docker, imageRef, manifestPath)
}

// FromImageWith creates a temporary container (never started), copies the
// manifest file out of it, and removes the container again.
func FromImageWith(ctx context.Context, api ContainerAPI, imageRef, manifestPath string) (*Manifest, error) {
	resp, err := api.ContainerCreate(ctx, &container.Config{Image: imageRef}, nil, nil, nil, "")
	if err != nil {
		return nil, fmt.Errorf("create temp container from %q: %w", imageRef, err)
	}
	defer api.ContainerRemove(context.WithoutCancel(ctx), resp.ID, container.RemoveOptions{Force: true})

	reader, _, err := api.CopyFromContainer(ctx, resp.ID, manifestPath)
	if err != nil {
		return nil, fmt.Errorf("copy %q from %q: %w", manifestPath, imageRef, err)
	}
	defer reader.Close()

	content, err := firstRegularFile(reader)
	if err != nil {
		return nil, fmt.Errorf("read %q from %q: %w", manifestPath, imageRef, err)
	}

	m, err := Parse(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("%s:%s: %w", imageRef, manifestPath, err)
	}
	return m, nil
}

func firstRegularFile(r io.Reader) ([]byte, error) {
	tr := tar.NewReader(r)
	for {
		header, err := tr.Next()
		if err == io.EOF {
			return nil, fmt.Errorf("no regular file in tar stream")
		}
		if err != nil {
			return nil, fmt.Errorf("read tar: %w", err)
		}
		if header.Typeflag == tar.TypeReg {
			return io.ReadAll(tr)
		}
	}
}
