//go:build e2e

package testfs

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/client"
	"github.com/docker/docker/pkg/stdcopy"
)

// -----------------------------------------------------------------------------
// Container - Docker sandbox for running the fillfile binary
// -----------------------------------------------------------------------------

// Container is a long-running Docker container that commands are executed in.
type Container struct {
	client *client.Client
	id     string
}

// StartContainer pulls the image if needed, then creates and starts the container.
//
// The caller must call Close when done.
func StartContainer(ctx context.Context, cfg *container.Config, hostCfg *container.HostConfig) (*Container, error) {
	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return nil, fmt.Errorf("create docker client: %w", err)
	}

	if err := pullImage(ctx, cli, cfg.Image); err != nil {
		cli.Close()
		return nil, err
	}

	resp, err := cli.ContainerCreate(ctx, cfg, hostCfg, nil, nil, "")
	if err != nil {
		cli.Close()
		return nil, fmt.Errorf("create container: %w", err)
	}

	if err := cli.ContainerStart(ctx, resp.ID, container.StartOptions{}); err != nil {
		cli.Close()
		return nil, fmt.Errorf("start container: %w", err)
	}

	return &Container{client: cli, id: resp.ID}, nil
}

// Exec runs cmd inside the container and captures its output and exit code.
func (c *Container) Exec(ctx context.Context, cmd ...string) (*RunResult, error) {
	execResp, err := c.client.ContainerExecCreate(ctx, c.id, container.ExecOptions{
		Cmd:          cmd,
		AttachStdout: true,
		AttachStderr: true,
	})
	if err != nil {
		return nil, fmt.Errorf("exec create: %w", err)
	}

	hijack, err := c.client.ContainerExecAttach(ctx, execResp.ID, container.ExecStartOptions{})
	if err != nil {
		return nil, fmt.Errorf("exec attach: %w", err)
	}
	defer hijack.Close()

	var outBuf, errBuf bytes.Buffer
	if _, err := stdcopy.StdCopy(&outBuf, &errBuf, hijack.Reader); err != nil {
		return nil, fmt.Errorf("read exec output: %w", err)
	}

	inspect, err := c.client.ContainerExecInspect(ctx, execResp.ID)
	if err != nil {
		return nil, fmt.Errorf("exec inspect: %w", err)
	}

	return &RunResult{
		ExitCode: inspect.ExitCode,
		Stdout:   outBuf.String(),
		Stderr:   errBuf.String(),
	}, nil
}

// Close stops the container. It is removed if AutoRemove was set.
func (c *Container) Close(ctx context.Context) error {
	if c.client == nil {
		return nil
	}
	defer c.client.Close()
	return c.client.ContainerStop(ctx, c.id, container.StopOptions{})
}

// pullImage pulls imageName, using the local cache when present.
func pullImage(ctx context.Context, cli *client.Client, imageName string) error {
	reader, err := cli.ImagePull(ctx, imageName, image.PullOptions{})
	if err != nil {
		return fmt.Errorf("pull image %s: %w", imageName, err)
	}
	defer reader.Close()
	_, _ = io.Copy(io.Discard, reader)
	return nil
}
