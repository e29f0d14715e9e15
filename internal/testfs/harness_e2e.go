//go:build e2e

package testfs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/docker/docker/api/types/container"
)

const (
	// baseImage is the Docker image used for E2E tests.
	baseImage = "alpine:3.21"

	binaryName = "fillfile"
	binaryPath = "/usr/local/bin/" + binaryName

	// WritableDir is a tmpfs mount inside the container.
	WritableDir = "/data"
	// ReadOnlyDir lives on the read-only root filesystem.
	ReadOnlyDir = "/srv"
)

// Harness owns one container for the lifetime of a test.
type Harness struct {
	t         *testing.T
	ctx       context.Context
	container *Container
}

// New starts a container with the fillfile binary bind-mounted read-only.
// It is stopped and removed through t.Cleanup.
func New(t *testing.T) *Harness {
	t.Helper()

	cfg, hostCfg, err := containerConfig()
	if err != nil {
		t.Fatalf("failed to build container config: %v", err)
	}

	ctx := context.Background()
	c, err := StartContainer(ctx, cfg, hostCfg)
	if err != nil {
		t.Fatalf("failed to start container: %v", err)
	}

	h := &Harness{t: t, ctx: ctx, container: c}
	t.Cleanup(h.Cleanup)
	return h
}

// Run executes fillfile inside the container with the given arguments.
func (h *Harness) Run(args ...string) *RunResult {
	h.t.Helper()

	res, err := h.container.Exec(h.ctx, append([]string{binaryPath}, args...)...)
	if err != nil {
		h.t.Fatalf("failed to run %s: %v", binaryName, err)
	}
	return res
}

// FileSize returns the size of path inside the container, or false if it does not exist.
func (h *Harness) FileSize(path string) (int64, bool) {
	h.t.Helper()

	res, err := h.container.Exec(h.ctx, "stat", "-c", "%s", path)
	if err != nil {
		h.t.Fatalf("failed to stat %s: %v", path, err)
	}
	if res.ExitCode != 0 {
		return 0, false
	}

	n, err := strconv.ParseInt(strings.TrimSpace(res.Stdout), 10, 64)
	if err != nil {
		h.t.Fatalf("parse stat output %q: %v", res.Stdout, err)
	}
	return n, true
}

// Cleanup stops the container.
func (h *Harness) Cleanup() {
	if h.container != nil {
		_ = h.container.Close(h.ctx)
		h.container = nil
	}
}

// containerConfig builds Docker configs: read-only rootfs, tmpfs at WritableDir.
func containerConfig() (*container.Config, *container.HostConfig, error) {
	binDir := os.Getenv("FILLFILE_E2E_BINDIR")
	if binDir == "" {
		return nil, nil, fmt.Errorf("FILLFILE_E2E_BINDIR not set - run via 'make test-e2e'")
	}

	cfg := &container.Config{
		Image: baseImage,
		Cmd:   []string{"sleep", "infinity"},
	}

	hostCfg := &container.HostConfig{
		Binds: []string{
			fmt.Sprintf("%s:%s:ro", filepath.Join(binDir, binaryName), binaryPath),
		},
		Tmpfs:          map[string]string{WritableDir: "size=64m"},
		ReadonlyRootfs: true,
		AutoRemove:     true,
	}

	return cfg, hostCfg, nil
}
