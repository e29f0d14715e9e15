//go:build e2e

package internal

import (
	"strings"
	"testing"

	"github.com/ivoronin/fillfile/internal/testfs"
)

// =============================================================================
// Section 1: Core E2E Tests
// =============================================================================

// TestE2ECreateFile tests a successful run and the resulting file size.
func TestE2ECreateFile(t *testing.T) {
	h := testfs.New(t)
	path := testfs.WritableDir + "/dummy.bin"

	res := h.Run("--color=never", path, "10MiB")

	if res.ExitCode != 0 {
		t.Fatalf("exit code = %d\nstdout: %s\nstderr: %s", res.ExitCode, res.Stdout, res.Stderr)
	}
	if want := "Success: " + path + " (10,485,760 bytes)\n"; res.Stdout != want {
		t.Errorf("stdout = %q, want %q", res.Stdout, want)
	}

	size, ok := h.FileSize(path)
	if !ok {
		t.Fatalf("%s was not created", path)
	}
	if size != 10*1024*1024 {
		t.Errorf("file size = %d, want %d", size, 10*1024*1024)
	}
}

// TestE2EOverwrite tests that a second run replaces the first file.
func TestE2EOverwrite(t *testing.T) {
	h := testfs.New(t)
	path := testfs.WritableDir + "/dummy.bin"

	h.Run(path, "1MB")
	res := h.Run(path, "2048b")

	if res.ExitCode != 0 {
		t.Fatalf("exit code = %d, stderr: %s", res.ExitCode, res.Stderr)
	}
	if size, _ := h.FileSize(path); size != 2048 {
		t.Errorf("file size = %d, want 2048", size)
	}
}

// =============================================================================
// Section 2: Failure E2E Tests
// =============================================================================

// TestE2EReadOnlyFilesystem tests failure on a read-only mount, even as root.
func TestE2EReadOnlyFilesystem(t *testing.T) {
	h := testfs.New(t)
	path := testfs.ReadOnlyDir + "/dummy.bin"

	res := h.Run("--color=never", path, "1kb")

	if res.ExitCode != 1 {
		t.Errorf("exit code = %d, want 1", res.ExitCode)
	}
	if strings.Contains(res.Stdout, "Success") {
		t.Errorf("reported success on read-only path: %q", res.Stdout)
	}
	if want := "Failed to create " + path + "\n"; res.Stderr != want {
		t.Errorf("stderr = %q, want %q", res.Stderr, want)
	}
	if _, ok := h.FileSize(path); ok {
		t.Errorf("%s should not exist", path)
	}
}

// TestE2EMissingArguments tests that both missing arguments are reported.
func TestE2EMissingArguments(t *testing.T) {
	h := testfs.New(t)

	res := h.Run("--color=never")

	if res.ExitCode != 1 {
		t.Errorf("exit code = %d, want 1", res.ExitCode)
	}
	want := "Missing argument: export path\nMissing argument: export size\n"
	if res.Stderr != want {
		t.Errorf("stderr = %q, want %q", res.Stderr, want)
	}
}
