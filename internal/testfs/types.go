// Package testfs runs the fillfile binary inside a Docker container for E2E tests.
//
// The container has a read-only root filesystem with a single writable tmpfs
// mounted at WritableDir, so both successful writes and permission failures can
// be exercised without depending on the host user:
//
//	h := testfs.New(t)
//	res := h.Run(testfs.WritableDir+"/dummy.bin", "10MiB")
//	size, ok := h.FileSize(testfs.WritableDir + "/dummy.bin")
//
// Tests using it are built with the e2e tag and need FILLFILE_E2E_BINDIR
// pointing at a directory containing a static fillfile binary.
package testfs

// RunResult captures the results of one command executed in the container.
type RunResult struct {
	ExitCode int    // Process exit code
	Stdout   string // Standard output
	Stderr   string // Standard error
}
