//go:build unix

package main

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// redirectStdIO points fds 1 and 2 at path so panics from a headless
// framebuffer run still land somewhere readable.
func redirectStdIO(path string) error {
	f, err := openStdioLog(path)
	if err != nil {
		return err
	}
	defer f.Close()

	for _, target := range []*os.File{os.Stdout, os.Stderr} {
		if err := unix.Dup2(int(f.Fd()), int(target.Fd())); err != nil {
			return fmt.Errorf("dup2 onto fd %d: %w", target.Fd(), err)
		}
	}
	return nil
}
