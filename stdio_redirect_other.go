//go:build !unix

package main

import "os"

// redirectStdIO swaps the os.Stdout/os.Stderr handles. Runtime panics are
// still written to the original stderr on these platforms.
func redirectStdIO(path string) error {
	f, err := openStdioLog(path)
	if err != nil {
		return err
	}
	os.Stdout = f
	os.Stderr = f
	return nil
}
