//go:build !unix

package main

import "os"

// Without Dup2, only writes through os.Stdout/os.Stderr are captured;
// runtime panic output still goes to the original stderr.
func redirectStdIO(path string) error {
	if path == "" {
		return nil
	}
	f, err := openStdioLog(path)
	if err != nil {
		return err
	}
	os.Stdout = f
	os.Stderr = f
	return nil
}
