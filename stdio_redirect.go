package main

import "os"

// openStdioLog opens (or creates) the append-only file stdout/stderr go to.
func openStdioLog(path string) (*os.File, error) {
	return os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
}
