//go:build !windows

package osarg

import "os"

// Args returns the process argument list, program name included.
func Args() []string {
	return os.Args
}
