//go:build windows

package osarg

import (
	"os"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/dzonerzy/go-optlex/internal/wtf8"
)

// Args returns the process argument list, program name included, rebuilt
// from the native command line so that units that are not well-formed UTF-16
// survive. Falls back to os.Args if the command line cannot be split.
func Args() []string {
	var argc int32
	argv, err := windows.CommandLineToArgv(windows.GetCommandLine(), &argc)
	if err != nil {
		return os.Args
	}
	defer windows.LocalFree(windows.Handle(unsafe.Pointer(argv)))

	args := make([]string, 0, argc)
	for _, p := range (*argv)[:argc:argc] {
		args = append(args, wtf8.EncodeUTF16(utf16Units(&p[0])))
	}
	return args
}

// utf16Units reads the NUL-terminated 16-bit string at p without decoding
// it. The argument block CommandLineToArgv returns is NUL-delimited, so
// walking past the array bound declared in the x/sys signature is fine.
func utf16Units(p *uint16) []uint16 {
	n := 0
	for ptr := p; *ptr != 0; ptr = (*uint16)(unsafe.Add(unsafe.Pointer(ptr), 2)) {
		n++
	}
	return unsafe.Slice(p, n)
}
