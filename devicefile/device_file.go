package devicefile

import (
	"os"

	"golang.org/x/sys/unix"
)

type OpenMode int

const (
	ReadOnly OpenMode = iota
	WriteOnly
	ReadWrite
)

// DeviceFile owns one open descriptor to a device node. Callers release
// it exactly once, normally with defer:
//
//	dev, err := devicefile.OpenDeviceFile("/dev/sr0", devicefile.ReadOnly)
//	if err != nil { ... }
//	defer dev.Release()
type DeviceFile struct {
	fd   int
	mode OpenMode
	path string
}

// openFlags maps an OpenMode to the flags passed to open(2). O_NONBLOCK
// is always set so that status queries return immediately on drives with
// no media instead of waiting on the mechanism.
func openFlags(mode OpenMode) int {
	flags := unix.O_NONBLOCK
	switch mode {
	case WriteOnly:
		flags |= unix.O_WRONLY
	case ReadWrite:
		// Currently opens write-only: no caller transfers data over the
		// handle, so read access has never been exercised.
		// TODO: map to O_RDWR once a consumer reads from the descriptor.
		flags |= unix.O_WRONLY
	default:
		flags |= unix.O_RDONLY
	}
	return flags
}

// OpenDeviceFile opens the device node at path. Open failures come back
// as *os.PathError, unclassified.
func OpenDeviceFile(path string, mode OpenMode) (DeviceFile, error) {
	fd, err := unix.Open(path, openFlags(mode), 0)
	if err != nil {
		return DeviceFile{}, &os.PathError{Op: "open", Path: path, Err: err}
	}

	return DeviceFile{fd: fd, mode: mode, path: path}, nil
}

func (d DeviceFile) Fd() int {
	return d.fd
}

func (d DeviceFile) Mode() OpenMode {
	return d.mode
}

func (d DeviceFile) Path() string {
	return d.path
}

// Release closes the underlying descriptor. Close failures are not
// surfaced; there is nothing a caller could do with one here. Releasing
// the same DeviceFile twice is undefined.
func (d DeviceFile) Release() {
	unix.Close(d.fd)
}
