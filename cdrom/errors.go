package cdrom

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

// Errors a drive operation can classify an ioctl failure into. Callers
// match them with errors.Is. Any errno outside an operation's table
// comes back as an UnexpectedErrnoError instead, never as success.
var (
	ErrNotSupported    = errors.New("command not supported by the drive")
	ErrInvalidArgument = errors.New("invalid argument or disc slot")
	ErrOutOfMemory     = errors.New("kernel could not allocate memory for the command")
	ErrDeviceBusy      = errors.New("drive is busy")
)

// UnexpectedErrnoError reports an errno the operation's classification
// table does not account for. It carries the raw errno for diagnostics;
// seeing one means the table is incomplete relative to what the kernel
// actually returns.
type UnexpectedErrnoError struct {
	Command Command
	Errno   unix.Errno
}

func (e UnexpectedErrnoError) Error() string {
	return fmt.Sprintf("unexpected errno %d (%s) from cdrom ioctl 0x%x", int(e.Errno), e.Errno.Error(), uint16(e.Command))
}
