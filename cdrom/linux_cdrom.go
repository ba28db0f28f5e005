//go:build linux

package cdrom

import (
	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	"golang.org/x/sys/unix"

	"github.com/zavexeon/go-cdrom/devicefile"
)

const driveLogTag = "linuxDrive"

// controlFunc issues one device-control call and returns the raw result
// together with the errno of the failed call (0 on success).
type controlFunc func(fd int, cmd Command, arg uintptr) (int, unix.Errno)

func ioctl(fd int, cmd Command, arg uintptr) (int, unix.Errno) {
	r1, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(fd), uintptr(cmd), arg)
	return int(r1), errno
}

var _ Drive = LinuxDrive{}

type LinuxDrive struct {
	dev     devicefile.DeviceFile
	logger  boshlog.Logger
	control controlFunc
}

func NewLinuxDrive(dev devicefile.DeviceFile, logger boshlog.Logger) LinuxDrive {
	return LinuxDrive{
		dev:     dev,
		logger:  logger,
		control: ioctl,
	}
}

func (d LinuxDrive) Status() (DriveStatus, error) {
	raw, errno := d.control(d.dev.Fd(), CDROM_DRIVE_STATUS, 0)
	if errno != 0 {
		switch errno {
		case unix.ENOSYS:
			return 0, ErrNotSupported
		case unix.EINVAL:
			return 0, ErrInvalidArgument
		case unix.ENOMEM:
			return 0, ErrOutOfMemory
		default:
			return 0, d.unexpected(CDROM_DRIVE_STATUS, errno)
		}
	}

	// The raw non-negative result is the status value itself.
	return DriveStatus(raw), nil
}

func (d LinuxDrive) Eject() error {
	_, errno := d.control(d.dev.Fd(), CDROMEJECT, 0)
	switch errno {
	case 0:
		return nil
	case unix.ENOSYS:
		return ErrNotSupported
	case unix.EBUSY:
		return ErrDeviceBusy
	default:
		return d.unexpected(CDROMEJECT, errno)
	}
}

func (d LinuxDrive) CloseTray() error {
	_, errno := d.control(d.dev.Fd(), CDROMCLOSETRAY, 0)
	switch errno {
	case 0:
		return nil
	case unix.ENOSYS:
		return ErrNotSupported
	case unix.EBUSY:
		return ErrDeviceBusy
	default:
		return d.unexpected(CDROMCLOSETRAY, errno)
	}
}

func (d LinuxDrive) MediaCatalogNumber() (uint, error) {
	raw, errno := d.control(d.dev.Fd(), CDROM_GET_MCN, 0)
	if errno == unix.ENOSYS {
		return 0, ErrNotSupported
	}

	// Other errnos are not classified; whatever the call returned is
	// handed back as the raw value, negative results included.
	return uint(raw), nil
}

func (d LinuxDrive) Capabilities() Capabilities {
	// TODO: decide what to do with a nonzero errno here. The kernel does
	// not define a failure mode for CDROM_GET_CAPABILITY.
	raw, _ := d.control(d.dev.Fd(), CDROM_GET_CAPABILITY, 0)
	return DecodeCapabilities(uint32(raw))
}

// unexpected records an errno missing from the operation's table. The
// log line is diagnostic only; classification is unchanged.
func (d LinuxDrive) unexpected(cmd Command, errno unix.Errno) error {
	d.logger.Error(driveLogTag, "Ioctl 0x%x failed with unrecognized errno %d", uint16(cmd), int(errno))
	return UnexpectedErrnoError{Command: cmd, Errno: errno}
}
