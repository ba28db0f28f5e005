package cdrom

// DriveStatus is the drive's mechanical/media state as reported by
// CDROM_DRIVE_STATUS. The numeric values are the kernel's CDS_* codes;
// the raw ioctl result is the status, no further decoding happens.
type DriveStatus int

const (
	StatusNoInfo   DriveStatus = 0 // CDS_NO_INFO
	StatusNoDisc   DriveStatus = 1 // CDS_NO_DISC
	StatusTrayOpen DriveStatus = 2 // CDS_TRAY_OPEN
	StatusNotReady DriveStatus = 3 // CDS_DRIVE_NOT_READY
	StatusDiscOK   DriveStatus = 4 // CDS_DISC_OK
)

func (s DriveStatus) String() string {
	switch s {
	case StatusNoInfo:
		return "no info"
	case StatusNoDisc:
		return "no disc"
	case StatusTrayOpen:
		return "tray open"
	case StatusNotReady:
		return "drive not ready"
	case StatusDiscOK:
		return "disc ok"
	}
	return "unknown"
}
