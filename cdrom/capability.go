package cdrom

// Capability bit values returned by CDROM_GET_CAPABILITY, from
// linux/cdrom.h (CDC_*). Bit 0x400 was CDC_IOCTLS, retired from the
// kernel and never reassigned, so it is absent here.
const (
	capCloseTray     uint32 = 0x1
	capOpenTray      uint32 = 0x2
	capLock          uint32 = 0x4
	capSelectSpeed   uint32 = 0x8
	capSelectDisc    uint32 = 0x10
	capMultiSession  uint32 = 0x20
	capMCN           uint32 = 0x40
	capMediaChanged  uint32 = 0x80
	capPlayAudio     uint32 = 0x100
	capReset         uint32 = 0x200
	capDriveStatus   uint32 = 0x800
	capGenericPacket uint32 = 0x1000
	capCDR           uint32 = 0x2000
	capCDRW          uint32 = 0x4000
	capDVD           uint32 = 0x8000
	capDVDR          uint32 = 0x10000
	capDVDRAM        uint32 = 0x20000
	capMODrive       uint32 = 0x40000
	capMRW           uint32 = 0x80000
	capMRWWrite      uint32 = 0x100000
	capRAM           uint32 = 0x200000
)

// Capabilities reports which features the drive supports, one boolean
// per capability bit.
type Capabilities struct {
	CloseTray     bool
	OpenTray      bool
	Lock          bool
	SelectSpeed   bool
	SelectDisc    bool
	MultiSession  bool
	MCN           bool
	MediaChanged  bool
	PlayAudio     bool
	Reset         bool
	DriveStatus   bool
	GenericPacket bool
	CDR           bool
	CDRW          bool
	DVD           bool
	DVDR          bool
	DVDRAM        bool
	MODrive       bool
	MRW           bool
	MRWWrite      bool
	RAM           bool
}

// DecodeCapabilities extracts the known capability flags from a raw
// CDROM_GET_CAPABILITY result. Bits outside the known set are ignored.
func DecodeCapabilities(mask uint32) Capabilities {
	return Capabilities{
		CloseTray:     mask&capCloseTray != 0,
		OpenTray:      mask&capOpenTray != 0,
		Lock:          mask&capLock != 0,
		SelectSpeed:   mask&capSelectSpeed != 0,
		SelectDisc:    mask&capSelectDisc != 0,
		MultiSession:  mask&capMultiSession != 0,
		MCN:           mask&capMCN != 0,
		MediaChanged:  mask&capMediaChanged != 0,
		PlayAudio:     mask&capPlayAudio != 0,
		Reset:         mask&capReset != 0,
		DriveStatus:   mask&capDriveStatus != 0,
		GenericPacket: mask&capGenericPacket != 0,
		CDR:           mask&capCDR != 0,
		CDRW:          mask&capCDRW != 0,
		DVD:           mask&capDVD != 0,
		DVDR:          mask&capDVDR != 0,
		DVDRAM:        mask&capDVDRAM != 0,
		MODrive:       mask&capMODrive != 0,
		MRW:           mask&capMRW != 0,
		MRWWrite:      mask&capMRWWrite != 0,
		RAM:           mask&capRAM != 0,
	}
}
