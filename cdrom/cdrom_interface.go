package cdrom

// Drive is the control surface of one optical drive. Every operation is
// a single synchronous ioctl against the drive's descriptor; none of
// them waits for the mechanism to finish moving (the descriptor is
// opened non-blocking). A Drive is meant for one logical caller at a
// time; callers needing concurrent access serialize externally or open
// independent handles.
type Drive interface {
	// Status reports the drive's mechanical/media state.
	Status() (DriveStatus, error)

	// Eject opens the tray (or ejects the media on caddy drives).
	Eject() error

	// CloseTray closes the tray.
	CloseTray() error

	// MediaCatalogNumber returns the raw media catalog number result.
	MediaCatalogNumber() (uint, error)

	// Capabilities reports the feature set of the drive.
	Capabilities() Capabilities
}
