package cdrom

// Command is one ioctl request number from the kernel CD-ROM interface.
// All requests live in the 0x53 ('S') block.
type Command uint16

// The full request table from linux/cdrom.h. Names are kept verbatim so
// the table can be audited against the header. Most of these are defined
// for completeness only; the operations on Drive use a handful of them.
const (
	CDROMPAUSE        Command = 0x5301 // Pause Audio Operation
	CDROMRESUME       Command = 0x5302 // Resume paused Audio Operation
	CDROMPLAYMSF      Command = 0x5303 // Play Audio MSF
	CDROMPLAYTRKIND   Command = 0x5304 // Play Audio Track/index
	CDROMREADTOCHDR   Command = 0x5305 // Read TOC header
	CDROMREADTOCENTRY Command = 0x5306 // Read TOC entry
	CDROMSTOP         Command = 0x5307 // Stop the cdrom drive
	CDROMSTART        Command = 0x5308 // Start the cdrom drive
	CDROMEJECT        Command = 0x5309 // Ejects the cdrom media
	CDROMVOLCTRL      Command = 0x530a // Control output volume
	CDROMSUBCHNL      Command = 0x530b // Read subchannel data
	CDROMREADMODE2    Command = 0x530c // Read CDROM mode 2 data (2336 Bytes)
	CDROMREADMODE1    Command = 0x530d // Read CDROM mode 1 data (2048 Bytes)
	CDROMREADAUDIO    Command = 0x530e
	CDROMEJECT_SW     Command = 0x530f // enable/disable auto-ejecting
	CDROMMULTISESSION Command = 0x5310 // Obtain the start-of-last-session address
	CDROM_GET_MCN     Command = 0x5311 // Obtain the "Universal Product Code"
	CDROMRESET        Command = 0x5312 // hard-reset the drive
	CDROMVOLREAD      Command = 0x5313 // Get the drive's volume setting
	CDROMREADRAW      Command = 0x5314 // read data in raw mode (2352 Bytes)

	// Drivers for aztcd and cdu535 only.
	CDROMREADCOOKED Command = 0x5315 // read data in cooked mode
	CDROMSEEK       Command = 0x5316 // seek msf address
	CDROMPLAYBLK    Command = 0x5317 // scmd
	CDROMREADALL    Command = 0x5318 // read all 2646 bytes

	CDROMCLOSETRAY       Command = 0x5319 // pendant of CDROMEJECT
	CDROMGETSPINDOWN     Command = 0x531d
	CDROMSETSPINDOWN     Command = 0x531e
	CDROM_SET_OPTIONS    Command = 0x5320
	CDROM_CLEAR_OPTIONS  Command = 0x5321
	CDROM_SELECT_SPEED   Command = 0x5322
	CDROM_SELECT_DISC    Command = 0x5323 // select disc (for juke-boxes)
	CDROM_MEDIA_CHANGED  Command = 0x5325
	CDROM_DRIVE_STATUS   Command = 0x5326 // drive status, tray position etc.
	CDROM_DISC_STATUS    Command = 0x5327 // disc type etc.
	CDROM_CHANGER_NSLOTS Command = 0x5328
	CDROM_LOCKDOOR       Command = 0x5329 // lock or unlock door
	CDROM_DEBUG          Command = 0x5330 // turn debug messages on/off
	CDROM_GET_CAPABILITY Command = 0x5331

	CDROMAUDIOBUFSIZ Command = 0x5382 // set the audio buffer size (sbpcd)

	DVD_READ_STRUCT  Command = 0x5390 // read structure
	DVD_WRITE_STRUCT Command = 0x5391 // write structure
	DVD_AUTH         Command = 0x5392 // authentication

	CDROM_SEND_PACKET        Command = 0x5393 // send a packet to the drive
	CDROM_NEXT_WRITABLE      Command = 0x5394 // get next writable block
	CDROM_LAST_WRITTEN       Command = 0x5395 // get last block written on disc
	CDROM_TIMED_MEDIA_CHANGE Command = 0x5396 // get the timestamp of the last media change
)
