package tray

import (
	bosherr "github.com/cloudfoundry/bosh-utils/errors"
	boshlog "github.com/cloudfoundry/bosh-utils/logger"

	boshcdrom "github.com/zavexeon/go-cdrom/cdrom"
)

const trayLogTag = "trayToggler"

// Toggler flips the tray between open and closed based on one status
// read: an open tray is closed, a closed (or unready, or loaded) drive
// is ejected, and a drive reporting no status info is left alone.
type Toggler interface {
	Toggle() error
}

type toggler struct {
	drive  boshcdrom.Drive
	logger boshlog.Logger
}

func NewToggler(drive boshcdrom.Drive, logger boshlog.Logger) Toggler {
	return toggler{
		drive:  drive,
		logger: logger,
	}
}

func (t toggler) Toggle() error {
	status, err := t.drive.Status()
	if err != nil {
		return bosherr.WrapError(err, "Querying drive status")
	}

	t.logger.Debug(trayLogTag, "Drive status: %s", status)

	switch status {
	case boshcdrom.StatusNoInfo:
		t.logger.Debug(trayLogTag, "Drive reports no status info, leaving tray alone")
		return nil
	case boshcdrom.StatusTrayOpen:
		if err := t.drive.CloseTray(); err != nil {
			return bosherr.WrapError(err, "Closing tray")
		}
	default:
		if err := t.drive.Eject(); err != nil {
			return bosherr.WrapError(err, "Ejecting media")
		}
	}

	return nil
}
