package main

import (
	"errors"
	"fmt"
	"os"

	bosherr "github.com/cloudfoundry/bosh-utils/errors"
	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	getopt "github.com/pborman/getopt/v2"

	"github.com/zavexeon/go-cdrom/cdrom"
	"github.com/zavexeon/go-cdrom/devicefile"
	"github.com/zavexeon/go-cdrom/tray"
)

const mainLogTag = "main"

func main() {
	optDevice := getopt.StringLong("device", 'd', "/dev/sr0", "Device node of the drive")
	optInfo := getopt.BoolLong("info", 'i', "Print drive status and capabilities instead of toggling the tray")
	optDebug := getopt.BoolLong("debug", 'v', "Log debug output to the console")
	optHelp := getopt.BoolLong("help", 'h', "Help")
	getopt.Parse()

	if *optHelp {
		getopt.Usage()
		os.Exit(0)
	}

	level := boshlog.LevelError
	if *optDebug {
		level = boshlog.LevelDebug
	}
	logger := boshlog.NewLogger(level)

	if err := run(*optDevice, *optInfo, logger); err != nil {
		logger.Error(mainLogTag, "Controlling drive %s: %s", *optDevice, err.Error())
		os.Exit(1)
	}
}

func run(devicePath string, info bool, logger boshlog.Logger) error {
	dev, err := devicefile.OpenDeviceFile(devicePath, devicefile.ReadOnly)
	if err != nil {
		return bosherr.WrapError(err, "Opening drive")
	}
	defer dev.Release()

	drive := cdrom.NewLinuxDrive(dev, logger)

	if info {
		return printDriveInfo(drive)
	}
	return tray.NewToggler(drive, logger).Toggle()
}

func printDriveInfo(drive cdrom.Drive) error {
	status, err := drive.Status()
	if err != nil {
		return bosherr.WrapError(err, "Querying drive status")
	}
	fmt.Printf("status: %s\n", status)

	caps := drive.Capabilities()
	fmt.Printf("capabilities: %+v\n", caps)

	if caps.MCN {
		mcn, err := drive.MediaCatalogNumber()
		if err != nil && !errors.Is(err, cdrom.ErrNotSupported) {
			return bosherr.WrapError(err, "Reading media catalog number")
		}
		if err == nil {
			fmt.Printf("media catalog number: %d\n", mcn)
		}
	}

	return nil
}
