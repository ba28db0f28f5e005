package fakes

import (
	"github.com/zavexeon/go-cdrom/cdrom"
)

type FakeDrive struct {
	StatusStatus cdrom.DriveStatus
	StatusError  error
	StatusCalled int

	EjectError  error
	EjectCalled int

	CloseTrayError  error
	CloseTrayCalled int

	MediaCatalogNumberValue uint
	MediaCatalogNumberError error

	CapabilitiesValue cdrom.Capabilities
}

func NewFakeDrive() *FakeDrive {
	return &FakeDrive{}
}

func (d *FakeDrive) Status() (cdrom.DriveStatus, error) {
	d.StatusCalled++
	return d.StatusStatus, d.StatusError
}

func (d *FakeDrive) Eject() error {
	d.EjectCalled++
	return d.EjectError
}

func (d *FakeDrive) CloseTray() error {
	d.CloseTrayCalled++
	return d.CloseTrayError
}

func (d *FakeDrive) MediaCatalogNumber() (uint, error) {
	return d.MediaCatalogNumberValue, d.MediaCatalogNumberError
}

func (d *FakeDrive) Capabilities() cdrom.Capabilities {
	return d.CapabilitiesValue
}
