package tray_test

import (
	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/zavexeon/go-cdrom/cdrom"
	fakecdrom "github.com/zavexeon/go-cdrom/cdrom/fakes"
	. "github.com/zavexeon/go-cdrom/tray"
)

var _ = Describe("Toggler", func() {
	var (
		drive   *fakecdrom.FakeDrive
		toggler Toggler
	)

	BeforeEach(func() {
		drive = fakecdrom.NewFakeDrive()
	})

	JustBeforeEach(func() {
		toggler = NewToggler(drive, boshlog.NewLogger(boshlog.LevelNone))
	})

	Context("when the drive reports no status info", func() {
		BeforeEach(func() {
			drive.StatusStatus = cdrom.StatusNoInfo
		})

		It("issues no tray command", func() {
			err := toggler.Toggle()
			Expect(err).NotTo(HaveOccurred())
			Expect(drive.StatusCalled).To(Equal(1))
			Expect(drive.EjectCalled).To(Equal(0))
			Expect(drive.CloseTrayCalled).To(Equal(0))
		})
	})

	Context("when the tray is open", func() {
		BeforeEach(func() {
			drive.StatusStatus = cdrom.StatusTrayOpen
		})

		It("closes the tray and nothing else", func() {
			err := toggler.Toggle()
			Expect(err).NotTo(HaveOccurred())
			Expect(drive.CloseTrayCalled).To(Equal(1))
			Expect(drive.EjectCalled).To(Equal(0))
		})

		Context("and closing fails", func() {
			BeforeEach(func() {
				drive.CloseTrayError = cdrom.ErrDeviceBusy
			})

			It("returns an error", func() {
				err := toggler.Toggle()
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("Closing tray"))
				Expect(err.Error()).To(ContainSubstring("busy"))
			})
		})
	})

	for _, status := range []cdrom.DriveStatus{cdrom.StatusNoDisc, cdrom.StatusNotReady, cdrom.StatusDiscOK} {
		status := status

		Context("when the drive reports "+status.String(), func() {
			BeforeEach(func() {
				drive.StatusStatus = status
			})

			It("ejects and nothing else", func() {
				err := toggler.Toggle()
				Expect(err).NotTo(HaveOccurred())
				Expect(drive.EjectCalled).To(Equal(1))
				Expect(drive.CloseTrayCalled).To(Equal(0))
			})
		})
	}

	Context("when ejecting fails", func() {
		BeforeEach(func() {
			drive.StatusStatus = cdrom.StatusDiscOK
			drive.EjectError = cdrom.ErrNotSupported
		})

		It("returns an error", func() {
			err := toggler.Toggle()
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("Ejecting media"))
		})
	})

	Context("when the status query fails", func() {
		BeforeEach(func() {
			drive.StatusError = cdrom.ErrNotSupported
		})

		It("issues no tray command and returns an error", func() {
			err := toggler.Toggle()
			Expect(err).To(HaveOccurred())
			Expect(drive.EjectCalled).To(Equal(0))
			Expect(drive.CloseTrayCalled).To(Equal(0))
		})
	})
})
