package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// MobileUI provides mobile-specific UI enhancements
type MobileUI struct {
	app fyne.App
}

// NewMobileUI creates a new mobile UI helper
func NewMobileUI(app fyne.App) *MobileUI {
	return &MobileUI{app: app}
}

// IsMobileDevice checks if the app is running on a mobile device
func (m *MobileUI) IsMobileDevice() bool {
	return fyne.CurrentDevice().IsMobile()
}

// CreateMobileButton creates a button optimized for mobile touch
func (m *MobileUI) CreateMobileButton(text string, onTapped func()) *widget.Button {
	btn := widget.NewButton(text, onTapped)

	// For mobile devices, set minimum size for touch targets
	if m.IsMobileDevice() {
		btn.Resize(fyne.NewSize(MobileButtonWidth, MobileRowButtonHeight))
	}

	return btn
}

// CreateMobileEntry creates a single-line entry field optimized for mobile
func (m *MobileUI) CreateMobileEntry(placeholder string) *widget.Entry {
	entry := widget.NewEntry()
	entry.SetPlaceHolder(placeholder)
	return entry
}

// GetMobilePadding returns appropriate padding for mobile devices
func (m *MobileUI) GetMobilePadding() float32 {
	if m.IsMobileDevice() {
		return 20 // Larger padding for mobile
	}
	return 10 // Standard padding for desktop
}

// GetDeviceOrientation returns the current device orientation
func (m *MobileUI) GetDeviceOrientation() fyne.DeviceOrientation {
	return fyne.CurrentDevice().Orientation()
}

// IsLandscape returns true if device is in landscape orientation
func (m *MobileUI) IsLandscape() bool {
	orientation := m.GetDeviceOrientation()
	return orientation == fyne.OrientationHorizontalLeft || orientation == fyne.OrientationHorizontalRight
}

// CreateOrientationAwareLayout places the controls below the clock, or to its
// right on a mobile device held in landscape.
func (m *MobileUI) CreateOrientationAwareLayout(clock, controls fyne.CanvasObject) *fyne.Container {
	if m.IsMobileDevice() && m.IsLandscape() {
		return container.NewBorder(nil, nil, nil, controls, clock)
	}
	return container.NewBorder(nil, controls, nil, nil, clock)
}
