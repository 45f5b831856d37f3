package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Clock widget sizing. The face keeps a fixed padding around the numerals,
// so anything smaller than this leaves no room for the hands.
const (
	ClockMinSize float32 = 240
)

// Touch target minimum sizes (iOS/Android guidelines)
const (
	MobileButtonWidth     float32 = 60
	MobileRowButtonHeight float32 = 52
)

// Toast notification sizing and behavior
const (
	ToastWidth    float32 = 220
	ToastHeight   float32 = 48
	ToastMargin   float32 = 24
	ToastAutoHide         = 2 * time.Second
)

// Settings dialog size
const (
	SettingsDialogWidth  float32 = 420
	SettingsDialogHeight float32 = 320
)
