package ui

// Package ui is the Fyne host for the analog clock. It adapts the clockface
// renderer to Fyne canvas objects, drives its redraw loop on the UI goroutine,
// and builds the screen with the second-hand color and hand thickness controls.
// All UI strings are localized via Localization.
