package main

import (
	"flag"
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/reanimator/analog-clock/internal/config"
	"github.com/reanimator/analog-clock/internal/platform"
	"github.com/reanimator/analog-clock/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.reanimator.analogclock"
	AppName = "Analog Clock"

	WindowWidth  = 420
	WindowHeight = 560
)

func main() {
	attrsPath := flag.String("attrs", "", "YAML file with clock attributes (handsStyle, secondHandColor)")
	flag.Parse()

	// Log version information
	fmt.Printf("Analog Clock v%s starting...\n", version)

	attrs := config.DefaultAttributes()
	if *attrsPath != "" {
		loaded, err := config.LoadAttributes(*attrsPath)
		if err != nil {
			log.Fatalf("failed to load clock attributes: %v", err)
		}
		attrs = loaded
	}

	// Create new Fyne app
	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewClockTheme())

	if icon, err := ui.LoadAppIcon(); err == nil {
		myApp.SetIcon(icon)
	} else {
		log.Printf("failed to render app icon: %v", err)
	}

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// An unparseable declared color is fatal
	if _, err := ui.NewClockScreen(myWindow, myApp, attrs, platform.SystemClock); err != nil {
		log.Fatalf("failed to create clock: %v", err)
	}

	// Show and run
	myWindow.ShowAndRun()
}
