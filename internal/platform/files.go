package platform

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// Command constants
const (
	OpenCommand    = "open"
	XDGOpenCommand = "xdg-open"
	CmdCommand     = "cmd"
	StartCommand   = "start"
	WindowsCmdFlag = "/c"
)

// CreateDirectoryIfNotExists creates dirPath and any missing parents
func CreateDirectoryIfNotExists(dirPath string) error {
	if dirPath == "" {
		return nil
	}
	if err := os.MkdirAll(dirPath, DefaultDirPermissions); err != nil {
		return fmt.Errorf("create directory %s: %w", dirPath, err)
	}
	return nil
}

// OpenFileWithDefaultApp opens filePath with the application registered for
// its type (an image viewer for rendered snapshots).
func OpenFileWithDefaultApp(filePath string) error {
	if _, err := os.Stat(filePath); err != nil {
		return fmt.Errorf("file does not exist: %s", filePath)
	}

	cmd, err := openCommand(runtime.GOOS, filePath)
	if err != nil {
		return err
	}
	return cmd.Start()
}

func openCommand(goos, filePath string) (*exec.Cmd, error) {
	switch goos {
	case OSDarwin:
		return exec.Command(OpenCommand, filePath), nil
	case OSWindows:
		return exec.Command(CmdCommand, WindowsCmdFlag, StartCommand, "", filePath), nil
	case OSLinux:
		return exec.Command(XDGOpenCommand, filePath), nil
	default:
		return nil, fmt.Errorf("opening files is not supported on %s", goos)
	}
}
