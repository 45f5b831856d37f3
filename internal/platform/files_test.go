package platform

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCreateDirectoryIfNotExists(t *testing.T) {
	tempDir := t.TempDir()
	nested := filepath.Join(tempDir, "snapshots", "today")

	if err := CreateDirectoryIfNotExists(nested); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	info, err := os.Stat(nested)
	if err != nil {
		t.Fatalf("Directory was not created: %v", err)
	}
	if !info.IsDir() {
		t.Error("Expected a directory")
	}

	// Calling again on an existing directory is fine
	if err := CreateDirectoryIfNotExists(nested); err != nil {
		t.Errorf("Expected no error for existing directory, got %v", err)
	}

	if err := CreateDirectoryIfNotExists(""); err != nil {
		t.Errorf("Empty path should be a no-op, got %v", err)
	}
}

func TestOpenFileWithDefaultApp_NonExistentFile(t *testing.T) {
	err := OpenFileWithDefaultApp(filepath.Join(t.TempDir(), "missing.png"))
	if err == nil {
		t.Error("Expected error for non-existent file")
	}
}

func TestOpenCommand(t *testing.T) {
	tests := []struct {
		goos     string
		expected string
	}{
		{OSDarwin, OpenCommand},
		{OSWindows, CmdCommand},
		{OSLinux, XDGOpenCommand},
	}

	for _, test := range tests {
		cmd, err := openCommand(test.goos, "/tmp/clock.png")
		if err != nil {
			t.Errorf("openCommand(%s) returned error: %v", test.goos, err)
			continue
		}
		if filepath.Base(cmd.Path) != test.expected && cmd.Args[0] != test.expected {
			t.Errorf("openCommand(%s) = %v, expected %s", test.goos, cmd.Args, test.expected)
		}
	}

	if _, err := openCommand("plan9", "/tmp/clock.png"); err == nil {
		t.Error("Expected error for unsupported OS")
	}
}
