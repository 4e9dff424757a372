package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// setArgs replaces os.Args for the duration of the test.
func setArgs(t *testing.T, args ...string) {
	oldArgs := os.Args
	os.Args = append([]string{"cruxd.test"}, args...)
	t.Cleanup(func() {
		os.Args = oldArgs
	})
}

func TestLoadConfigHelp(t *testing.T) {
	setArgs(t, "-h")
	_, _, err := LoadConfig()
	if err == nil {
		t.Fatal("LoadConfig with -h: expected a help error")
	}
}

func TestLoadConfigConflictingNetworks(t *testing.T) {
	setArgs(t, "--testnet", "--simnet")
	_, _, err := LoadConfig()
	if err == nil {
		t.Fatal("LoadConfig with two networks: expected an error")
	}
	if !strings.Contains(err.Error(), "one network") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoadConfigUnknownFlag(t *testing.T) {
	setArgs(t, "--nosuchoption")
	_, _, err := LoadConfig()
	if err == nil {
		t.Fatal("LoadConfig with unknown flag: expected an error")
	}
}

func TestCleanAndExpandPath(t *testing.T) {
	homeDir := filepath.Dir(DefaultHomeDir)
	tests := []struct {
		in   string
		want string
	}{
		{"~/logs", filepath.Join(homeDir, "logs")},
		{"/var/log/cruxd", filepath.Clean("/var/log/cruxd")},
		{"relative/dir", filepath.Clean("relative/dir")},
	}
	for _, test := range tests {
		if got := cleanAndExpandPath(test.in); got != test.want {
			t.Errorf("cleanAndExpandPath(%q) = %q, want %q",
				test.in, got, test.want)
		}
	}
}
