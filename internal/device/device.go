package device

import (
	"fmt"
	"os"
	"strings"

	"github.com/clambin/kbdstate/internal/effector"
)

// Device is one sysfs attribute file, read and written as single-line text.
type Device struct {
	Path string
}

// Read returns the device's current value, with surrounding whitespace
// removed. An empty reading is not a plausible hardware value and is
// reported as an error.
func (d Device) Read() (string, error) {
	content, err := os.ReadFile(d.Path)
	if err != nil {
		return "", err
	}
	value := strings.TrimSpace(string(content))
	if value == "" {
		return "", fmt.Errorf("invalid empty value read from '%s'", d.Path)
	}
	return value, nil
}

// Apply writes value to the device through e, newline-terminated.
func (d Device) Apply(value string, e effector.Effector) error {
	return e.WriteFile(d.Path, []byte(value+"\n"), 0640)
}
