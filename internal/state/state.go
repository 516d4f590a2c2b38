package state

import (
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"strconv"

	"github.com/clambin/kbdstate/internal/effector"
	log "github.com/sirupsen/logrus"
)

// State is the snapshot of backlight values carried across a suspend/resume
// cycle. Brightness is the decimal text form of an integer in [0,255].
// Color is a 6-character hex string where each channel is either fully off
// or fully on, the only combinations the firmware accepts.
type State struct {
	Brightness string `json:"brightness"`
	Color      string `json:"color"`
}

// Store reads and writes the persisted State.
type Store struct {
	Path     string
	Defaults State
}

// Read returns the persisted State. Any State it returns is valid: if the
// state file is missing or unreadable both fields fall back to the defaults,
// and a field that fails validation is replaced individually while the other
// is kept.
func (s Store) Read() State {
	current := s.Defaults
	content, err := os.ReadFile(s.Path)
	if err != nil {
		log.WithError(err).WithField("path", s.Path).Debug("no readable state file. using defaults")
		return current
	}
	var stored State
	if err = json.Unmarshal(content, &stored); err != nil {
		log.WithError(err).WithField("path", s.Path).Warning("corrupt state file. using defaults")
		return current
	}
	if IsValidBrightness(stored.Brightness) {
		current.Brightness = stored.Brightness
	} else {
		log.WithField("brightness", stored.Brightness).Warning("invalid stored brightness. using default")
	}
	if IsValidColor(stored.Color) {
		current.Color = stored.Color
	} else {
		log.WithField("color", stored.Color).Warning("invalid stored color. using default")
	}
	return current
}

// Write persists state through e, creating the state file's directory if
// needed. The file is overwritten with indented JSON and a trailing newline.
func (s Store) Write(state State, e effector.Effector) error {
	if err := e.MkdirAll(filepath.Dir(s.Path), 0755); err != nil {
		return err
	}
	content, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}
	return e.WriteFile(s.Path, append(content, '\n'), 0644)
}

// IsValidBrightness reports whether value is the decimal representation of
// an unsigned integer that fits in a byte.
func IsValidBrightness(value string) bool {
	_, err := strconv.ParseUint(value, 10, 8)
	return err == nil
}

var colorRegExp = regexp.MustCompile(`^(00|FF){3}$`)

// IsValidColor reports whether value is one of the eight on/off channel
// combinations the firmware accepts.
func IsValidColor(value string) bool {
	return colorRegExp.MatchString(value)
}
