package configuration

import (
	"encoding/json"
	"os"

	log "github.com/sirupsen/logrus"
)

// Configuration holds the device file paths, the fallback defaults and the
// location of the persisted state. Immutable after Load.
type Configuration struct {
	Brightness DeviceConfiguration `json:"brightness"`
	Color      DeviceConfiguration `json:"color"`
	StatePath  string              `json:"state_path"`
}

// DeviceConfiguration describes one sysfs attribute file and the value to
// fall back to when persisted data for it fails validation.
type DeviceConfiguration struct {
	Path    string `json:"path"`
	Default string `json:"default"`
}

var configurationPaths = []string{
	"/usr/local/etc/kbdstate.json",
	"/etc/kbdstate.json",
}

// Load returns the first complete configuration found. It tries override
// (if not empty) before the system configuration paths, and falls back to
// the built-in defaults when no candidate can be read. It never fails.
func Load(override string) Configuration {
	paths := configurationPaths
	if override != "" {
		paths = append([]string{override}, paths...)
	}
	return loadFrom(paths)
}

func loadFrom(paths []string) Configuration {
	for _, path := range paths {
		content, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		var cfg Configuration
		if err = json.Unmarshal(content, &cfg); err != nil {
			log.WithError(err).WithField("path", path).Warning("skipping invalid configuration file")
			continue
		}
		if !cfg.complete() {
			log.WithField("path", path).Warning("skipping incomplete configuration file")
			continue
		}
		log.WithField("path", path).Debug("configuration loaded")
		return cfg
	}
	return defaultConfiguration()
}

func (c Configuration) complete() bool {
	return c.Brightness.Path != "" && c.Brightness.Default != "" &&
		c.Color.Path != "" && c.Color.Default != "" &&
		c.StatePath != ""
}

func defaultConfiguration() Configuration {
	return Configuration{
		Brightness: DeviceConfiguration{
			Path:    "/sys/class/leds/system76_acpi::kbd_backlight/brightness",
			Default: "48",
		},
		Color: DeviceConfiguration{
			Path:    "/sys/class/leds/system76_acpi::kbd_backlight/color",
			Default: "FF0000",
		},
		StatePath: "/var/lib/kbdstate/state.json",
	}
}
