package controller

import (
	"fmt"

	"github.com/clambin/kbdstate/internal/configuration"
	"github.com/clambin/kbdstate/internal/device"
	"github.com/clambin/kbdstate/internal/effector"
	"github.com/clambin/kbdstate/internal/state"
	log "github.com/sirupsen/logrus"
)

// Controller runs one suspend/resume transition: capture device state to
// durable storage ("pre") or restore it to the devices ("post").
type Controller struct {
	Brightness device.Device
	Color      device.Device
	Store      state.Store
	Effector   effector.Effector
}

// New returns a Controller for the configured devices and state file,
// performing its writes through e.
func New(cfg configuration.Configuration, e effector.Effector) *Controller {
	return &Controller{
		Brightness: device.Device{Path: cfg.Brightness.Path},
		Color:      device.Device{Path: cfg.Color.Path},
		Store: state.Store{
			Path: cfg.StatePath,
			Defaults: state.State{
				Brightness: cfg.Brightness.Default,
				Color:      cfg.Color.Default,
			},
		},
		Effector: e,
	}
}

// Run performs the named transition.
func (c *Controller) Run(transition string) error {
	switch transition {
	case "pre":
		return c.Pre()
	case "post":
		return c.Post()
	default:
		return fmt.Errorf("invalid transition '%s', must be 'pre' or 'post'", transition)
	}
}

// Pre snapshots the current device readings into the state file. Readings
// are persisted verbatim: whatever the hardware reports is trusted, only an
// empty reading is rejected.
func (c *Controller) Pre() error {
	brightness, err := c.Brightness.Read()
	if err != nil {
		return err
	}
	color, err := c.Color.Read()
	if err != nil {
		return err
	}
	captured := state.State{Brightness: brightness, Color: color}
	log.WithFields(log.Fields{"brightness": brightness, "color": color}).Debug("captured device state")
	return c.Store.Write(captured, c.Effector)
}

// Post applies the persisted state to the devices. The state store
// guarantees a valid state, falling back to the configured defaults
// per field. A failed brightness write is not rolled back.
func (c *Controller) Post() error {
	restored := c.Store.Read()
	log.WithFields(log.Fields{"brightness": restored.Brightness, "color": restored.Color}).Debug("restoring device state")
	if err := c.Brightness.Apply(restored.Brightness, c.Effector); err != nil {
		return err
	}
	return c.Color.Apply(restored.Color, c.Effector)
}
