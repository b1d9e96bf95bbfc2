package effect

import (
	"errors"
	"fmt"

	"github.com/aretw0/ckbfx/pkg/param"
	"github.com/aretw0/ckbfx/pkg/protocol"
)

var (
	// ErrMissingField is returned for an Info without a required field.
	ErrMissingField = errors.New("missing required field")
	// ErrInvalidMode is returned for an unknown kpmode, time or parammode.
	ErrInvalidMode = errors.New("invalid mode")
	// ErrUsage is returned when the process was not launched by the daemon.
	ErrUsage = errors.New("expected exactly one of --ckb-info or --ckb-run")
)

// UsageMessage is printed when the process was not launched by the daemon.
const UsageMessage = "This program must be run from within ckb"

// Definition is everything the daemon learns about an effect plus the
// implementation that serves its sessions. Params are owned by the
// definition: the engine updates them in place.
type Definition struct {
	Info
	Params  []param.Param
	Presets []param.Preset
	Effect  protocol.Effect
}

// Validate checks the metadata and that parameter names are unique.
func (d *Definition) Validate() error {
	if err := d.Info.Validate(); err != nil {
		return err
	}
	seen := make(map[string]bool, len(d.Params))
	for _, p := range d.Params {
		if p == nil {
			return fmt.Errorf("%w: nil parameter", param.ErrEmptyName)
		}
		name := p.ParamName()
		if seen[name] {
			return fmt.Errorf("%w: %s", param.ErrDuplicateParam, name)
		}
		seen[name] = true
	}
	return nil
}

// ParamSet builds the session parameter set. Values are reset to defaults.
func (d *Definition) ParamSet() (*param.Set, error) {
	return param.NewSet(d.Params...)
}
