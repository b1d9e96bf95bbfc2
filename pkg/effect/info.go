package effect

import (
	"bufio"
	"fmt"
	"io"

	"github.com/aretw0/ckbfx/pkg/param"
	"github.com/aretw0/ckbfx/pkg/wire"
)

// KeypressMode tells the daemon how keypresses are reported.
type KeypressMode string

const (
	KeypressName     KeypressMode = "name"
	KeypressPosition KeypressMode = "position"
)

// TimeMode tells the daemon how time advances.
type TimeMode string

const (
	TimeDuration TimeMode = "duration"
	TimeAbsolute TimeMode = "absolute"
)

// ParamMode tells the daemon whether parameter edits reach a running effect.
type ParamMode string

const (
	ParamLive   ParamMode = "live"
	ParamStatic ParamMode = "static"
)

// Info is the metadata announced by --ckb-info. Empty modes use their
// defaults: name, duration and live.
type Info struct {
	GUID        string
	Name        string
	Version     string
	Year        string
	Author      string
	License     string
	Description string

	KeypressMode KeypressMode
	TimeMode     TimeMode
	Repeat       bool
	Preempt      bool
	ParamMode    ParamMode
}

func (i Info) keypressMode() KeypressMode {
	if i.KeypressMode == "" {
		return KeypressName
	}
	return i.KeypressMode
}

func (i Info) timeMode() TimeMode {
	if i.TimeMode == "" {
		return TimeDuration
	}
	return i.TimeMode
}

func (i Info) paramMode() ParamMode {
	if i.ParamMode == "" {
		return ParamLive
	}
	return i.ParamMode
}

// Validate checks the fields the daemon cannot do without.
func (i Info) Validate() error {
	if i.GUID == "" {
		return fmt.Errorf("%w: guid", ErrMissingField)
	}
	if i.Name == "" {
		return fmt.Errorf("%w: name", ErrMissingField)
	}
	switch i.keypressMode() {
	case KeypressName, KeypressPosition:
	default:
		return fmt.Errorf("%w: kpmode %q", ErrInvalidMode, i.KeypressMode)
	}
	switch i.timeMode() {
	case TimeDuration, TimeAbsolute:
	default:
		return fmt.Errorf("%w: time %q", ErrInvalidMode, i.TimeMode)
	}
	switch i.paramMode() {
	case ParamLive, ParamStatic:
	default:
		return fmt.Errorf("%w: parammode %q", ErrInvalidMode, i.ParamMode)
	}
	return nil
}

// WriteInfo writes the info block for def, one item per line.
func WriteInfo(w io.Writer, def *Definition) error {
	bw := bufio.NewWriter(w)
	info := def.Info

	lines := []string{
		"guid " + wire.Quote(info.GUID),
		"name " + wire.Quote(info.Name),
		"version " + wire.Quote(info.Version),
		"year " + wire.Quote(info.Year),
		"author " + wire.Quote(info.Author),
		"license " + wire.Quote(info.License),
		"description " + wire.Quote(info.Description),
		"kpmode " + string(info.keypressMode()),
		"time " + string(info.timeMode()),
		"repeat " + onOff(info.Repeat),
		"preempt " + onOff(info.Preempt),
		"parammode " + string(info.paramMode()),
	}
	for _, p := range def.Params {
		lines = append(lines, "param "+param.Definition(p))
	}
	presets := def.Presets
	if len(presets) == 0 {
		presets = []param.Preset{{Name: info.Name}}
	}
	for _, p := range presets {
		lines = append(lines, "preset "+p.String())
	}

	for _, line := range lines {
		if _, err := bw.WriteString(line + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
