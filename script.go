package ckbfx

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/aretw0/ckbfx/pkg/color"
	"github.com/aretw0/ckbfx/pkg/effect"
	"github.com/aretw0/ckbfx/pkg/wire"
)

// Script composes the daemon's side of a session so that an effect can be
// driven without ckb-next, from tests or from "ckbfx simulate".
type Script struct {
	keys   []string
	params []string
	run    []string
}

// NewScript starts an empty script.
func NewScript() *Script {
	return &Script{}
}

// Key adds a key to the keymap.
func (s *Script) Key(name string, x, y int) *Script {
	s.keys = append(s.keys, fmt.Sprintf("%s %d,%d", wire.EncodeLine("key", name), x, y))
	return s
}

// Param sets a parameter in the initial params exchange. value is in wire
// form, before percent-encoding.
func (s *Script) Param(name, value string) *Script {
	s.params = append(s.params, wire.EncodeLine("param", name, value))
	return s
}

// Start sends "start".
func (s *Script) Start() *Script { return s.cmd("start") }

// Stop sends "stop".
func (s *Script) Stop() *Script { return s.cmd("stop") }

// Press sends a key down event.
func (s *Script) Press(name string) *Script { return s.cmd(wire.EncodeLine("key", name, "down")) }

// Release sends a key up event.
func (s *Script) Release(name string) *Script { return s.cmd(wire.EncodeLine("key", name, "up")) }

// Advance sends "time <seconds>".
func (s *Script) Advance(seconds float64) *Script {
	return s.cmd("time " + strconv.FormatFloat(seconds, 'f', -1, 64))
}

// Frame requests a frame.
func (s *Script) Frame() *Script { return s.cmd("frame") }

func (s *Script) cmd(line string) *Script {
	s.run = append(s.run, line)
	return s
}

// String renders the whole session input, ending with "end run".
func (s *Script) String() string {
	var sb strings.Builder
	line := func(l string) {
		sb.WriteString(l)
		sb.WriteByte('\n')
	}

	line("begin keymap")
	line("keycount " + strconv.Itoa(len(s.keys)))
	for _, k := range s.keys {
		line(k)
	}
	line("end keymap")
	line("begin params")
	for _, p := range s.params {
		line(p)
	}
	line("end params")
	line("begin run")
	for _, c := range s.run {
		line(c)
	}
	line("end run")
	return sb.String()
}

// KeyColor is the colour reported for one key in a frame.
type KeyColor struct {
	Name  string
	Color color.ARGB
}

// Frame is one "begin frame" ... "end frame" block, in keymap order.
type Frame []KeyColor

// Simulate runs script against def and returns the frames the effect sent.
func Simulate(ctx context.Context, def *effect.Definition, script *Script, opts effect.RunOptions) ([]Frame, error) {
	var out bytes.Buffer
	opts.In = strings.NewReader(script.String())
	opts.Out = &out
	if err := effect.Run(ctx, def, opts); err != nil {
		return nil, err
	}
	return parseFrames(&out)
}

func parseFrames(out *bytes.Buffer) ([]Frame, error) {
	var (
		frames  []Frame
		current Frame
		inFrame bool
	)
	sc := bufio.NewScanner(out)
	for sc.Scan() {
		line := wire.DecodeLine(sc.Text())
		switch {
		case line == "begin frame":
			current, inFrame = Frame{}, true
		case line == "end frame":
			frames = append(frames, current)
			inFrame = false
		case inFrame && strings.HasPrefix(line, "argb "):
			fields := strings.Fields(line)
			if len(fields) != 3 {
				return nil, fmt.Errorf("malformed frame line %q", line)
			}
			c, ok := color.ParseARGB(fields[2])
			if !ok {
				return nil, fmt.Errorf("malformed colour in %q", line)
			}
			current = append(current, KeyColor{Name: fields[1], Color: c})
		}
	}
	return frames, sc.Err()
}
