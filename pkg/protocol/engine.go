package protocol

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"regexp"
	"strconv"
	"time"

	"github.com/aretw0/ckbfx/pkg/param"
	"github.com/aretw0/ckbfx/pkg/wire"
)

// State is the position of a session in the protocol.
type State int

const (
	StateAwaitingKeymap State = iota
	StateAwaitingParams
	StateRunning
	StateEnded
)

func (s State) String() string {
	switch s {
	case StateAwaitingKeymap:
		return "awaiting_keymap"
	case StateAwaitingParams:
		return "awaiting_params"
	case StateRunning:
		return "running"
	case StateEnded:
		return "ended"
	}
	return "unknown"
}

// Protocol keywords.
const (
	lineBeginKeymap = "begin keymap"
	lineEndKeymap   = "end keymap"
	lineBeginParams = "begin params"
	lineEndParams   = "end params"
	lineBeginRun    = "begin run"
	lineEndRun      = "end run"
	lineBeginFrame  = "begin frame"
	lineEndFrame    = "end frame"
	lineStart       = "start"
	lineStop        = "stop"
	lineFrame       = "frame"
)

var (
	keycountPattern = regexp.MustCompile(`^keycount (\d+)`)
	keyPattern      = regexp.MustCompile(`^key (\w+) (\d+),(\d+)`)
	paramPattern    = regexp.MustCompile(`^param (\w+) (.+)`)
	keypressPattern = regexp.MustCompile(`^key (?:(\d+),(\d+)|(\w+)) (down|up)`)
	timePattern     = regexp.MustCompile(`^time (\S+)`)
)

// Engine drives one session. It owns the keymap and the parameter set for
// the lifetime of Run and is not safe for concurrent use.
type Engine struct {
	effect Effect
	params *param.Set

	in     *bufio.Reader
	out    *bufio.Writer
	logger *slog.Logger
	hooks  Hooks

	keys  *Keymap
	state State
}

// Option configures an Engine.
type Option func(*Engine)

// WithIO sets the streams the session is read from and written to.
// The default is stdin and stdout.
func WithIO(r io.Reader, w io.Writer) Option {
	return func(e *Engine) {
		if r != nil {
			e.in = bufio.NewReader(r)
		}
		if w != nil {
			e.out = bufio.NewWriter(w)
		}
	}
}

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithHooks registers session observers.
func WithHooks(hooks Hooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// NewEngine creates an engine for effect. params may be nil for effects
// without parameters.
func NewEngine(effect Effect, params *param.Set, opts ...Option) *Engine {
	if effect == nil {
		effect = Base{}
	}
	e := &Engine{
		effect: effect,
		params: params,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		state:  StateAwaitingKeymap,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.in == nil {
		e.in = bufio.NewReader(os.Stdin)
	}
	if e.out == nil {
		e.out = bufio.NewWriter(os.Stdout)
	}
	return e
}

// State reports where the session currently is.
func (e *Engine) State() State {
	return e.state
}

// Keymap returns the session's keys, or nil before the keymap exchange.
func (e *Engine) Keymap() *Keymap {
	return e.keys
}

// Params returns the session's parameters.
func (e *Engine) Params() *param.Set {
	return e.params
}

// Run executes the session until "end run" or a fatal error.
func (e *Engine) Run() error {
	keys, err := e.readKeymap()
	if err != nil {
		return err
	}
	e.keys = keys
	e.logger.Debug("keymap loaded", "keys", keys.Len())
	if e.hooks.OnKeymapLoaded != nil {
		e.hooks.OnKeymapLoaded(keys)
	}

	e.state = StateAwaitingParams
	if err := e.skipUntil(lineBeginParams); err != nil {
		return err
	}
	if err := e.readParams(); err != nil {
		return err
	}
	if err := e.skipUntil(lineBeginRun); err != nil {
		return err
	}

	e.state = StateRunning
	if err := e.emit(lineBeginRun); err != nil {
		return err
	}

	for e.state == StateRunning {
		line, err := e.next()
		if err != nil {
			return e.eof(err, SiteRunLoop, "reached end of input in run loop")
		}
		if err := e.dispatch(line); err != nil {
			return err
		}
	}

	if e.hooks.OnRunEnded != nil {
		e.hooks.OnRunEnded(e.keys, e.params)
	}
	return e.emit(lineEndRun)
}

func (e *Engine) dispatch(line string) error {
	switch line {
	case lineEndRun:
		e.state = StateEnded
		return nil
	case lineStart:
		e.effect.Start()
		return nil
	case lineStop:
		e.effect.Stop()
		return nil
	case lineBeginParams:
		return e.readParams()
	case lineFrame:
		return e.writeFrame()
	}

	if m := keypressPattern.FindStringSubmatch(line); m != nil {
		e.keypress(m)
		return nil
	}
	if m := timePattern.FindStringSubmatch(line); m != nil {
		delta, err := strconv.ParseFloat(m[1], 64)
		if err != nil || math.IsNaN(delta) || math.IsInf(delta, 0) {
			e.skip(line)
			return nil
		}
		e.effect.AdvanceTime(delta)
		return nil
	}

	e.skip(line)
	return nil
}

func (e *Engine) readKeymap() (*Keymap, error) {
	if err := e.skipUntil(lineBeginKeymap); err != nil {
		return nil, err
	}

	line, err := e.next()
	if err != nil {
		return nil, e.eof(err, SiteKeycount, `"begin keymap" not followed by "keycount"`)
	}
	m := keycountPattern.FindStringSubmatch(line)
	if m == nil {
		return nil, fatal(SiteKeycount, nil, `"begin keymap" not followed by "keycount"`)
	}
	count, err := strconv.Atoi(m[1])
	if err != nil {
		return nil, fatal(SiteKeycount, err, "invalid keycount %q", m[1])
	}

	keys := NewKeymap()
	for count > 0 {
		line, err := e.next()
		if err != nil {
			return nil, e.eof(err, SiteKeymap, "reached end of input reading keymap (%d keys missing)", count)
		}
		m := keyPattern.FindStringSubmatch(line)
		if m == nil {
			e.skip(line)
			continue
		}
		x, errX := strconv.Atoi(m[2])
		y, errY := strconv.Atoi(m[3])
		if errX != nil || errY != nil {
			e.skip(line)
			continue
		}
		if !keys.add(&Key{Name: m[1], X: x, Y: y}) {
			e.logger.Warn("duplicate key in keymap", "key", m[1])
		}
		count--
	}

	if err := e.skipUntil(lineEndKeymap); err != nil {
		return nil, err
	}
	return keys, nil
}

// readParams consumes "param NAME VALUE" lines up to "end params". The
// "begin params" line has already been read.
func (e *Engine) readParams() error {
	var changed []string
	for {
		line, err := e.next()
		if err != nil {
			return e.eof(err, SiteParams, "reached end of input reading parameters")
		}
		if line == lineEndParams {
			break
		}

		m := paramPattern.FindStringSubmatch(line)
		if m == nil {
			e.skip(line)
			continue
		}
		p, ok := e.params.Get(m[1])
		if !ok {
			e.logger.Debug("ignoring unknown parameter", "param", m[1])
			continue
		}
		if err := param.SetFromWire(p, m[2]); err != nil {
			e.logger.Warn("ignoring parameter value", "param", m[1], "error", err)
			continue
		}
		if p.Kind() == param.KindLabel {
			continue
		}
		changed = append(changed, m[1])
		e.effect.ParamChanged(p)
	}

	if e.hooks.OnParamsApplied != nil {
		e.hooks.OnParamsApplied(e.params, changed)
	}
	return nil
}

func (e *Engine) keypress(m []string) {
	var (
		key *Key
		ok  bool
	)
	if m[1] != "" {
		x, errX := strconv.Atoi(m[1])
		y, errY := strconv.Atoi(m[2])
		if errX != nil || errY != nil {
			return
		}
		key, ok = e.keys.At(x, y)
	} else {
		key, ok = e.keys.Get(m[3])
	}
	if !ok {
		e.logger.Debug("keypress for unknown key", "ref", m[0])
		return
	}

	pressed := m[4] == "down"
	e.effect.Keypress(key, pressed)
	if e.hooks.OnKeypress != nil {
		e.hooks.OnKeypress(key, pressed)
	}
}

func (e *Engine) writeFrame() error {
	started := time.Now()
	e.effect.UpdateColors(e.keys)

	if err := e.write(lineBeginFrame); err != nil {
		return err
	}
	for _, k := range e.keys.Keys() {
		if err := e.write(wire.EncodeLine("argb", k.Name, k.Color.String())); err != nil {
			return err
		}
	}
	if err := e.emit(lineEndFrame); err != nil {
		return err
	}

	if e.hooks.OnFrame != nil {
		e.hooks.OnFrame(e.keys, time.Since(started))
	}
	return nil
}

// skipUntil discards lines until one equals marker.
func (e *Engine) skipUntil(marker string) error {
	for {
		line, err := e.next()
		if err != nil {
			return e.eof(err, SiteMarker, "reached end of input looking for %q", marker)
		}
		if line == marker {
			return nil
		}
	}
}

// next reads one logical line.
func (e *Engine) next() (string, error) {
	raw, err := e.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && raw != "" {
			return wire.DecodeLine(raw), nil
		}
		return "", err
	}
	return wire.DecodeLine(raw), nil
}

func (e *Engine) skip(line string) {
	if e.hooks.OnLineSkipped != nil {
		e.hooks.OnLineSkipped(e.state, line)
	}
}

// eof turns a read error into a fatal error at site. Errors other than end
// of input are reported as I/O failures.
func (e *Engine) eof(err error, site Site, format string, args ...any) error {
	if errors.Is(err, io.EOF) {
		return fatal(site, ErrUnexpectedEOF, format, args...)
	}
	return fatal(SiteIO, err, "read failed in state %s", e.state)
}

func (e *Engine) write(line string) error {
	if _, err := fmt.Fprintln(e.out, line); err != nil {
		return fatal(SiteIO, err, "write failed")
	}
	return nil
}

// emit writes line and flushes, handing control back to the daemon.
func (e *Engine) emit(line string) error {
	if err := e.write(line); err != nil {
		return err
	}
	if err := e.out.Flush(); err != nil {
		return fatal(SiteIO, err, "flush failed")
	}
	return nil
}
