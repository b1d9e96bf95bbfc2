package protocol

import (
	"errors"
	"fmt"
)

// Site identifies where a session failed. Each site has its own exit status
// so the daemon's logs tell the failures apart.
type Site int

const (
	SiteUsage Site = iota + 1
	SiteMarker
	SiteKeycount
	SiteKeymap
	SiteParams
	SiteRunLoop
	SiteHook
	SiteIO
)

var siteNames = map[Site]string{
	SiteUsage:    "usage",
	SiteMarker:   "marker",
	SiteKeycount: "keycount",
	SiteKeymap:   "keymap",
	SiteParams:   "params",
	SiteRunLoop:  "run",
	SiteHook:     "hook",
	SiteIO:       "io",
}

func (s Site) String() string {
	if name, ok := siteNames[s]; ok {
		return name
	}
	return fmt.Sprintf("site(%d)", int(s))
}

// ExitCode is the process status for a failure at s: -1 for usage errors,
// -2 for a missing marker and so on, as an unsigned byte.
func (s Site) ExitCode() int {
	return 256 - int(s)
}

// ErrUnexpectedEOF is wrapped when input ends while the engine still needs a line.
var ErrUnexpectedEOF = errors.New("unexpected end of input")

// ProtocolError is a fatal session failure.
type ProtocolError struct {
	Site Site
	Msg  string
	Err  error
}

func (e *ProtocolError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *ProtocolError) Unwrap() error {
	return e.Err
}

// ExitCode is the process status for this failure.
func (e *ProtocolError) ExitCode() int {
	return e.Site.ExitCode()
}

// ExitCode returns the exit status for err: 0 for nil, the site status for a
// *ProtocolError and the hook failure status for anything else.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var perr *ProtocolError
	if errors.As(err, &perr) {
		return perr.ExitCode()
	}
	return SiteHook.ExitCode()
}

func fatal(site Site, err error, format string, args ...any) *ProtocolError {
	return &ProtocolError{Site: site, Msg: fmt.Sprintf(format, args...), Err: err}
}
