/*
Package ckbfx builds lighting effects for the ckb-next daemon in Go.

The daemon launches an effect as a child process, asks it to describe itself
with --ckb-info and drives it with a line protocol on stdin/stdout under
--ckb-run. This module implements that protocol end to end:

  - pkg/wire: percent-encoded line transport.
  - pkg/color: 3 and 4 channel colours and piecewise-linear gradients.
  - pkg/param: the typed parameters an effect declares.
  - pkg/protocol: the session state machine and the Effect hook interface.
  - pkg/effect: the info block and the process entry point.
  - pkg/manifest: declarative effect metadata in YAML or TOML.

# Usage

An effect implemented in Go embeds protocol.Base and overrides the hooks it
needs:

	type solid struct {
		protocol.Base
		color *param.ARGB
	}

	func (s *solid) UpdateColors(keys *protocol.Keymap) {
		keys.Fill(s.color.Value)
	}

	func main() {
		c := &param.ARGB{Name: "color", Prefix: "Colour:", Default: color.White.Opaque()}
		effect.Execute(&effect.Definition{
			Info:   effect.Info{GUID: "{...}", Name: "Solid"},
			Params: []param.Param{c},
			Effect: &solid{color: c},
		})
	}

Effects registered with a registry can instead be described by a manifest and
launched through the ckbfx command (see Load and cmd/ckbfx).

# Observability

Logs never touch stdout. A running session can expose Prometheus metrics and
its latest snapshot over HTTP (--metrics-addr) and persist snapshots to a
directory or Redis (--snapshot) for later inspection with "ckbfx inspect".
*/
package ckbfx
