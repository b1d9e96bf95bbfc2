/*
Package manifest loads declarative effect descriptions from YAML or TOML.

A manifest carries everything --ckb-info announces plus the name of the Go
implementation that serves sessions:

	guid: 62909e5a-5f3e-4720-8638-f89c32367fd1
	name: Gradient
	effect: gradient
	params:
	  - kind: agradient
	    name: gradient
	    prefix: "Gradient:"
	    default: "0:ffffffff"
	presets:
	  - name: Rainbow
	    values:
	      gradient: "0:ffff0000 50:ff00ffff 100:ffff0000"
	      duration: 2

Defaults and preset values use the same text the daemon sends on the wire.
Preset values are announced in lexical order of their names.
*/
package manifest
