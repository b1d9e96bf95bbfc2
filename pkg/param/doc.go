/*
Package param declares the typed, user-configurable settings of an effect.

Every parameter belongs to one of a closed set of kinds. The kind decides how
the parameter is announced to the daemon (its definition string) and how
values sent back by the daemon are decoded:

	speed := &param.Double{Name: "speed", Prefix: "Speed:", Default: 1, Min: 0.1, Max: 10}
	param.Definition(speed) // "double speed Speed%3A  1.0 0.1 10.0"
	param.SetFromWire(speed, "2.5")

Numeric bounds are metadata for the daemon's UI. Values received over the wire
are stored as-is.
*/
package param
