/*
Package protocol implements the session state machine an effect runs while the
ckb-next daemon drives it over stdin and stdout.

A session moves through four states:

	AwaitingKeymap -> AwaitingParams -> Running -> Ended

The keymap exchange fixes the set of keys for the session. The params
exchange decodes the current parameter values; it recurs whenever the daemon
sends "begin params" while running. In the running state the engine
dispatches lifecycle, keypress, time and frame commands to the Effect and
answers every frame request with the colour of each key.

Lines that do not fit the grammar expected in the current state are skipped.
Structural failures, such as input ending before a required marker, abort the
session with a *ProtocolError whose Site selects the process exit status.
*/
package protocol
