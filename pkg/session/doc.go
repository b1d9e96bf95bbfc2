/*
Package session records what an effect session looks like while it runs.

The Recorder observes a protocol.Engine through its hooks. It keeps the latest
snapshot in memory for the debug endpoint and persists snapshots to a
ports.SnapshotStore after every parameter exchange and when the run ends, so
a session can be inspected after the daemon has stopped the effect.
*/
package session
