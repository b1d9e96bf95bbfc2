/*
Package ports defines the driven ports (interfaces) of an effect process.

  - SnapshotStore: persists session snapshots (memory, file or redis adapters).

RunSnapshotStoreContract is a shared test suite every adapter runs.
*/
package ports
