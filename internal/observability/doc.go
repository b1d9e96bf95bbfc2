/*
Package observability exposes what a running effect is doing without touching
the protocol streams: Prometheus metrics fed by engine hooks and an optional
debug HTTP listener serving /metrics and /state.
*/
package observability
