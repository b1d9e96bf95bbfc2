// Package domain contains the records shared between the session recorder
// and the snapshot stores.
package domain
