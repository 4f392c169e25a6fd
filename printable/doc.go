// Package printable provides erased containers for payloads that print
// themselves, together with a few sample payloads of different sizes.
package printable

//go:generate go run ../cmd/erasure generate --contract printable.yaml --out printable_gen.go
