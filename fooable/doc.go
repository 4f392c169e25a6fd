// Package fooable provides erased containers for payloads holding an int
// value, one per storage strategy of package erasure.
package fooable

//go:generate go run ../cmd/erasure generate --contract fooable.yaml --out fooable_gen.go
