// Package erasure stores values of arbitrary payload types behind a uniform
// container type for a capability contract I, while controlling how the
// storage for the value is obtained.
//
// Four storage strategies are provided:
//
//   - [Heap]: the value always lives in its own heap cell.
//   - [Shared]: a reference counted heap cell, shared between copies until a
//     mutating access forces a private copy (copy on write).
//   - [Inline]: the value lives inside the container if it fits into
//     [Capacity] bytes, else in a heap cell.
//   - [SharedInline]: combines [Shared] and [Inline].
//
// A payload type is bound to a contract with [Bind]. Packages generated by
// the erasure command wrap the four strategies for a concrete contract and
// expose the contract methods directly.
//
// Containers must not be copied by assignment. Use CopyFrom, MoveFrom and
// Swap, which maintain reference counts and relocate inline values.
package erasure
