// Package anaume decodes snapshots retrieved from hierarchical realtime
// data stores into typed Go values, filling caller-supplied defaults for
// top-level fields missing from the raw payload.
//
// The name comes from 穴埋め (anaume), "filling in the blanks". Stores of
// this kind cannot represent empty collections: a record saved with an empty
// list comes back with the field missing entirely, and a plain decode either
// fails or silently drops the field. Decoding through a default instance
// restores the caller's intended empties before structured decoding runs.
//
// Key properties:
//   - Only true key absence triggers substitution; a present null or empty
//     value is never overwritten by a default
//   - Completion is shallow: top-level fields of the record only
//   - Non-record payloads, including wholly-absent snapshots, bypass
//     completion and surface the decoder's own errors
//   - Pure: inputs are never mutated, no state outlives a call
package anaume
