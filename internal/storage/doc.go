// Package storage defines the flag persistence contract for the
// alignment ledger and the typed adapter the domain layers use.
//
// The low-level FlagStore interface speaks raw (character, field) JSON
// payloads so implementations stay narrow; Flags layers field names and
// codecs on top.
package storage
