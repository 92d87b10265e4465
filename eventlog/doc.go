// Package eventlog records catalog provisioning events in an append-only
// log.
//
// Every catalog rebuild — successful or rejected — is appended as a JSON
// event with a monotonic ID and a SHA-256 checksum computed over the event
// with the checksum field cleared. The log is an operator-facing audit
// trail: ReadAll replays and verifies it, so a truncated or hand-edited
// log is detected rather than silently trusted.
//
// The log never participates in serving the catalog; losing it costs
// history, not correctness.
package eventlog
