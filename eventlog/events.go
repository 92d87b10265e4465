package eventlog

import (
	"time"
)

// EventType represents the type of event in the provisioning log
type EventType string

const (
	// CatalogRebuilt: a catalog rebuild completed and was stored
	CatalogRebuilt EventType = "CATALOG_REBUILT"
	// RebuildFailed: a catalog rebuild was rejected or could not be stored
	RebuildFailed EventType = "REBUILD_FAILED"
)

// Event is one immutable entry in the provisioning log
type Event struct {
	ID        uint64    `json:"id"`        // Sequential event ID (monotonic, 1-indexed)
	Type      EventType `json:"type"`      // Event type
	Timestamp time.Time `json:"timestamp"` // When the event occurred

	// Payload - varies by event type
	Payload EventPayload `json:"payload"`

	// Data integrity
	Checksum string `json:"checksum"` // SHA256 of the event (excluding checksum field)
}

// EventPayload is a generic container for event-specific data
type EventPayload interface{}

// RebuildPayload - recorded when CATALOG_REBUILT occurs
type RebuildPayload struct {
	Tables      int    `json:"tables"`      // Relations in the new catalog
	Attributes  int    `json:"attributes"`  // Attribute rows in the new catalog
	Settings    int    `json:"settings"`    // Setting rows in the new catalog
	Fingerprint string `json:"fingerprint"` // Content hash of the stored catalog
}

// FailurePayload - recorded when REBUILD_FAILED occurs
type FailurePayload struct {
	Reason string `json:"reason"`
}
