package models

import "encoding/json"

// EventKind identifies the handler an outbox event is dispatched to.
type EventKind string

// Outbox event kinds.
const (
	EventProtocolUploaded  EventKind = "PROTOCOL_UPLOADED"
	EventProtocolReExtract EventKind = "PROTOCOL_RE_EXTRACT"
	EventProtocolArchived  EventKind = "PROTOCOL_ARCHIVED"
)

// ProtocolEventPayload is the payload of all protocol-scoped outbox events.
type ProtocolEventPayload struct {
	ProtocolID string `json:"protocol_id"`
	// Title is carried for log readability only; the handler re-reads the
	// protocol row.
	Title string `json:"title,omitempty"`
}

// Marshal serializes the payload for the outbox row.
func (p ProtocolEventPayload) Marshal() (map[string]interface{}, error) {
	raw, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	var m map[string]interface{}
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// DecodeProtocolEventPayload extracts the typed payload from an outbox row.
func DecodeProtocolEventPayload(m map[string]interface{}) (ProtocolEventPayload, error) {
	raw, err := json.Marshal(m)
	if err != nil {
		return ProtocolEventPayload{}, err
	}
	var p ProtocolEventPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return ProtocolEventPayload{}, err
	}
	return p, nil
}
