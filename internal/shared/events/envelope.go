package events

// Envelope is the shared event shape published on the platform bus.
// Heights come from the ledger clock, not wall time, so consumers can
// compare event ordering with stored entity timestamps.
type Envelope struct {
	EventID       string `json:"event_id"`
	EventType     string `json:"event_type"`
	SourceService string `json:"source_service"`
	Height        uint64 `json:"height"`
	EntityType    string `json:"entity_type"`
	EntityID      string `json:"entity_id"`
	Actor         string `json:"actor,omitempty"`
	Payload       any    `json:"payload,omitempty"`
}
