package registry

// Event represents a registry mutation event.
// Minimal and stable: name + entry key and optional fields via key/values.
type Event struct {
	Name   string         `json:"name"`
	Key    string         `json:"key"`
	Fields map[string]any `json:"fields,omitempty"`
}

// EventPublisher receives events from the registry. Publish is invoked
// synchronously while the registry lock is held; a publisher that panics
// poisons the registry.
type EventPublisher interface {
	Publish(Event)
}

// noopPublisher is the default; it drops events.
type noopPublisher struct{}

func (noopPublisher) Publish(Event) {}
