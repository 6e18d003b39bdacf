package registry

// Config encapsulates tunables for Registry construction.
type Config struct {
	// Publisher receives mutation events. Nil means drop them.
	Publisher EventPublisher
}

// New constructs a Registry with both mappings empty and no event publisher.
func New() *Registry {
	return NewWithConfig(Config{})
}

// NewWithConfig constructs a Registry from Config, applying defaults.
func NewWithConfig(cfg Config) *Registry {
	r := &Registry{
		agents: make(map[string]string),
		tasks:  make(map[string]string),
		pub:    cfg.Publisher,
	}
	if r.pub == nil {
		r.pub = noopPublisher{}
	}
	r.startTime = now()
	return r
}
