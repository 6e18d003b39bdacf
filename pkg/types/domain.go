package types

// AppInfo identifies the application to the host UI.
type AppInfo struct {
	// Application name.
	// example: ESAF Framework
	Name string `json:"name" example:"ESAF Framework"`
	// Semantic version of the backend.
	// example: 0.1.0
	Version string `json:"version" example:"0.1.0"`
	// Human-friendly description.
	// example: Evolved Synergistic Agentic Framework
	Description string `json:"description" example:"Evolved Synergistic Agentic Framework"`
}
