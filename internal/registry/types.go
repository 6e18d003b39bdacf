package registry

// State reflects whether the registry lock is still usable.
type State string

const (
	StateOK       State = "ok"
	StatePoisoned State = "poisoned"
)

// Event names published on registry mutations.
const (
	EventAgentStatusSet = "agent_status_set"
	EventTaskAdded      = "task_added"
	EventTaskRemoved    = "task_removed"
)
