package registry

import (
	"esafd/pkg/types"
)

// Ready reports whether the registry can still serve operations.
func (r *Registry) Ready() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return !r.poisoned
}

// Status builds a point-in-time report for /status.
func (r *Registry) Status() types.StatusResponse {
	r.mu.RLock()
	defer r.mu.RUnlock()
	state := StateOK
	if r.poisoned {
		state = StatePoisoned
	}
	n := now()
	return types.StatusResponse{
		AgentCount:     len(r.agents),
		TaskCount:      len(r.tasks),
		State:          string(state),
		LastError:      r.lastErr,
		UptimeSeconds:  int64(n.Sub(r.startTime).Seconds()),
		ServerTimeUnix: n.Unix(),
	}
}
