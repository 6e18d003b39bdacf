package types

// AgentsResponse wraps the snapshot returned by GET /agents.
type AgentsResponse struct {
	// Agent id to status string, copied under the registry lock.
	Agents map[string]string `json:"agents"`
}

// TasksResponse wraps the snapshot returned by GET /tasks.
type TasksResponse struct {
	// Task id to opaque payload string, copied under the registry lock.
	Tasks map[string]string `json:"tasks"`
}

// UpdateAgentStatusRequest is the body of PUT /agents/{agentID}.
type UpdateAgentStatusRequest struct {
	// New status string for the agent. Any string is accepted, including empty.
	// example: running
	Status string `json:"status" example:"running"`
}

// AddTaskRequest is the body of POST /tasks.
type AddTaskRequest struct {
	// Task identifier. If empty, the server assigns one.
	// example: t-42
	TaskID string `json:"task_id,omitempty" example:"t-42"`
	// Opaque task payload. No schema is enforced.
	// example: {"goal":"summarize"}
	TaskData string `json:"task_data" example:"{\"goal\":\"summarize\"}"`
}

// AddTaskResponse echoes the id the task was stored under.
type AddTaskResponse struct {
	// Identifier the task was stored under (caller-supplied or server-assigned).
	// example: t-42
	TaskID string `json:"task_id" example:"t-42"`
}

// ErrorResponse is a consistent JSON error payload.
type ErrorResponse struct {
	// Error message.
	// example: invalid JSON body
	Error string `json:"error" example:"invalid JSON body"`
	// HTTP status code.
	// example: 400
	Code int `json:"code" example:"400"`
}

// StatusResponse is returned by GET /status.
type StatusResponse struct {
	// Number of agent entries currently in the registry.
	// example: 3
	AgentCount int `json:"agent_count" example:"3"`
	// Number of task entries currently in the registry.
	// example: 7
	TaskCount int `json:"task_count" example:"7"`
	// Registry state (ok or poisoned).
	// example: ok
	State string `json:"state" example:"ok"`
	// Last error observed by the registry (if any).
	LastError string `json:"last_error,omitempty"`
	// Uptime of the registry in seconds.
	// example: 3600
	UptimeSeconds int64 `json:"uptime_seconds" example:"3600"`
	// Server time in unix seconds.
	// example: 1700000000
	ServerTimeUnix int64 `json:"server_time_unix" example:"1700000000"`
}

// PluginsResponse lists host plugins registered at startup.
type PluginsResponse struct {
	// Names of registered plugins, e.g. fs, dialog, shell.
	Plugins []string `json:"plugins"`
}
