package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"esafd/internal/plugin"
	"esafd/pkg/types"
)

// Service defines the registry methods required by the HTTP API layer.
type Service interface {
	AppInfo() types.AppInfo
	AgentStatuses() (map[string]string, error)
	SetAgentStatus(agentID, status string) error
	Tasks() (map[string]string, error)
	AddTask(taskID, taskData string) error
	RemoveTask(taskID string) error
	Status() types.StatusResponse
	Ready() bool
}

// Options carries the optional collaborators of the mux.
type Options struct {
	// Events enables GET /events when set.
	Events EventSource
	// Plugins backs GET /plugins. Nil lists nothing.
	Plugins *plugin.Set
}

// NewMux builds the command surface with no optional collaborators.
func NewMux(svc Service) http.Handler {
	return NewMuxWithOptions(svc, Options{})
}

// NewMuxWithOptions builds the chi router exposing the six registry
// operations plus the operational endpoints.
func NewMuxWithOptions(svc Service, opts Options) http.Handler {
	r := chi.NewRouter()
	// Basic middlewares: request id, real ip, recoverer
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	// Compression for JSON endpoints
	r.Use(middleware.Compress(5))
	if corsEnabled {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: corsAllowedOrigins,
			AllowedMethods: corsAllowedMethods,
			AllowedHeaders: corsAllowedHeaders,
		}))
	}
	r.Use(MetricsMiddleware)
	r.Use(requestLogger)
	// Security headers
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			next.ServeHTTP(w, r)
		})
	})

	r.Get("/app-info", func(w http.ResponseWriter, r *http.Request) {
		recordOp("get_app_info", nil)
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(svc.AppInfo()); err != nil {
			writeJSONError(w, http.StatusInternalServerError, "failed to encode response")
			return
		}
	})

	r.Get("/agents", func(w http.ResponseWriter, r *http.Request) {
		agents, err := svc.AgentStatuses()
		recordOp("get_agent_status", err)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(types.AgentsResponse{Agents: agents}); err != nil {
			writeJSONError(w, http.StatusInternalServerError, "failed to encode response")
			return
		}
	})

	r.Put("/agents/{agentID}", func(w http.ResponseWriter, r *http.Request) {
		var req types.UpdateAgentStatusRequest
		if !decodeJSONBody(w, r, &req) {
			return
		}
		// Any status string is accepted, including empty.
		err := svc.SetAgentStatus(chi.URLParam(r, "agentID"), req.Status)
		recordOp("update_agent_status", err)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		updateRegistryGauges(svc)
		w.WriteHeader(http.StatusNoContent)
	})

	r.Get("/tasks", func(w http.ResponseWriter, r *http.Request) {
		tasks, err := svc.Tasks()
		recordOp("get_task_list", err)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(types.TasksResponse{Tasks: tasks}); err != nil {
			writeJSONError(w, http.StatusInternalServerError, "failed to encode response")
			return
		}
	})

	r.Post("/tasks", func(w http.ResponseWriter, r *http.Request) {
		var req types.AddTaskRequest
		if !decodeJSONBody(w, r, &req) {
			return
		}
		// Ids are caller-assigned; the server only fills the gap.
		if req.TaskID == "" {
			req.TaskID = uuid.NewString()
		}
		err := svc.AddTask(req.TaskID, req.TaskData)
		recordOp("add_task", err)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		updateRegistryGauges(svc)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(types.AddTaskResponse{TaskID: req.TaskID}); err != nil {
			return
		}
	})

	r.Delete("/tasks/{taskID}", func(w http.ResponseWriter, r *http.Request) {
		// Removing an absent id still succeeds (idempotent delete).
		err := svc.RemoveTask(chi.URLParam(r, "taskID"))
		recordOp("remove_task", err)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		updateRegistryGauges(svc)
		w.WriteHeader(http.StatusNoContent)
	})

	r.Get("/status", func(w http.ResponseWriter, r *http.Request) {
		updateRegistryGauges(svc)
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(svc.Status()); err != nil {
			writeJSONError(w, http.StatusInternalServerError, "failed to encode response")
			return
		}
	})

	r.Get("/plugins", func(w http.ResponseWriter, r *http.Request) {
		resp := types.PluginsResponse{Plugins: []string{}}
		if opts.Plugins != nil {
			resp.Plugins = opts.Plugins.Names()
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			writeJSONError(w, http.StatusInternalServerError, "failed to encode response")
			return
		}
	})

	if opts.Events != nil {
		r.Get("/events", eventsHandler(opts.Events))
	}

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if svc.Ready() {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("ready"))
			return
		}
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("poisoned"))
	})

	// Prometheus metrics endpoint
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	MountSwagger(r)

	return r
}

// decodeJSONBody enforces the JSON content type and body-size limit, then
// decodes into dst. Writes the error response itself and returns false on
// failure.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	ct := r.Header.Get("Content-Type")
	if ct == "" || !strings.HasPrefix(strings.ToLower(ct), "application/json") {
		writeJSONError(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
		return false
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		// An exceeded size limit surfaces here too; report 400 either way.
		writeJSONError(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	return true
}
