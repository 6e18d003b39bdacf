package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"

	"esafd/internal/registry"
)

// EventSource is the subscription half of the registry event bus.
type EventSource interface {
	Subscribe() (<-chan registry.Event, func())
}

// eventsHandler streams registry events to the host UI as server-sent
// events. The stream ends on client disconnect, server shutdown, or bus
// close.
func eventsHandler(src EventSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fl, ok := w.(http.Flusher)
		if !ok {
			writeJSONError(w, http.StatusInternalServerError, "streaming unsupported")
			return
		}
		ch, cancel := src.Subscribe()
		defer cancel()

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		w.WriteHeader(http.StatusOK)
		fl.Flush()

		// Join server base context with request context so shutdown ends streams too.
		ctx, cancelJoin := joinContexts(serverBaseCtx, r.Context())
		defer cancelJoin()

		for {
			select {
			case <-ctx.Done():
				return
			case e, open := <-ch:
				if !open {
					return
				}
				data, err := json.Marshal(e)
				if err != nil {
					continue
				}
				if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", e.Name, data); err != nil {
					return
				}
				fl.Flush()
			}
		}
	}
}
