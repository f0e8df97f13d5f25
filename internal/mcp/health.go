package mcp

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/blendsdk/fluentui-mcp/internal/indexer"
)

// HealthResponse represents the JSON response from the health check endpoint.
type HealthResponse struct {
	Status     string `json:"status"`
	Index      string `json:"index"`
	Generation uint64 `json:"generation,omitempty"`
	Documents  int    `json:"documents,omitempty"`
	Timestamp  string `json:"timestamp"`
}

// NewHealthHandler creates an HTTP handler for the /health endpoint. The
// server is healthy once a generation has been published; before the first
// successful build it reports 503.
func NewHealthHandler(builder *indexer.Builder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response := HealthResponse{
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		}

		w.Header().Set("Content-Type", "application/json")

		gen := builder.Active()
		if gen == nil {
			response.Status = "unhealthy"
			response.Index = "not built"
			w.WriteHeader(http.StatusServiceUnavailable)
			json.NewEncoder(w).Encode(response)
			return
		}

		response.Status = "healthy"
		response.Index = "ready"
		response.Generation = gen.Num
		response.Documents = gen.Store.Len()
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(response)
	}
}
