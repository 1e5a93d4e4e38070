package advisor

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/oraguide/oraguide/pkg/serializer"
	"github.com/oraguide/oraguide/pkg/snapshot"
)

// maxSnapshotBodyBytes caps the request body; snapshots are small.
const maxSnapshotBodyBytes = 1 << 20

// HandleRecommendations serves POST requests carrying a diagnostic
// snapshot JSON body and responds with the computed recommendations.
func (a *Advisor) HandleRecommendations(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		slog.Error("method not allowed", "method", r.Method)
		w.Header().Set("Allow", http.MethodPost)
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	var snap snapshot.Snapshot
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxSnapshotBodyBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&snap); err != nil {
		slog.Error("failed to decode snapshot body", "error", err)
		http.Error(w, "Bad Request: malformed snapshot body", http.StatusBadRequest)
		return
	}

	if err := snap.Validate(); err != nil {
		slog.Error("invalid snapshot", "error", err)
		http.Error(w, "Bad Request: "+err.Error(), http.StatusBadRequest)
		return
	}

	recs, err := a.Advise(&snap)
	if err != nil {
		slog.Error("failed to compute recommendations", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	serializer.RespondJSON(w, http.StatusOK, recs)
}
