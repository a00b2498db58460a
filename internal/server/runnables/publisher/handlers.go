package publisher

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/atlanticdynamic/mapctl/internal/config"
	"github.com/atlanticdynamic/mapctl/internal/config/snapshot"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

// Route paths
const (
	PathControls      = "/controls.json"
	PathSectionPrefix = "/controls/"
	PathHealth        = "/healthz"
)

const contentTypeJSON = "application/json"

var jsonOptions = protojson.MarshalOptions{Indent: "  "}

// SnapshotProvider supplies the snapshot to publish. cfgloader.Runner implements it.
type SnapshotProvider interface {
	GetSnapshot() *snapshot.Snapshot
}

type handlers struct {
	provider SnapshotProvider
}

// controls serves the whole configuration document.
func (h *handlers) controls(w http.ResponseWriter, r *http.Request) {
	snap, ok := h.current(w, r)
	if !ok {
		return
	}
	h.writeSnapshot(w, r, snap, snap.GetConfig().ToProto)
}

// section serves one control section, addressed as /controls/{name}.json.
func (h *handlers) section(w http.ResponseWriter, r *http.Request) {
	snap, ok := h.current(w, r)
	if !ok {
		return
	}

	name, found := strings.CutSuffix(strings.TrimPrefix(r.URL.Path, PathSectionPrefix), ".json")
	if !found || name == "" || strings.Contains(name, "/") {
		writeError(w, http.StatusNotFound, fmt.Sprintf("no such document: %s", r.URL.Path))
		return
	}

	sect, ok := snap.GetConfig().Section(name)
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Sprintf("control '%s' is not configured", name))
		return
	}
	h.writeSnapshot(w, r, snap, sect.ToProto)
}

// health reports whether a snapshot is being served.
func (h *handlers) health(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r) {
		return
	}

	fields := map[string]any{"status": "ok"}
	status := http.StatusOK
	if snap := h.provider.GetSnapshot(); snap != nil {
		fields["snapshot"] = snap.GetID()
		fields["state"] = snap.GetState()
		fields["controls"] = toAnySlice(snap.GetConfig().Controls())
	} else {
		fields["status"] = "waiting for configuration"
		status = http.StatusServiceUnavailable
	}

	body, err := structpb.NewStruct(fields)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, status, body)
}

// current returns the snapshot to serve, writing an error response when there is none.
func (h *handlers) current(w http.ResponseWriter, r *http.Request) (*snapshot.Snapshot, bool) {
	if !allowMethod(w, r) {
		return nil, false
	}
	snap := h.provider.GetSnapshot()
	if snap == nil || snap.GetConfig() == nil {
		writeError(w, http.StatusServiceUnavailable, "no configuration loaded")
		return nil, false
	}
	return snap, true
}

func (h *handlers) writeSnapshot(
	w http.ResponseWriter,
	r *http.Request,
	snap *snapshot.Snapshot,
	build func() (*structpb.Struct, error),
) {
	etag := snap.ETag()
	w.Header().Set("ETag", etag)
	if match := r.Header.Get("If-None-Match"); match != "" && (match == etag || match == "*") {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	pb, err := build()
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("%s: %v", config.ErrFailedToConvertConfig, err))
		return
	}
	writeJSON(w, http.StatusOK, pb)
}

func allowMethod(w http.ResponseWriter, r *http.Request) bool {
	if r.Method == http.MethodGet || r.Method == http.MethodHead {
		return true
	}
	w.Header().Set("Allow", "GET, HEAD")
	writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	return false
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, &structpb.Struct{Fields: map[string]*structpb.Value{
		"error": structpb.NewStringValue(msg),
	}})
}

func writeJSON(w http.ResponseWriter, status int, m proto.Message) {
	body, err := jsonOptions.Marshal(m)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	_, _ = w.Write(append(body, '\n'))
}

func toAnySlice(in []string) []any {
	out := make([]any, len(in))
	for i, s := range in {
		out[i] = s
	}
	return out
}
