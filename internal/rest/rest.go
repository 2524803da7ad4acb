// Package rest serves the plain JSON settlement routes used by the browser
// client, alongside the Connect services.
package rest

import (
	"log/slog"
	"net/http"
	"time"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"

	"github.com/mmynk/evensplit/internal/auth"
	"github.com/mmynk/evensplit/internal/metrics"
	"github.com/mmynk/evensplit/internal/middleware"
	"github.com/mmynk/evensplit/internal/service"
)

// marshaler renders proto responses with lowerCamelCase keys and keeps empty
// balances and plans in the output.
var marshaler = protojson.MarshalOptions{EmitUnpopulated: true}

// Handler serves the settlement, summary and health routes.
type Handler struct {
	settler    *service.Settler
	jwtManager *auth.JWTManager
	started    time.Time
}

// NewHandler creates a Handler.
func NewHandler(settler *service.Settler, jwtManager *auth.JWTManager) *Handler {
	return &Handler{settler: settler, jwtManager: jwtManager, started: time.Now()}
}

// Register adds the routes to mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.Handle("GET /projects/{id}/settlement", middleware.RequireAuthHTTP(h.jwtManager, http.HandlerFunc(h.handleSettlement)))
	mux.Handle("GET /settlement", middleware.RequireAuthHTTP(h.jwtManager, http.HandlerFunc(h.handleSettlement)))
	mux.Handle("GET /projects/{id}/summary", middleware.RequireAuthHTTP(h.jwtManager, http.HandlerFunc(h.handleSummary)))
	mux.Handle("GET /summary", middleware.RequireAuthHTTP(h.jwtManager, http.HandlerFunc(h.handleSummary)))
	mux.HandleFunc("GET /healthz", h.handleHealth)
}

// handleSettlement settles the project named in the path, or the caller's
// default project when there is none.
func (h *Handler) handleSettlement(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	projectID := r.PathValue("id")

	projectID, result, err := h.settler.SettleForMember(ctx,
		middleware.GetUserID(ctx),
		middleware.GetUsername(ctx),
		projectID,
		metrics.SourceREST,
	)
	if err != nil {
		status := service.HTTPStatus(err)
		if status >= http.StatusInternalServerError {
			slog.ErrorContext(ctx, "Settlement failed", "project_id", projectID, "error", err)
		}
		writeError(w, status, err)
		return
	}

	writeProto(w, service.ToProtoSettlement(projectID, result))
}

// handleSummary reports the expense total and the caller's net debt for the
// project in the path, the project_id query parameter, or the caller's
// default project.
func (h *Handler) handleSummary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	projectID := r.PathValue("id")
	if projectID == "" {
		projectID = r.URL.Query().Get("project_id")
	}

	summary, err := h.settler.SummaryForMember(ctx,
		middleware.GetUserID(ctx),
		middleware.GetUsername(ctx),
		projectID,
		metrics.SourceREST,
	)
	if err != nil {
		status := service.HTTPStatus(err)
		if status >= http.StatusInternalServerError {
			slog.ErrorContext(ctx, "Summary failed", "project_id", projectID, "error", err)
		}
		writeError(w, status, err)
		return
	}

	writeProto(w, service.ToProtoSummary(summary))
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	middleware.WriteJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
		"uptime": time.Since(h.started).Round(time.Second).String(),
	})
}

func writeProto(w http.ResponseWriter, msg proto.Message) {
	body, err := marshaler.Marshal(msg)
	if err != nil {
		slog.Error("Failed to marshal response", "error", err)
		middleware.WriteDetail(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		slog.Warn("Failed to write response", "error", err)
	}
}

// writeError reports err as {"detail": ...}. Server errors are masked.
func writeError(w http.ResponseWriter, status int, err error) {
	detail := err.Error()
	if status >= http.StatusInternalServerError {
		detail = http.StatusText(status)
	}
	middleware.WriteDetail(w, status, detail)
}
