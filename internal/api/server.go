// Package api serves a simulation over HTTP for scenario building and
// observation. GET endpoints are public (read-only); POST endpoints mutate
// the simulation and require a bearer token when an admin key is set.
//
// The server owns the live Simulation behind a factory: reset replaces the
// instance wholesale. A single mutex serializes access, since a tick is the
// atomic unit of mutation and nothing may observe state mid-tick.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/amaz421326/PixelSociety/internal/engine"
	"github.com/amaz421326/PixelSociety/internal/persistence"
	"github.com/amaz421326/PixelSociety/internal/personality"
	"github.com/amaz421326/PixelSociety/internal/reports"
	"github.com/amaz421326/PixelSociety/internal/scenario"
)

// maxRunSteps bounds a single run request so one call cannot monopolize
// the server.
const maxRunSteps = 1000

// Server serves one simulation over HTTP.
type Server struct {
	Addr     string
	AdminKey string // Bearer token for POST endpoints. Empty = POST open (dev mode).
	Factory  func() *engine.Simulation
	Store    *persistence.Store // Optional run history sink.

	mu    sync.Mutex
	sim   *engine.Simulation
	runID string

	httpServer *http.Server
}

// New creates a server and constructs its initial simulation via the factory.
func New(addr, adminKey string, factory func() *engine.Simulation, store *persistence.Store) *Server {
	s := &Server{
		Addr:     addr,
		AdminKey: adminKey,
		Factory:  factory,
		Store:    store,
	}
	s.sim = factory()
	s.beginRecording()
	return s
}

// Handler builds the routed handler. Exposed for tests.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	// Public endpoints (read-only observation).
	mux.HandleFunc("/api/v1/status", s.handleStatus)
	mux.HandleFunc("/api/v1/personalities", s.handlePersonalities)
	mux.HandleFunc("/api/v1/agents", s.handleAgents)
	mux.HandleFunc("/api/v1/agent/", s.handleAgentDetail)
	mux.HandleFunc("/api/v1/world", s.handleWorld)
	mux.HandleFunc("/api/v1/report", s.handleReport)
	mux.HandleFunc("/api/v1/history", s.handleHistory)
	mux.HandleFunc("/api/v1/events/presets", s.handleEventPresets)

	// Mutating endpoints (scenario building and stepping).
	mux.HandleFunc("/api/v1/regions", s.adminOnly(s.handleAddRegion))
	mux.HandleFunc("/api/v1/tasks", s.adminOnly(s.handleAssignTask))
	mux.HandleFunc("/api/v1/events", s.adminOnly(s.handleScheduleEvent))
	mux.HandleFunc("/api/v1/run", s.adminOnly(s.handleRun))
	mux.HandleFunc("/api/v1/reset", s.adminOnly(s.handleReset))

	return corsMiddleware(mux)
}

// Start begins serving. Blocks until Shutdown is called.
func (s *Server) Start() error {
	s.httpServer = &http.Server{Addr: s.Addr, Handler: s.Handler()}
	slog.Info("HTTP API starting", "addr", s.Addr, "admin_auth", s.AdminKey != "", "recording", s.Store != nil)
	err := s.httpServer.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) beginRecording() {
	if s.Store == nil {
		return
	}
	runID, err := s.Store.BeginRun(s.sim)
	if err != nil {
		slog.Error("run recording unavailable", "error", err)
		s.runID = ""
		return
	}
	s.runID = runID
}

// ── middleware ─────────────────────────────────────────────────────

func (s *Server) checkBearerToken(r *http.Request) bool {
	auth := r.Header.Get("Authorization")
	return strings.HasPrefix(auth, "Bearer ") && strings.TrimPrefix(auth, "Bearer ") == s.AdminKey
}

// adminOnly requires bearer token auth on mutating requests when an admin
// key is configured. Non-POST methods are rejected outright.
func (s *Server) adminOnly(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		if s.AdminKey != "" && !s.checkBearerToken(r) {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		next(w, r)
	}
}

// corsMiddleware allows browser frontends to observe the simulation.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// ── read endpoints ─────────────────────────────────────────────────

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	writeJSON(w, map[string]any{
		"world":          s.sim.World.Name,
		"tick":           s.sim.World.TickCount,
		"agents":         len(s.sim.AgentNames()),
		"regions":        len(s.sim.World.Regions),
		"pending_events": s.sim.PendingEvents(),
		"economy":        s.sim.World.Economy,
		"culture":        s.sim.World.Culture,
		"stability":      s.sim.World.Stability,
		"seed":           s.sim.Seed(),
		"recording":      s.runID != "",
	})
}

func (s *Server) handlePersonalities(w http.ResponseWriter, r *http.Request) {
	codes := personality.Codes()
	profiles := make([]personality.Profile, 0, len(codes))
	for _, code := range codes {
		profiles = append(profiles, personality.Lookup(code))
	}
	writeJSON(w, profiles)
}

func (s *Server) handleAgents(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodPost {
		s.adminOnly(s.handleAddAgent)(w, r)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	snapshots := make([]reports.AgentSnapshot, 0)
	for _, agent := range s.sim.Agents() {
		snapshots = append(snapshots, reports.SnapshotAgent(agent))
	}
	writeJSON(w, snapshots)
}

func (s *Server) handleAgentDetail(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimPrefix(r.URL.Path, "/api/v1/agent/")
	if name == "" {
		writeError(w, http.StatusBadRequest, "agent name required")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	agent, ok := s.sim.Agent(name)
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Sprintf("unknown agent %q", name))
		return
	}
	writeJSON(w, reports.SnapshotAgent(agent))
}

func (s *Server) handleWorld(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, reports.SnapshotWorld(s.sim.World))
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var b strings.Builder
	for _, agent := range s.sim.Agents() {
		b.WriteString(reports.AgentReport(agent))
		b.WriteString("\n")
		b.WriteString(strings.Repeat("-", 40))
		b.WriteString("\n")
	}
	b.WriteString(reports.WorldReport(s.sim.World, s.sim.Agents()))

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintln(w, b.String())
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	history := s.sim.History
	if len(history) > limit {
		history = history[len(history)-limit:]
	}
	writeJSON(w, history)
}

func (s *Server) handleEventPresets(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, scenario.PresetNames())
}

// ── mutating endpoints ─────────────────────────────────────────────

func (s *Server) handleAddAgent(w http.ResponseWriter, r *http.Request) {
	var spec scenario.AgentSpec
	if err := json.NewDecoder(r.Body).Decode(&spec); err != nil {
		writeError(w, http.StatusBadRequest, "invalid agent spec: "+err.Error())
		return
	}
	if spec.Name == "" || spec.PersonalityCode == "" {
		writeError(w, http.StatusBadRequest, "name and personality_code are required")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if spec.Region != "" {
		if _, ok := s.sim.World.Regions[spec.Region]; !ok {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown region %q", spec.Region))
			return
		}
	}

	agent := spec.Apply(s.sim)
	slog.Info("agent added", "name", agent.Name, "personality", agent.Personality.Code, "region", spec.Region)
	writeJSON(w, reports.SnapshotAgent(agent))
}

func (s *Server) handleAddRegion(w http.ResponseWriter, r *http.Request) {
	var spec scenario.RegionSpec
	if err := json.NewDecoder(r.Body).Decode(&spec); err != nil {
		writeError(w, http.StatusBadRequest, "invalid region spec: "+err.Error())
		return
	}
	if spec.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	region := s.sim.AddRegion(spec.Name, spec.Resources, spec.CultureFocus)
	slog.Info("region added", "name", region.Name, "focus", region.CultureFocus)
	writeJSON(w, region)
}

type assignTaskRequest struct {
	Agent string            `json:"agent"`
	Task  scenario.TaskSpec `json:"task"`
}

func (s *Server) handleAssignTask(w http.ResponseWriter, r *http.Request) {
	var req assignTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid task request: "+err.Error())
		return
	}
	if req.Agent == "" || req.Task.Name == "" {
		writeError(w, http.StatusBadRequest, "agent and task.name are required")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	agent, ok := s.sim.Agent(req.Agent)
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Sprintf("unknown agent %q", req.Agent))
		return
	}

	task := req.Task.Build()
	agent.AssignTask(task)
	slog.Info("task assigned", "agent", agent.Name, "task", task.Name)
	writeJSON(w, task)
}

type scheduleEventRequest struct {
	Preset      string `json:"preset,omitempty"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	InTicks     int    `json:"in_ticks"`
}

// handleScheduleEvent schedules either a named preset from the catalog or a
// narration-only custom event. Arbitrary effects do not cross the wire.
func (s *Server) handleScheduleEvent(w http.ResponseWriter, r *http.Request) {
	var req scheduleEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid event request: "+err.Error())
		return
	}
	if req.InTicks < 0 {
		writeError(w, http.StatusBadRequest, "in_ticks must be >= 0")
		return
	}

	var event *engine.Event
	switch {
	case req.Preset != "":
		preset, ok := scenario.Preset(req.Preset)
		if !ok {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown preset %q", req.Preset))
			return
		}
		event = preset
	case req.Name != "":
		event = scenario.CustomEvent(req.Name, req.Description)
	default:
		writeError(w, http.StatusBadRequest, "preset or name is required")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.sim.ScheduleEvent(event, req.InTicks)
	slog.Info("event scheduled", "event", event.Name, "in_ticks", req.InTicks)
	writeJSON(w, map[string]any{
		"scheduled": event.Name,
		"fires_at":  s.sim.World.TickCount + req.InTicks,
	})
}

type runRequest struct {
	Steps int `json:"steps"`
}

func (s *Server) handleRun(w http.ResponseWriter, r *http.Request) {
	var req runRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid run request: "+err.Error())
		return
	}
	if req.Steps <= 0 {
		writeError(w, http.StatusBadRequest, "steps must be > 0")
		return
	}
	if req.Steps > maxRunSteps {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("steps must be <= %d", maxRunSteps))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	results := s.sim.Run(req.Steps)

	if s.Store != nil && s.runID != "" {
		if err := s.Store.RecordResults(s.runID, results); err != nil {
			slog.Error("run recording failed", "error", err, "run_id", s.runID)
		}
	}

	writeJSON(w, results)
}

// handleReset replaces the simulation with a fresh instance from the factory.
func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sim = s.Factory()
	s.beginRecording()
	slog.Info("simulation reset", "world", s.sim.World.Name, "seed", s.sim.Seed())
	writeJSON(w, map[string]any{
		"reset": true,
		"world": s.sim.World.Name,
		"seed":  s.sim.Seed(),
	})
}
