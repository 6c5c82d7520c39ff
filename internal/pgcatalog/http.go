package pgcatalog

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/starfield-tools/pgnames/internal/pgapi"
	"github.com/starfield-tools/pgnames/pgnames"
)

// HTTPHandler implements the pgnamesd HTTP façade over a Catalog,
// grounded on the teacher's HTTPHandler/http.go route table.
type HTTPHandler struct {
	catalog Catalog
}

// NewHTTPHandler creates a new HTTP handler backed by catalog.
func NewHTTPHandler(catalog Catalog) *HTTPHandler {
	return &HTTPHandler{catalog: catalog}
}

// RegisterRoutes registers all HTTP routes on the provided router.
func (h *HTTPHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/system/{name}", h.handleGetSystem).Methods("GET")
	router.HandleFunc("/api/sector/{name}", h.handleGetSector).Methods("GET")
	router.HandleFunc("/api/position/{x}/{y}/{z}/{mcode}", h.handleGetSystemByPosition).Methods("GET")
	router.HandleFunc("/health", h.handleHealth).Methods("GET")
}

func (h *HTTPHandler) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func (h *HTTPHandler) writeError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if encErr := json.NewEncoder(w).Encode(pgapi.ErrorResponse{Error: err.Error()}); encErr != nil {
		log.Printf("pgcatalog: error encoding error response: %v", encErr)
	}
}

func (h *HTTPHandler) handleGetSystem(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	if name == "" {
		h.writeError(w, http.StatusBadRequest, pgnames.ErrNotPG)
		return
	}

	ctx := r.Context()
	if cached, ok, err := h.catalog.LookupSystem(ctx, name); err == nil && ok {
		h.writeSystem(w, cached)
		return
	}

	sys, err := pgnames.GetSystem(name)
	if err != nil {
		h.writeError(w, http.StatusNotFound, err)
		return
	}
	if err := h.catalog.StoreSystem(ctx, &sys); err != nil {
		log.Printf("pgcatalog: failed to cache system %q: %v", name, err)
	}
	h.writeSystem(w, &sys)
}

func (h *HTTPHandler) writeSystem(w http.ResponseWriter, sys *pgnames.System) {
	w.Header().Set("Content-Type", "application/json")
	response := pgapi.SystemResponse{
		Name:        sys.Name,
		X:           sys.Position.X,
		Y:           sys.Position.Y,
		Z:           sys.Position.Z,
		Uncertainty: sys.Uncertainty,
		Sector:      sys.Sector.Name,
	}
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Printf("pgcatalog: error encoding JSON response: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func (h *HTTPHandler) handleGetSector(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	if name == "" {
		h.writeError(w, http.StatusBadRequest, pgnames.ErrNotPG)
		return
	}

	sec, err := pgnames.GetSector(name)
	if err != nil {
		h.writeError(w, http.StatusNotFound, err)
		return
	}

	kind := "pg"
	var massCode string
	if sec.Kind == pgnames.SectorHA {
		kind = "ha"
		massCode = string(sec.MassCode)
	}

	w.Header().Set("Content-Type", "application/json")
	response := pgapi.SectorResponse{
		Name:     sec.Name,
		Kind:     kind,
		Class:    sec.Class,
		OriginX:  sec.Origin.X,
		OriginY:  sec.Origin.Y,
		OriginZ:  sec.Origin.Z,
		MassCode: massCode,
	}
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Printf("pgcatalog: error encoding JSON response: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func (h *HTTPHandler) handleGetSystemByPosition(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	x, errX := strconv.ParseFloat(vars["x"], 64)
	y, errY := strconv.ParseFloat(vars["y"], 64)
	z, errZ := strconv.ParseFloat(vars["z"], 64)
	if errX != nil || errY != nil || errZ != nil {
		h.writeError(w, http.StatusBadRequest, pgnames.ErrNotPG)
		return
	}
	if len(vars["mcode"]) != 1 {
		h.writeError(w, http.StatusBadRequest, pgnames.ErrBadMassCode)
		return
	}

	pos := pgnames.Position{X: x, Y: y, Z: z}
	name, err := pgnames.GetSystemName(pos, vars["mcode"][0])
	if err != nil {
		h.writeError(w, http.StatusNotFound, err)
		return
	}
	sys, err := pgnames.GetSystem(name)
	if err != nil {
		h.writeError(w, http.StatusNotFound, err)
		return
	}

	ctx := r.Context()
	if err := h.catalog.StoreSystem(ctx, &sys); err != nil {
		log.Printf("pgcatalog: failed to cache system %q: %v", name, err)
	}
	h.writeSystem(w, &sys)
}
