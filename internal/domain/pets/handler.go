package pets

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"pawsitive/internal/adapters/petapi"
	"pawsitive/internal/domain/account"
	"pawsitive/internal/domain/search"
	"pawsitive/internal/middleware"
	"pawsitive/internal/platform/logger"
)

// Deps de los handlers de mascotas. El listado y el detalle son públicos;
// alta/edición/baja exigen rol admin.
type Deps struct {
	API      *petapi.Client
	Engine   *search.Engine
	Accounts *account.Service
	Log      logger.Logger
}

func RegisterRoutes(r chi.Router, d Deps) {
	r.Route("/pets", func(pr chi.Router) {
		pr.Get("/", listPetsHandler(d))
		pr.Get("/{petID}", getPetHandler(d))

		// Admin-only (pass-through a la API remota)
		pr.Post("/", createPetHandler(d))
		pr.Put("/{petID}", updatePetHandler(d))
		pr.Delete("/{petID}", deletePetHandler(d))
	})
}

type rankedPetResponse struct {
	Pet           Pet      `json:"pet"`
	Score         float64  `json:"score"`
	MatchedFields []string `json:"matchedFields"`
}

type listResponse struct {
	Data any          `json:"data"`
	Meta *petapi.Meta `json:"meta,omitempty"`
}

// listPetsHandler: GET /pets?page&limit&q
// Sin q: la página remota tal cual. Con q: se trae la página remota y se
// rankea acá con el engine (score + campos matcheados por item).
// Una búsqueda que no matchea nada devuelve data vacía, no error.
func listPetsHandler(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := strings.TrimSpace(r.URL.Query().Get("q"))
		page := queryInt(r, "page", 1)
		limit := queryInt(r, "limit", 12)

		if query == "" {
			result, err := d.API.ListPets(r.Context(), page, limit)
			if err != nil {
				d.Log.Error("list pets upstream failed", map[string]any{"err": err.Error()})
				http.Error(w, "failed to fetch pets", http.StatusBadGateway)
				return
			}
			writeJSON(w, http.StatusOK, listResponse{Data: result.Pets, Meta: result.Meta})
			return
		}

		result, err := d.API.SearchPets(r.Context(), query, page)
		if err != nil {
			d.Log.Error("search pets upstream failed", map[string]any{"err": err.Error()})
			http.Error(w, "failed to fetch pets", http.StatusBadGateway)
			return
		}

		ranked, _ := d.Engine.Rank(query, result.Pets)
		out := make([]rankedPetResponse, 0, len(ranked))
		for _, res := range ranked {
			out = append(out, rankedPetResponse{
				Pet:           res.Pet,
				Score:         res.Score,
				MatchedFields: res.MatchedFields,
			})
		}

		// Usuario logueado: anotar el término buscado (best effort).
		if claims, ok := middleware.GetSession(r.Context()); ok {
			if err := d.Accounts.RecordSearch(r.Context(), claims.UserID, query); err != nil {
				d.Log.Warn("record search failed", map[string]any{"err": err.Error()})
			}
		}

		writeJSON(w, http.StatusOK, listResponse{Data: out, Meta: result.Meta})
	}
}

func getPetHandler(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := d.API.GetPet(r.Context(), chi.URLParam(r, "petID"))
		if err != nil {
			if errors.Is(err, petapi.ErrNotFound) {
				http.Error(w, "pet not found", http.StatusNotFound)
				return
			}
			d.Log.Error("get pet upstream failed", map[string]any{"err": err.Error()})
			http.Error(w, "failed to fetch pet", http.StatusBadGateway)
			return
		}

		writeJSON(w, http.StatusOK, map[string]Pet{"data": p})
	}
}

// Campos obligatorios del alta, validados antes de llamar al upstream.
var requiredPetFields = []string{
	"name", "species", "breed", "age", "gender",
	"size", "color", "description", "location", "adoptionStatus",
}

func createPetHandler(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireAdmin(w, r) {
			return
		}

		// Se decodifica a map primero para poder reportar el campo
		// faltante por nombre, como espera el form de admin.
		var raw map[string]json.RawMessage
		if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		for _, field := range requiredPetFields {
			v, ok := raw[field]
			if !ok || string(v) == "null" || string(v) == `""` {
				http.Error(w, field+" is required", http.StatusBadRequest)
				return
			}
		}

		var in petapi.PetInput
		{
			b, _ := json.Marshal(raw)
			if err := json.Unmarshal(b, &in); err != nil {
				http.Error(w, "invalid json", http.StatusBadRequest)
				return
			}
		}

		created, err := d.API.CreatePet(r.Context(), in)
		if err != nil {
			d.Log.Error("create pet upstream failed", map[string]any{"err": err.Error()})
			http.Error(w, "failed to create pet", http.StatusBadGateway)
			return
		}

		writeJSON(w, http.StatusCreated, map[string]any{"success": true, "data": created})
	}
}

func updatePetHandler(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireAdmin(w, r) {
			return
		}

		var in petapi.PetInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		updated, err := d.API.UpdatePet(r.Context(), chi.URLParam(r, "petID"), in)
		if err != nil {
			if errors.Is(err, petapi.ErrNotFound) {
				http.Error(w, "pet not found", http.StatusNotFound)
				return
			}
			d.Log.Error("update pet upstream failed", map[string]any{"err": err.Error()})
			http.Error(w, "failed to update pet", http.StatusBadGateway)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{"success": true, "data": updated})
	}
}

func deletePetHandler(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireAdmin(w, r) {
			return
		}

		if err := d.API.DeletePet(r.Context(), chi.URLParam(r, "petID")); err != nil {
			if errors.Is(err, petapi.ErrNotFound) {
				http.Error(w, "pet not found", http.StatusNotFound)
				return
			}
			d.Log.Error("delete pet upstream failed", map[string]any{"err": err.Error()})
			http.Error(w, "failed to delete pet", http.StatusBadGateway)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": "pet deleted successfully"})
	}
}

// requireAdmin corta con 401 si no hay sesión admin. Mismo status que el
// front original usaba para este caso.
func requireAdmin(w http.ResponseWriter, r *http.Request) bool {
	claims, ok := middleware.GetSession(r.Context())
	if !ok || claims.Role != "admin" {
		http.Error(w, "unauthorized, admin access required", http.StatusUnauthorized)
		return false
	}
	return true
}

func queryInt(r *http.Request, key string, fallback int) int {
	v := strings.TrimSpace(r.URL.Query().Get(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
