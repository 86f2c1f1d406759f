package favorites

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"pawsitive/internal/middleware"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/favorites", func(fr chi.Router) {
		fr.Get("/", listFavoritesHandler(svc))
		fr.Get("/{petID}", isFavoritedHandler(svc))
		fr.Post("/{petID}", addFavoriteHandler(svc))
		fr.Delete("/{petID}", removeFavoriteHandler(svc))
		fr.Post("/{petID}/toggle", toggleFavoriteHandler(svc))
	})
}

type favoriteResponse struct {
	PetID     string    `json:"petId"`
	DateAdded time.Time `json:"dateAdded"`
}

func listFavoritesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetSession(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		items, err := svc.List(r.Context(), claims.UserID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]favoriteResponse, 0, len(items))
		for _, f := range items {
			out = append(out, favoriteResponse{PetID: f.PetID, DateAdded: f.DateAdded})
		}

		writeJSON(w, http.StatusOK, out)
	}
}

func isFavoritedHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetSession(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		fav, err := svc.IsFavorited(r.Context(), claims.UserID, chi.URLParam(r, "petID"))
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, map[string]bool{"favorited": fav})
	}
}

func addFavoriteHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetSession(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		f, err := svc.Add(r.Context(), claims.UserID, chi.URLParam(r, "petID"))
		if err != nil {
			if err == ErrInvalidInput {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusCreated, favoriteResponse{PetID: f.PetID, DateAdded: f.DateAdded})
	}
}

func removeFavoriteHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetSession(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		if err := svc.Remove(r.Context(), claims.UserID, chi.URLParam(r, "petID")); err != nil {
			if err == ErrInvalidInput {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func toggleFavoriteHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetSession(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		fav, err := svc.Toggle(r.Context(), claims.UserID, chi.URLParam(r, "petID"))
		if err != nil {
			if err == ErrInvalidInput {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, map[string]bool{"favorited": fav})
	}
}

// writeJSON está duplicado a propósito en los handlers de cada módulo
// (igual que en pets/auth) para no crear helpers compartidos antes de tiempo.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
