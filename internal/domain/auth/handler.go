package auth

import (
	"encoding/json"
	"errors"
	"net/http"
	"regexp"
	"strings"

	"github.com/go-chi/chi/v5"

	"pawsitive/internal/adapters/petapi"
	"pawsitive/internal/middleware"
	"pawsitive/internal/platform/logger"
	"pawsitive/internal/session"
)

// Deps agrupa lo que necesitan los handlers de auth.
type Deps struct {
	API   *petapi.Client
	Codec *session.Codec
	Log   logger.Logger

	// Secure marca la cookie como Secure (solo prod).
	Secure bool

	// EmailDomain exigido al registrar. Vacío => cualquier dominio.
	EmailDomain string
}

func RegisterRoutes(r chi.Router, d Deps) {
	r.Route("/auth", func(ar chi.Router) {
		ar.Post("/login", loginHandler(d))
		ar.Post("/register", registerHandler(d))
		ar.Get("/session", sessionHandler(d))
		ar.Post("/logout", logoutHandler(d))
	})
}

type userResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type authResponse struct {
	Success bool         `json:"success"`
	User    userResponse `json:"user"`
}

func loginHandler(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Cualquier sesión previa (válida o no) se limpia primero.
		session.ClearCookie(w, d.Secure)

		var req struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json")
			return
		}

		if strings.TrimSpace(req.Email) == "" || req.Password == "" {
			writeError(w, http.StatusBadRequest, "email and password are required")
			return
		}

		acct, err := d.API.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			if errors.Is(err, petapi.ErrUnauthorized) {
				writeError(w, http.StatusUnauthorized, "invalid email or password")
				return
			}
			d.Log.Error("login upstream failed", map[string]any{"err": err.Error()})
			writeError(w, http.StatusInternalServerError, "authentication service unavailable, please try again later")
			return
		}

		if err := startSession(w, d, acct); err != nil {
			d.Log.Error("session encode failed", map[string]any{"err": err.Error()})
			writeError(w, http.StatusInternalServerError, "failed to create session")
			return
		}

		writeJSON(w, http.StatusOK, authResponse{
			Success: true,
			User: userResponse{
				ID:    acct.Name,
				Name:  acct.Name,
				Email: acct.Email,
				Role:  roleOf(acct),
			},
		})
	}
}

var namePattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

func registerHandler(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session.ClearCookie(w, d.Secure)

		var req struct {
			Name           string `json:"name"`
			Email          string `json:"email"`
			Password       string `json:"password"`
			ShelterManager bool   `json:"shelterManager"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json")
			return
		}

		// Validación inline, antes de tocar la red.
		if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" || req.Password == "" {
			writeError(w, http.StatusBadRequest, "name, email, and password are required")
			return
		}
		if !namePattern.MatchString(req.Name) {
			writeError(w, http.StatusBadRequest, "name can only contain letters, numbers, and underscores (no spaces or special characters)")
			return
		}
		if d.EmailDomain != "" && !strings.HasSuffix(strings.ToLower(req.Email), strings.ToLower(d.EmailDomain)) {
			writeError(w, http.StatusBadRequest, "email must be a valid "+d.EmailDomain+" address")
			return
		}
		if len(req.Password) < 8 {
			writeError(w, http.StatusBadRequest, "password must be at least 8 characters long")
			return
		}

		acct, err := d.API.Register(r.Context(), petapi.RegisterInput{
			Name:           req.Name,
			Email:          req.Email,
			Password:       req.Password,
			ShelterManager: req.ShelterManager,
		})
		if err != nil {
			switch {
			case errors.Is(err, petapi.ErrConflict):
				writeError(w, http.StatusConflict, "user with this email already exists")
			case errors.Is(err, petapi.ErrUnauthorized):
				writeError(w, http.StatusBadRequest, "invalid registration data, please check your input")
			default:
				d.Log.Error("register upstream failed", map[string]any{"err": err.Error()})
				writeError(w, http.StatusInternalServerError, "registration service unavailable, please try again later")
			}
			return
		}

		if err := startSession(w, d, acct); err != nil {
			d.Log.Error("session encode failed", map[string]any{"err": err.Error()})
			writeError(w, http.StatusInternalServerError, "failed to create session")
			return
		}

		writeJSON(w, http.StatusOK, authResponse{
			Success: true,
			User: userResponse{
				ID:    acct.Name,
				Name:  acct.Name,
				Email: acct.Email,
				Role:  roleOf(acct),
			},
		})
	}
}

// sessionHandler expone la introspección de sesión al front.
// Cookie inválida => 401 + cookie limpiada, indistinguible de "sin cookie".
func sessionHandler(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetSession(r.Context())
		if !ok {
			session.ClearCookie(w, d.Secure)
			writeJSON(w, http.StatusUnauthorized, map[string]bool{"authenticated": false})
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"authenticated": true,
			"user": map[string]string{
				"userId": claims.UserID,
				"email":  claims.Email,
				"role":   claims.Role,
			},
		})
	}
}

func logoutHandler(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session.ClearCookie(w, d.Secure)
		writeJSON(w, http.StatusOK, map[string]bool{"success": true})
	}
}

// startSession emite la cookie a partir de la cuenta remota.
// El flag de manager del upstream mapea al rol admin local.
func startSession(w http.ResponseWriter, d Deps, acct petapi.Account) error {
	p := d.Codec.New(acct.Name, acct.Email, roleOf(acct))
	value, err := d.Codec.Encode(p)
	if err != nil {
		return err
	}
	session.SetCookie(w, value, p.ExpiresAt, d.Secure)
	return nil
}

func roleOf(acct petapi.Account) string {
	if acct.ShelterManager {
		return session.RoleAdmin
	}
	return session.RoleUser
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
