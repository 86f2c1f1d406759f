package middleware

import (
	"net/http"
	"strings"
)

// Clasificación de rutas navegables. Son data: prefijos, no lógica.
var (
	protectedPrefixes = []string{"/admin", "/account"}

	authPrefix         = "/auth/"
	unauthorizedPath   = "/auth/unauthorized"
	loginPath          = "/auth/login"
	adminDashboardPath = "/admin/dashboard"
	userDashboardPath  = "/account/dashboard"
)

// Guard implementa el route guard sobre las páginas navegables.
// Reglas, en orden de prioridad:
//  1. ruta protegida sin sesión        => login
//  2. /auth/* con sesión (salvo
//     /auth/unauthorized)              => dashboard según rol
//  3. /admin* con sesión no-admin      => unauthorized
//  4. /account* sin sesión             => login
//  5. resto                            => pasa
//
// Depende de SessionContext corriendo antes en la cadena.
func Guard(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path
		claims, authed := GetSession(r.Context())

		if isProtected(path) && !authed {
			http.Redirect(w, r, loginPath, http.StatusFound)
			return
		}

		if strings.HasPrefix(path, authPrefix) && authed && !strings.HasPrefix(path, unauthorizedPath) {
			switch claims.Role {
			case "admin":
				http.Redirect(w, r, adminDashboardPath, http.StatusFound)
			case "user":
				http.Redirect(w, r, userDashboardPath, http.StatusFound)
			default:
				http.Redirect(w, r, "/", http.StatusFound)
			}
			return
		}

		if strings.HasPrefix(path, "/admin") && authed && claims.Role != "admin" {
			http.Redirect(w, r, unauthorizedPath, http.StatusFound)
			return
		}

		if strings.HasPrefix(path, "/account") && !authed {
			http.Redirect(w, r, loginPath, http.StatusFound)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func isProtected(path string) bool {
	for _, p := range protectedPrefixes {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}
