package pages

import (
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Las páginas navegables son shells mínimos: el render real vive en el
// front. Existen para que el route guard tenga rutas concretas que
// clasificar (y para que los redirects terminen en un 200 de verdad).
var routes = map[string]string{
	"/":                   "Pawsitive",
	"/pets":               "Browse Pets",
	"/pets/{petID}":       "Pet Profile",
	"/about":              "About Us",
	"/contact":            "Contact",
	"/faq":                "FAQ",
	"/resources":          "Resources",
	"/adoption-guide":     "Adoption Guide",
	"/auth/login":         "Sign In",
	"/auth/register-user": "Create Account",
	"/auth/unauthorized":  "Unauthorized",
	"/account/dashboard":  "My Dashboard",
	"/account/profile":    "My Profile",
	"/admin/dashboard":    "Admin Dashboard",
	"/admin/pets":         "Manage Pets",
	"/admin/pets/new":     "New Pet Listing",
	"/admin/pets/{petID}": "Edit Pet Listing",
}

var shell = template.Must(template.New("shell").Parse(
	`<!doctype html><html lang="en"><head><meta charset="utf-8"><title>{{.}} | Pawsitive</title></head><body><main id="app" data-page="{{.}}"></main></body></html>`))

func RegisterRoutes(r chi.Router) {
	for path, title := range routes {
		r.Get(path, pageHandler(title))
	}
}

func pageHandler(title string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_ = shell.Execute(w, title)
	}
}
