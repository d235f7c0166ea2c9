package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/lukeharding/bandstand/templates"
)

// renderPage writes the named page, consuming any flash notice queued by a
// previous request.
func renderPage(w http.ResponseWriter, r *http.Request, status int, page string, data interface{}) {
	renderPageFlash(w, r, status, page, popFlash(w, r), data)
}

// renderPageFlash is renderPage with an explicit notice, used when the
// message belongs to this response rather than a queued cookie.
func renderPageFlash(w http.ResponseWriter, r *http.Request, status int, page string, flash string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := templates.Render(w, page, templates.Page{Flash: flash, Data: data}); err != nil {
		log.Printf("Error rendering %s: %v", page, err)
	}
}

// NotFound renders the dedicated 404 page.
func NotFound(w http.ResponseWriter, r *http.Request) {
	renderPage(w, r, http.StatusNotFound, "404.html", nil)
}

func renderServerError(w http.ResponseWriter, r *http.Request, message string) {
	renderPageFlash(w, r, http.StatusInternalServerError, "500.html", message, nil)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			log.Printf("Error encoding JSON response: %v", err)
		}
	}
}
