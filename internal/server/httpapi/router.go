// Package httpapi exposes the mock auth service over HTTP, so the client's
// http backend has a real endpoint to talk to during development. The wire
// contract mirrors authapi exactly: three operations, same error taxonomy.
package httpapi

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/dmitrijs2005/tafuta/internal/client/authapi"
	"github.com/dmitrijs2005/tafuta/internal/logging"
)

// NewRouter wires the auth endpoints onto a fresh router.
func NewRouter(api authapi.API, logger logging.Logger) *mux.Router {
	h := newHandler(api, logger)

	r := mux.NewRouter()
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "OK")
	}).Methods("GET")
	r.HandleFunc("/api/login", h.login).Methods("POST")
	r.HandleFunc("/api/register", h.register).Methods("POST")
	r.HandleFunc("/api/logout", h.logout).Methods("POST")
	return r
}
