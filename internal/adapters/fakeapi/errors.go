package fakeapi

import (
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/paylane/paylane-go/core"
	"github.com/paylane/paylane-go/shared"
)

func writeError(w http.ResponseWriter, r *http.Request, status int, code string, message string, details map[string]any) {
	er := shared.NewError(code, message, details, middleware.GetReqID(r.Context()))
	writeModel(w, status, er)
}

func writeModel(w http.ResponseWriter, status int, m core.Model) {
	b, err := core.Serialize(m)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, status, "application/json", b)
}

func writeJSON(w http.ResponseWriter, status int, contentType string, body []byte) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(status)
	_, _ = w.Write(body)
}
