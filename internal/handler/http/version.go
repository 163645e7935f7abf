package http

import "net/http"

type versionResponse struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}

func (h *Handler) version(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, versionResponse{
		Version: h.buildInfo.BuildVersion(),
		Date:    h.buildInfo.BuildDate(),
		Commit:  h.buildInfo.BuildCommit(),
	}, http.StatusOK)
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, map[string]string{"status": "UP"}, http.StatusOK)
}
