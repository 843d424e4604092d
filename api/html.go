package api

import (
	"net/http"

	"log/slog"

	"github.com/vertiport/evtolhub/web"
)

func renderHTML(w http.ResponseWriter, renderer *web.Renderer, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := renderer.Render(w, name, data); err != nil {
		logger.Error("render page", slog.String("template", name), slog.Any("err", err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
