package api

import (
	"net/http"

	"github.com/vertiport/evtolhub/web"
)

type PagesHandler struct {
	renderer *web.Renderer
}

func NewPagesHandler(renderer *web.Renderer) *PagesHandler {
	return &PagesHandler{renderer: renderer}
}

func (h *PagesHandler) Home(w http.ResponseWriter, r *http.Request) {
	renderHTML(w, h.renderer, "index.html", map[string]any{"User": CurrentUser(r.Context())})
}
