package calculator

import "github.com/go-chi/chi/v5"

// RegisterRoutes mounts all calculator endpoints onto the given router
// under the /calculator prefix.
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Route("/calculator", func(r chi.Router) {
		r.Get("/state", h.State)

		r.Post("/digit/{digit}", h.Digit)
		r.Post("/decimal", h.Press(ActionDecimal))
		r.Post("/operator/{op}", h.Operator)
		r.Post("/equals", h.Press(ActionEquals))
		r.Post("/clear", h.Press(ActionClear))
		r.Post("/sign", h.Press(ActionToggleSign))
		r.Post("/percent", h.Press(ActionPercent))
		r.Post("/keys", h.Keys)

		r.Post("/theme/toggle", h.Press(ActionToggleTheme))
		r.Post("/history/toggle", h.Press(ActionToggleHistory))
		r.Delete("/history", h.Press(ActionClearHistory))
	})
}
