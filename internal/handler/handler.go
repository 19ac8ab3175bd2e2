package handler

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/mmoldabe-dev/subkeep/internal/middleware"
	"github.com/mmoldabe-dev/subkeep/internal/service"
)

type Services struct {
	Subscriptions service.SubscriptionServiceInterface
	Categories    service.CategoryServiceInterface
	Dashboard     service.DashboardServiceInterface
	Simulation    service.SimulationServiceInterface
}

type Handler struct {
	services Services
	log      *slog.Logger
}

func NewHandler(services Services, log *slog.Logger) *Handler {
	return &Handler{
		services: services,
		log:      log.With(slog.String("component", "delivery/http")),
	}
}

// SetupRouter registers every route. Everything except /health and the
// swagger UI goes through auth.
func (h *Handler) SetupRouter(auth func(http.Handler) http.Handler) *http.ServeMux {
	mux := http.NewServeMux()

	protect := func(f http.HandlerFunc) http.Handler {
		return auth(middleware.JSONMiddleware(f))
	}

	mux.Handle("POST /simulation/cancel", protect(h.simulateCancel))
	mux.Handle("POST /simulation/add", protect(h.simulateAdd))
	mux.Handle("POST /simulation/combined", protect(h.simulateCombined))
	mux.Handle("POST /simulation/apply", protect(h.applySimulation))
	mux.Handle("POST /simulation/undo", protect(h.undoSimulation))

	mux.Handle("POST /subscriptions", protect(h.createSubscription))
	mux.Handle("GET /subscriptions", protect(h.listSubscriptions))
	mux.Handle("GET /subscriptions/{id}", protect(h.getSubscription))
	mux.Handle("PUT /subscriptions/{id}", protect(h.updateSubscription))
	mux.Handle("DELETE /subscriptions/{id}", protect(h.deleteSubscription))
	mux.Handle("PATCH /subscriptions/{id}/status", protect(h.changeStatus))

	mux.Handle("GET /categories", protect(h.listCategories))
	mux.Handle("POST /categories", protect(h.createCategory))
	mux.Handle("DELETE /categories/{id}", protect(h.deleteCategory))

	mux.Handle("GET /dashboard/summary", protect(h.dashboardSummary))
	mux.Handle("GET /dashboard/recommendations", protect(h.recommendations))
	mux.Handle("GET /dashboard/upcoming", protect(h.upcoming))

	mux.HandleFunc("GET /health", h.health)
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	return mux
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
