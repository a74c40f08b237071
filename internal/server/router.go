package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"tavola/internal/loyalty"
	"tavola/internal/menu"
	"tavola/internal/order"
	"tavola/internal/scheduling"
)

// NewRouter wires every HTTP endpoint of the storefront and its back office.
func NewRouter(
	menuModule *menu.Module,
	schedulingModule *scheduling.Module,
	orderModule *order.Module,
	loyaltyModule *loyalty.Module,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/menu", menuModule.Controller.HandleListMenu)

		r.Post("/delivery/quote", schedulingModule.Controller.HandleQuote)
		r.Get("/pickup-locations", schedulingModule.Controller.HandlePickupLocations)
		r.Get("/schedule/dates", schedulingModule.Controller.HandleAvailableDates)
		r.Get("/schedule/slots", schedulingModule.Controller.HandleSlots)

		r.Post("/checkout", orderModule.Controller.HandleCheckout)
		r.Get("/orders/{orderId}", orderModule.Controller.HandleGetOrder)
		r.Post("/webhooks/payment", orderModule.Controller.HandlePaymentWebhook)

		r.Route("/loyalty", func(r chi.Router) {
			r.Get("/rewards", loyaltyModule.Controller.HandleListRewards)
			r.Post("/redeem", loyaltyModule.Controller.HandleRedeem)
			r.Get("/{email}", loyaltyModule.Controller.HandleGetBalance)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Route("/zones", func(r chi.Router) {
				r.Get("/", schedulingModule.AdminController.HandleListZones)
				r.Post("/", schedulingModule.AdminController.HandleCreateZone)
				r.Get("/{zoneId}", schedulingModule.AdminController.HandleGetZone)
				r.Put("/{zoneId}", schedulingModule.AdminController.HandleUpdateZone)
				r.Delete("/{zoneId}", schedulingModule.AdminController.HandleDeleteZone)
			})

			r.Route("/pickup-locations", func(r chi.Router) {
				r.Get("/", schedulingModule.AdminController.HandleListLocations)
				r.Post("/", schedulingModule.AdminController.HandleCreateLocation)
				r.Get("/{locationId}", schedulingModule.AdminController.HandleGetLocation)
				r.Put("/{locationId}", schedulingModule.AdminController.HandleUpdateLocation)
				r.Delete("/{locationId}", schedulingModule.AdminController.HandleDeleteLocation)
			})

			r.Route("/events", func(r chi.Router) {
				r.Get("/", schedulingModule.AdminController.HandleListEvents)
				r.Post("/", schedulingModule.AdminController.HandleCreateEvent)
				r.Get("/{eventId}", schedulingModule.AdminController.HandleGetEvent)
				r.Put("/{eventId}", schedulingModule.AdminController.HandleUpdateEvent)
				r.Delete("/{eventId}", schedulingModule.AdminController.HandleDeleteEvent)
			})

			r.Route("/menu", func(r chi.Router) {
				r.Get("/", menuModule.Controller.HandleAdminListItems)
				r.Post("/", menuModule.Controller.HandleCreateItem)
				r.Get("/{itemId}", menuModule.Controller.HandleGetItem)
				r.Put("/{itemId}", menuModule.Controller.HandleUpdateItem)
				r.Delete("/{itemId}", menuModule.Controller.HandleDeleteItem)
			})

			r.Route("/tiers", func(r chi.Router) {
				r.Get("/", loyaltyModule.AdminController.HandleListTiers)
				r.Post("/", loyaltyModule.AdminController.HandleCreateTier)
				r.Get("/{tierId}", loyaltyModule.AdminController.HandleGetTier)
				r.Put("/{tierId}", loyaltyModule.AdminController.HandleUpdateTier)
				r.Delete("/{tierId}", loyaltyModule.AdminController.HandleDeleteTier)
			})

			r.Route("/rewards", func(r chi.Router) {
				r.Get("/", loyaltyModule.AdminController.HandleListRewards)
				r.Post("/", loyaltyModule.AdminController.HandleCreateReward)
				r.Get("/{rewardId}", loyaltyModule.AdminController.HandleGetReward)
				r.Put("/{rewardId}", loyaltyModule.AdminController.HandleUpdateReward)
				r.Delete("/{rewardId}", loyaltyModule.AdminController.HandleDeleteReward)
			})

			r.Route("/orders", func(r chi.Router) {
				r.Get("/", orderModule.Controller.HandleListOrders)
				r.Get("/{orderId}", orderModule.Controller.HandleGetOrder)
				r.Patch("/{orderId}/status", orderModule.Controller.HandleUpdateStatus)
			})
		})
	})

	return r
}

func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			logger.Info("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("duration", time.Since(start)),
			)
		})
	}
}
