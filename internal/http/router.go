package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/MrJamesThe3rd/wealthboard/internal/auth"
	"github.com/MrJamesThe3rd/wealthboard/internal/http/asset"
	httpauth "github.com/MrJamesThe3rd/wealthboard/internal/http/auth"
	"github.com/MrJamesThe3rd/wealthboard/internal/http/export"
	"github.com/MrJamesThe3rd/wealthboard/internal/http/goal"
	"github.com/MrJamesThe3rd/wealthboard/internal/http/importcsv"
	"github.com/MrJamesThe3rd/wealthboard/internal/http/insight"
	"github.com/MrJamesThe3rd/wealthboard/internal/http/liability"
	"github.com/MrJamesThe3rd/wealthboard/internal/http/matching"
	"github.com/MrJamesThe3rd/wealthboard/internal/http/recurring"
	"github.com/MrJamesThe3rd/wealthboard/internal/http/reference"
	"github.com/MrJamesThe3rd/wealthboard/internal/http/report"
	"github.com/MrJamesThe3rd/wealthboard/internal/http/stock"
	"github.com/MrJamesThe3rd/wealthboard/internal/http/transaction"
)

type Handlers struct {
	Auth         *httpauth.Handler
	Transactions *transaction.Handler
	Recurring    *recurring.Handler
	Liabilities  *liability.Handler
	Goals        *goal.Handler
	Assets       *asset.Handler
	Reference    *reference.Handler
	Reports      *report.Handler
	Insights     *insight.Handler
	Stocks       *stock.Handler
	Import       *importcsv.Handler
	Matching     *matching.Handler
	Export       *export.Handler
}

func New(h Handlers, authSvc *auth.Service, allowedOrigins []string) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	router.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", h.Auth.Routes)

		r.Group(func(r chi.Router) {
			r.Use(authSvc.Middleware)

			r.Group(func(r chi.Router) {
				r.Use(middleware.AllowContentType("application/json"))

				r.Route("/transactions", h.Transactions.Routes)
				r.Route("/recurring", h.Recurring.Routes)
				r.Route("/liabilities", h.Liabilities.Routes)
				r.Route("/goals", h.Goals.Routes)
				r.Route("/assets", h.Assets.Routes)
				r.Route("/categories", h.Reference.CategoryRoutes)
				r.Route("/banks", h.Reference.BankRoutes)
				r.Route("/brokers", h.Reference.BrokerRoutes)
				r.Route("/matching", h.Matching.Routes)
				r.Route("/export", h.Export.Routes)
			})

			r.Route("/dashboard", h.Reports.DashboardRoutes)
			r.Route("/reports", h.Reports.ReportRoutes)
			r.Route("/insights", h.Insights.Routes)
			r.Route("/stocks", h.Stocks.Routes)

			// Sheet uploads are multipart.
			r.Route("/import", h.Import.Routes)
		})
	})

	return router
}
