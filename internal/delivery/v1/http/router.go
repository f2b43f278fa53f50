package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	_ "github.com/treinamento/produtos-service/docs" // регистрация swagger-спецификации
	"github.com/treinamento/produtos-service/internal/cfg"
	"github.com/treinamento/produtos-service/internal/usecase"
	"github.com/treinamento/produtos-service/pkg/logger"
)

const healthTimeout = 2 * time.Second

// HealthCheck проверяет доступность зависимостей; nil означает, что сервис готов.
type HealthCheck func(ctx context.Context) error

type Router struct {
	router *chi.Mux
	cfg    *cfg.HTTPConfig
	logger logger.Logger
}

func NewRouter(router *chi.Mux, cfg *cfg.HTTPConfig, logger logger.Logger) *Router {
	return &Router{router: router, cfg: cfg, logger: logger}
}

func (r *Router) Init(prUC usecase.ProductUC, catUC usecase.CategoryUC, health HealthCheck) {
	r.router.Use(middleware.RequestID)
	r.router.Use(middleware.RealIP)
	r.router.Use(requestLogger(r.logger))
	r.router.Use(middleware.Recoverer)

	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))
	r.router.Get("/health", r.health(health))

	registerProductRoutes(r.router, NewProductHandler(prUC, r.cfg, r.logger))
	registerCategoryRoutes(r.router, NewCategoryHandler(catUC, r.logger))
}

func (r *Router) health(check HealthCheck) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		if check != nil {
			ctx, cancel := context.WithTimeout(req.Context(), healthTimeout)
			defer cancel()

			if err := check(ctx); err != nil {
				r.logger.Errorf(err, "health check failed")
				WriteSuccess(w, http.StatusServiceUnavailable, map[string]string{"status": "DOWN"})
				return
			}
		}

		WriteSuccess(w, http.StatusOK, map[string]string{"status": "UP"})
	}
}

func registerProductRoutes(router chi.Router, prHandler *ProductHandler) {
	router.Route("/produtos", func(pr chi.Router) {
		pr.Post("/", prHandler.create)
		pr.Get("/", prHandler.list)
		pr.Get("/find/{descricao}", prHandler.findByDescription)
		pr.Get("/{id}", prHandler.getByID)
		pr.Put("/{id}", prHandler.update)
		pr.Delete("/{id}", prHandler.delete)
	})
}

func registerCategoryRoutes(router chi.Router, catHandler *CategoryHandler) {
	router.Route("/categorias", func(cr chi.Router) {
		cr.Post("/", catHandler.create)
		cr.Get("/", catHandler.list)
		cr.Get("/{id}", catHandler.getByID)
	})
}
