// internal/app/bootstrap/routes.go
package bootstrap

import (
	"errors"
	"net/http"
	"time"

	apifeature "github.com/dalemusser/learnhub/internal/app/features/api"
	errorsfeature "github.com/dalemusser/learnhub/internal/app/features/errors"
	healthfeature "github.com/dalemusser/learnhub/internal/app/features/health"
	homefeature "github.com/dalemusser/learnhub/internal/app/features/home"
	topicfeature "github.com/dalemusser/learnhub/internal/app/features/topic"
	"github.com/dalemusser/learnhub/internal/app/system/ratelimit"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// Startup have completed. It boots the template engine, applies the
// view-session middleware to the pages, and mounts the feature routers.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	rt := deps.Runtime
	if rt == nil || rt.Views == nil {
		return nil, errors.New("build handler: Startup did not complete")
	}

	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	return newRouter(appCfg, deps, logger), nil
}

// newRouter wires the routes. Kept apart from BuildHandler so tests can build
// the router without booting templates.
func newRouter(appCfg AppConfig, deps DBDeps, logger *zap.Logger) chi.Router {
	rt := deps.Runtime
	errHandler := errorsfeature.NewHandler(logger)

	r := chi.NewRouter()
	// Set before mounting so sub-routers inherit them.
	r.NotFound(errHandler.NotFound)
	r.MethodNotAllowed(errHandler.MethodNotAllowed)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(rt.Catalog, deps.MongoClient, appCfg.ContentSource, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Static assets with pre-compressed file support (gzip/brotli)
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	// JSON API
	apiHandler := apifeature.NewHandler(rt.Catalog, logger)
	r.Mount("/api", apifeature.Routes(apiHandler))

	// Pages carry per-browser page state.
	r.Group(func(pages chi.Router) {
		pages.Use(rt.Views.Middleware)

		homeHandler := homefeature.NewHandler(rt.Catalog, logger)
		pages.Mount("/", homefeature.Routes(homeHandler))

		var copyMW []func(http.Handler) http.Handler
		if appCfg.CopyRateLimit > 0 {
			copyMW = append(copyMW, ratelimit.Middleware(ratelimit.New(appCfg.CopyRateLimit, time.Minute), logger))
		}
		topicHandler := topicfeature.NewHandler(rt.Catalog, logger)
		pages.Mount("/topic", topicfeature.Routes(topicHandler, copyMW...))
	})

	return r
}
