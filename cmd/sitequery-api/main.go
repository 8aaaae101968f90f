// @title         Sitequery API
// @version       0.1.0
// @description   Natural-language query parsing for the construction dashboard

package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sitequery/internal/platform/config"
	"sitequery/internal/platform/logger"
	phttp "sitequery/internal/platform/net/http"
	"sitequery/internal/platform/net/middleware"
	querymod "sitequery/internal/services/query/module"
)

func main() {
	// service-scoped config for HTTP etc (CORE_API_*)
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")

	// bring up logging early
	l := logger.Get()

	srv := phttp.NewServer(apiCfg)
	r := srv.Router()

	r.Use(
		middleware.RequestID,
		middleware.RecoverJSON,
		middleware.CORS(middleware.CORSOptions{
			AllowedOrigins: apiCfg.MayCSV("CORS_ORIGINS", nil),
		}),
		middleware.AccessLogZerolog(middleware.AccessLogOptions{
			Slow: apiCfg.MayDuration("SLOW_REQUEST", 500*time.Millisecond),
		}),
	)

	phttp.Get(r, "/healthz", func(*http.Request) (any, error) {
		return map[string]string{"status": "ok"}, nil
	})

	querymod.New(root, querymod.Options{}).Mount(r)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
