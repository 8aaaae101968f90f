// Package module wires the query service onto the http router
package module

import (
	"sitequery/internal/platform/clock"
	"sitequery/internal/platform/config"
	phttp "sitequery/internal/platform/net/http"
	"sitequery/internal/services/query/domain"
	qhttp "sitequery/internal/services/query/http"
	"sitequery/internal/services/query/service"
)

// Module bundles the query service and its transport
type Module struct {
	svc domain.ParserPort
}

// New constructs the query module from config, with overrides winning
func New(cfg config.Conf, overrides Options) *Module {
	o := FromConfig(cfg)
	if overrides.DefaultLimit != 0 {
		o.DefaultLimit = overrides.DefaultLimit
	}
	svc := service.New(service.Config{
		DefaultLimit: o.DefaultLimit,
		Clock:        clock.System(),
	})
	return &Module{svc: svc}
}

// Parser exposes the service port for other modules
func (m *Module) Parser() domain.ParserPort { return m.svc }

// Mount registers the query routes under /query
func (m *Module) Mount(r phttp.Router) {
	r.Route("/query", func(sub phttp.Router) {
		qhttp.Register(sub, m.svc)
	})
}
