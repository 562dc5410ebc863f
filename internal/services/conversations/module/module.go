// Package module implements the conversations service module
package module

import (
	"net/http"

	"chatexport/internal/modkit"
	"chatexport/internal/modkit/httpkit"
	str "chatexport/internal/platform/strings"
	contactsdomain "chatexport/internal/services/contacts/domain"
	"chatexport/internal/services/conversations/domain"
	conversationshttp "chatexport/internal/services/conversations/http"
	"chatexport/internal/services/conversations/repo"
	"chatexport/internal/services/conversations/service"
)

// Ports exposed by the conversations module
type Ports struct {
	Locator   domain.LocatorPort
	Extractor domain.ExtractorPort
	Exporter  domain.ExporterPort
}

// Module implements the conversations service module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string
	mws    []func(http.Handler) http.Handler
	ports  Ports

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)
}

// New constructs a conversations module
// a contact resolver port must be injected via modkit.WithPorts
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("conversations"),
		modkit.WithPrefix("/conversations"),
	}, opts...)...)

	resolver, ok := b.Ports.(contactsdomain.ResolverPort)
	if !ok || resolver == nil {
		panic("conversations module requires a contact resolver port")
	}
	if deps.Messages == nil {
		panic("conversations module requires the message store seam")
	}

	o := FromConfig(deps.Cfg)
	svc := service.New(deps.Messages, repo.NewSQLite(), resolver, service.Config{
		ExportDir: o.ExportDir,
	}, deps.Log)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		subrouter: b.Subrouter,
	}
	m.ports = Ports{Locator: svc, Extractor: svc, Exporter: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		conversationshttp.Register(r, conversationshttp.Deps{
			Exporter: m.ports.Exporter,
		})
		if external != nil {
			external(r)
		}
	}

	return m
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	httpkit.MountUnder(r, m.prefix, m.mws, func(rr httpkit.Router) {
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name implements the modkit.Module interface
func (m *Module) Name() string { return str.MustString(m.name, "conversations") }

// Prefix implements the modkit.Module interface
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Ports implements the modkit.Module interface
func (m *Module) Ports() any { return m.ports }
