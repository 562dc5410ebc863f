// Package module implements the contacts service module
package module

import (
	"net/http"

	"chatexport/internal/modkit"
	"chatexport/internal/modkit/httpkit"
	str "chatexport/internal/platform/strings"
	"chatexport/internal/services/contacts/domain"
	contactshttp "chatexport/internal/services/contacts/http"
	"chatexport/internal/services/contacts/repo"
	"chatexport/internal/services/contacts/service"
)

// Ports exposed by the contacts module
type Ports struct {
	Resolver  domain.ResolverPort
	Refresher domain.RefresherPort
}

// Module implements the contacts service module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string
	mws    []func(http.Handler) http.Handler
	ports  Ports

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)
}

// New constructs a contacts module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("contacts"),
		modkit.WithPrefix("/contacts"),
	}, opts...)...)

	o := FromConfig(deps.Cfg)
	svc := service.New(repo.NewCSV(o.SnapshotPath), service.Config{
		SnapshotPath: o.SnapshotPath,
		RefreshCmd:   o.RefreshCmd,
		MatchCutoff:  o.MatchCutoff,
	}, deps.Log)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		subrouter: b.Subrouter,
	}
	m.ports = Ports{Resolver: svc, Refresher: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		contactshttp.Register(r, contactshttp.Deps{
			Resolver:  m.ports.Resolver,
			Refresher: m.ports.Refresher,
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
func (m *Module) Name() string { return str.MustString(m.name, "contacts") }

// Prefix implements the modkit.Module interface
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Ports implements the modkit.Module interface
func (m *Module) Ports() any { return m.ports }
