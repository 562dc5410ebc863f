// Package api provides the HTTP API for the application
package api

import (
	"chatexport/internal/platform/config"
	"chatexport/internal/platform/logger"
	phttp "chatexport/internal/platform/net/http"
	"chatexport/internal/platform/store"

	"chatexport/internal/modkit"
	"chatexport/internal/modkit/httpkit"
	"chatexport/internal/modkit/module"
	"chatexport/internal/modkit/swaggerkit"

	metamod "chatexport/internal/services/api/meta/module"
	contactsdomain "chatexport/internal/services/contacts/domain"
	contactsmod "chatexport/internal/services/contacts/module"
	conversationsmod "chatexport/internal/services/conversations/module"
)

// Options are the API options
type Options struct {
	Config        config.Conf
	Store         *store.Store
	Logger        *logger.Logger
	EnableSwagger bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	log := logger.Get()
	if opt.Logger != nil {
		log = opt.Logger
	}

	// shared deps for modules
	deps := modkit.Deps{
		Log:      *log,
		Cfg:      opt.Config,
		Messages: opt.Store.Messages,
	}

	// contacts first, the conversations pipeline needs its resolver port
	contacts := contactsmod.New(deps)
	resolver := module.MustPortsOf[contactsdomain.ResolverPort](contacts)

	conversations := conversationsmod.New(deps, modkit.WithPorts(resolver))

	mods := []module.Module{
		metamod.New(deps),
		contacts,
		conversations,
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		swaggerkit.Mount(r, opt.EnableSwagger)

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})
}
