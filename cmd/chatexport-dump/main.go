// chatexport-dump runs the export pipeline once from the command line
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"chatexport/internal/modkit"
	"chatexport/internal/modkit/module"
	"chatexport/internal/platform/config"
	perr "chatexport/internal/platform/errors"
	"chatexport/internal/platform/logger"
	"chatexport/internal/platform/store"

	contactsdomain "chatexport/internal/services/contacts/domain"
	contactsmod "chatexport/internal/services/contacts/module"
	conversationsdomain "chatexport/internal/services/conversations/domain"
	conversationsmod "chatexport/internal/services/conversations/module"
)

func main() {
	var (
		name = flag.String("name", "", "contact name to export (required)")
		out  = flag.String("out", "", "artifact path, default <export-dir>/<name>_<timestamp>.json")
	)
	flag.Parse()

	if *name == "" {
		fmt.Fprintln(os.Stderr, "usage: chatexport-dump -name <contact> [-out <path>]")
		os.Exit(2)
	}

	root := config.New()
	msgCfg := root.Prefix("SERVICE_MESSAGES_")

	l := logger.Get()
	st, err := store.Open(context.Background(), store.Config{
		AppName: "chatexport-dump",
		Messages: store.MessagesConfig{
			Enabled:  true,
			Path:     msgCfg.MustString("DBPATH"),
			ReadOnly: msgCfg.MayBool("READ_ONLY", true),
			MaxConns: msgCfg.MayInt("MAX_CONNS", 2),
		},
	}, store.WithLogger(*l))
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	deps := modkit.Deps{Log: *l, Cfg: root, Messages: st.Messages}

	contacts := contactsmod.New(deps)
	resolver := module.MustPortsOf[contactsdomain.ResolverPort](contacts)

	conversations := conversationsmod.New(deps, modkit.WithPorts(resolver))
	exporter := module.MustPortsOf[conversationsdomain.ExporterPort](conversations)

	res, err := exporter.Export(context.Background(), conversationsdomain.ExportInput{
		Name: *name,
		Out:  *out,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", perr.CodeOf(err), err)
		os.Exit(1)
	}

	fmt.Printf("%s (%d messages)\n", res.Path, res.Messages)
}
