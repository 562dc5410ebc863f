// @title         chatexport API
// @version       0.1.0
// @description   Resolve contacts and export iMessage conversations to JSON

package main

import (
	"context"

	"chatexport/internal/platform/config"
	"chatexport/internal/platform/logger"
	phttp "chatexport/internal/platform/net/http"
	"chatexport/internal/platform/store"

	"chatexport/internal/services/api"
)

func main() {
	// service-scoped config for HTTP etc (CORE_API_*)
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")

	msgCfg := root.Prefix("SERVICE_MESSAGES_") // message store lives under SERVICE_MESSAGES_*

	// bring up logging early
	l := logger.Get()

	// open the platform store (read only sqlite message store)
	st, err := store.Open(
		context.Background(),
		store.Config{
			AppName: "chatexport-api",
			Messages: store.MessagesConfig{
				Enabled:  true,
				Path:     msgCfg.MustString("DBPATH"),
				ReadOnly: msgCfg.MayBool("READ_ONLY", true),
				MaxConns: msgCfg.MayInt("MAX_CONNS", 2),
			},
		},
		store.WithLogger(*logger.Get()),
	)
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	// http server (reads CORE_API_PORT / CORE_API_ADDR)
	srv := phttp.NewServer(apiCfg)

	// mount our API
	api.Mount(
		srv.Router(),
		api.Options{
			Config:        root,
			Store:         st,
			Logger:        l,
			EnableSwagger: apiCfg.MayBool("SWAGGER", true),
		},
	)

	// run
	if err := srv.Run(context.Background()); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
