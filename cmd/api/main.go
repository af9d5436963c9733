package main

import (
	"context"
	"log"
	"net/http"

	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"datachat/internal/charttool"
	"datachat/internal/dataset"
	"datachat/internal/fetch"
	"datachat/internal/gateway/config"
	"datachat/internal/gateway/rpc"
	"datachat/internal/history"
	"datachat/internal/llm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	router := &fetch.Router{HTTP: &fetch.HTTPFetcher{}}
	if cfg.S3.Enabled {
		s3, err := fetch.NewS3Fetcher(fetch.S3Config{
			Endpoint:  cfg.S3.Endpoint,
			Region:    cfg.S3.Region,
			AccessKey: cfg.S3.AccessKey,
			SecretKey: cfg.S3.SecretKey,
			UseSSL:    cfg.S3.UseSSL,
		})
		if err != nil {
			log.Printf("s3 fetcher disabled: %v", err)
		} else {
			router.S3 = s3
		}
	}

	loader, err := dataset.NewCachedLoader(&dataset.Loader{Fetcher: router}, cfg.CacheSize)
	if err != nil {
		log.Fatalf("init dataset cache: %v", err)
	}

	dispatcher := charttool.NewDispatcher()
	store := history.NewFromEnv()
	defer store.Close()

	var model llm.ChatModel
	if gemini, err := llm.NewGeminiClient(context.Background(), cfg.GeminiModel); err != nil {
		log.Printf("chat model disabled: %v", err)
	} else {
		model = gemini
		defer gemini.Close()
	}

	svc := &rpc.Service{
		Loader:     loader,
		Dispatcher: dispatcher,
		History:    store,
		MaxRows:    cfg.MaxRows,
	}
	chat := &rpc.ChatHandler{
		Loader:     loader,
		Model:      model,
		Dispatcher: dispatcher,
		BasePrompt: cfg.BasePrompt,
		MaxRows:    cfg.MaxRows,
	}

	mux := rpc.NewMux(svc, chat)
	handler := h2c.NewHandler(mux, &http2.Server{})

	log.Printf("datachat api listening on %s (env=%s)", cfg.Port, cfg.Env)
	if err := http.ListenAndServe(cfg.Port, handler); err != nil {
		log.Fatalf("server: %v", err)
	}
}
