// Package app wires configuration, stores and the chat service into a
// runnable gateway.
package app

import (
	"context"
	"log"
	"net/http"

	"archie/internal/catalog"
	"archie/internal/gateway/config"
	"archie/internal/gateway/handler"
	"archie/internal/gateway/repository/chatstore"
	"archie/internal/gateway/repository/transcript"
	"archie/internal/gateway/server"
	"archie/internal/gateway/usecase/chat"
	"archie/internal/llm"
	"archie/internal/llmclient"
	"archie/internal/prompt"
)

type App struct {
	Config  *config.Config
	Handler http.Handler

	srv     *server.Server
	closers []func() error
}

func New(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	a := &App{Config: cfg}

	store := a.buildStore(cfg)
	completer := buildCompleter(ctx, cfg)
	archive := buildArchive(cfg)

	svc := chat.NewService(store, completer, prompt.NewCompiler(catalog.MustDefault()), archive)
	a.Handler = server.NewMux(handler.New(svc, store))
	a.srv = server.New(cfg.Port, a.Handler)
	return a, nil
}

func (a *App) Start() error { return a.srv.Start() }

func (a *App) Shutdown(ctx context.Context) error {
	err := a.srv.Shutdown(ctx)
	a.close()
	return err
}

// buildStore prefers postgres. The in-memory store needs an explicit
// opt-in because it loses everything on restart; with neither configured
// the service answers 503 per turn instead of failing startup.
func (a *App) buildStore(cfg *config.Config) chatstore.Store {
	if cfg.DatabaseURL != "" {
		pg, err := chatstore.NewPostgres(cfg.DatabaseURL)
		if err != nil {
			log.Printf("app: postgres init failed: %v", err)
			return nil
		}
		a.closers = append(a.closers, pg.Close)
		cached, err := chatstore.NewCached(pg)
		if err != nil {
			log.Printf("app: store cache init failed, using uncached store: %v", err)
			return pg
		}
		return cached
	}
	if cfg.AllowMemoryStore {
		log.Printf("app: DATABASE_URL not set, using in-memory store")
		return chatstore.NewMemory()
	}
	log.Printf("app: no store configured, chat requests will be rejected")
	return nil
}

func buildCompleter(ctx context.Context, cfg *config.Config) chat.Completer {
	if cfg.GeminiAPIKey == "" {
		log.Printf("app: GEMINI_API_KEY not set, chat requests will be rejected")
		return nil
	}
	cli, err := llmclient.NewGeminiClient(ctx, cfg.GeminiAPIKey)
	if err != nil {
		log.Printf("app: gemini client init failed: %v", err)
		return nil
	}
	return llm.NewBroker(cli)
}

func buildArchive(cfg *config.Config) chat.Archiver {
	if !cfg.Transcript.Enabled {
		return nil
	}
	s3, err := transcript.NewS3Store(transcript.S3Config{
		Endpoint:  cfg.Transcript.Endpoint,
		Region:    cfg.Transcript.Region,
		AccessKey: cfg.Transcript.AccessKey,
		SecretKey: cfg.Transcript.SecretKey,
		Bucket:    cfg.Transcript.Bucket,
		UseSSL:    cfg.Transcript.UseSSL,
	})
	if err != nil {
		log.Printf("app: transcript archive disabled: %v", err)
		return nil
	}
	return s3
}

func (a *App) close() {
	for _, close := range a.closers {
		if err := close(); err != nil {
			log.Printf("app: close: %v", err)
		}
	}
}
