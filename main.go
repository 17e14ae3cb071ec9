package main

import (
	"context"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"deskrouter/agent/classifier"
	"deskrouter/agent/dispatcher"
	"deskrouter/agent/handlers"
	"deskrouter/conversation"
	"deskrouter/domain"
	configx "deskrouter/pkg/config"
	_ "deskrouter/pkg/logger/autoload"
	"deskrouter/transport/httpapi"
)

type AppConfig struct {
	HTTPAddr       string        `envconfig:"HTTP_ADDR" default:":3000"`
	DefaultUserID  string        `envconfig:"DEFAULT_USER_ID" default:"default-user"`
	HandlerTimeout time.Duration `envconfig:"HANDLER_TIMEOUT" default:"10s"`
	CORSOrigins    []string      `envconfig:"CORS_ORIGINS" default:"http://localhost:5173"`
}

func main() {
	appCfg := configx.MustNew[AppConfig]("")
	pgCfg := configx.MustNew[conversation.PostgresConfig]("POSTGRES")

	ctx := context.Background()

	var (
		store  conversation.Store
		reader domain.Reader
	)
	if pgCfg.DSN != "" {
		pg, err := conversation.NewPostgresStore(*pgCfg)
		if err != nil {
			log.Fatal().Err(err).Msg("open postgres store")
		}
		defer pg.Close()
		if err := pg.Init(ctx); err != nil {
			log.Fatal().Err(err).Msg("init conversation schema")
		}

		pgReader, err := domain.NewPostgresReader(pg.DB())
		if err != nil {
			log.Fatal().Err(err).Msg("open domain reader")
		}
		if err := pgReader.Init(ctx); err != nil {
			log.Fatal().Err(err).Msg("init domain schema")
		}

		store, reader = pg, pgReader
	} else {
		log.Warn().Msg("POSTGRES_DSN not set, falling back to in-memory storage")
		store, reader = conversation.NewMemoryStore(), domain.NewMemoryReader()
	}

	registry, err := handlers.NewRegistry(reader)
	if err != nil {
		log.Fatal().Err(err).Msg("build agent registry")
	}

	d, err := dispatcher.New(store, registry, classifier.NewDefault(), dispatcher.Config{
		DefaultUserID:  appCfg.DefaultUserID,
		HandlerTimeout: appCfg.HandlerTimeout,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("build dispatcher")
	}

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     appCfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	httpapi.Register(r, d, store, registry)

	log.Info().Str("addr", appCfg.HTTPAddr).Msg("chat router listening")
	if err := r.Run(appCfg.HTTPAddr); err != nil {
		log.Fatal().Err(err).Msg("http server stopped")
	}
}
