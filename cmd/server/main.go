package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	stdhttp "net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/vncsmyrnk/wagle/internal/adapters/handler/http"
	"github.com/vncsmyrnk/wagle/internal/adapters/profile"
	"github.com/vncsmyrnk/wagle/internal/adapters/repository/memory"
	"github.com/vncsmyrnk/wagle/internal/adapters/repository/postgres"
	"github.com/vncsmyrnk/wagle/internal/config"
	"github.com/vncsmyrnk/wagle/internal/core/ports"
	"github.com/vncsmyrnk/wagle/internal/core/services"
	"github.com/vncsmyrnk/wagle/internal/logger"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", os.Getenv("CONFIG_PATH"), "path to a YAML config file")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatal(err)
	}

	logg := logger.New(cfg.Env)
	slog.SetDefault(logg)

	topics, comments, closeSource, err := topicSource(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer closeSource()

	profiles := profile.NewGenerator(cfg.ProfileSeed)
	catalogService := services.NewCatalogService(topics)
	roomService := services.NewRoomService(topics, comments, profiles, logg, nil)
	suggestionService := services.NewSuggestionService(logg)

	sessions := http.NewSessionStore(cfg.Session.TTL, func() *services.Coordinator {
		return services.NewCoordinator(catalogService, roomService, suggestionService, logg)
	})

	handler := http.NewHandler(sessions, http.RouterConfig{
		AllowedOrigins: cfg.HTTP.AllowedOrigins,
		SecureCookies:  cfg.HTTP.SecureCookies,
	})
	server := &stdhttp.Server{
		Addr:         cfg.HTTP.Addr(),
		Handler:      handler,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logg.Info("starting server",
			slog.String("addr", server.Addr),
			slog.String("env", cfg.Env),
			slog.String("topic_source", cfg.TopicSource),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	<-ctx.Done()
	logg.Info("gracefully shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal(err)
	}
}

func topicSource(cfg *config.Config) (ports.TopicRepository, ports.CommentRepository, func(), error) {
	switch cfg.TopicSource {
	case config.SourcePostgres:
		db, err := sqlx.Connect("postgres", cfg.Postgres.ConnString())
		if err != nil {
			return nil, nil, nil, fmt.Errorf("failed to connect to postgres: %w", err)
		}
		closeDB := func() { db.Close() }
		return postgres.NewTopicRepository(db), postgres.NewCommentRepository(db), closeDB, nil
	default:
		return memory.NewTopicRepository(memory.SeedTopics()),
			memory.NewCommentRepository(memory.SeedComments()),
			func() {}, nil
	}
}
