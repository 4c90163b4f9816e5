package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	httpadapter "svw.info/puzzlefeed/internal/adapters/http"
	"svw.info/puzzlefeed/internal/adapters/social"
	"svw.info/puzzlefeed/internal/config"
	"svw.info/puzzlefeed/internal/ctxlog"
	"svw.info/puzzlefeed/internal/domain"
	"svw.info/puzzlefeed/internal/generator"
	"svw.info/puzzlefeed/internal/hint"
	"svw.info/puzzlefeed/internal/infrastructure/storage"
	"svw.info/puzzlefeed/internal/ports"
	"svw.info/puzzlefeed/internal/scheduler"
	"svw.info/puzzlefeed/internal/solver"
	"svw.info/puzzlefeed/internal/usecase"
	"svw.info/puzzlefeed/internal/validator"
	"svw.info/puzzlefeed/web"
)

// requestLogger logs method, path, status, bytes, and duration in a
// human-readable format, and installs the logger on the request context.
func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Request = c.Request.WithContext(ctxlog.WithLogger(c.Request.Context(), logger))
		c.Next()
		logger.Info("http",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"bytes", c.Writer.Size(),
			"dur", time.Since(start).Round(time.Millisecond),
		)
	}
}

func main() {
	addr := flag.String("addr", "", "listen address (overrides config)")
	persist := flag.String("persist-path", "", "save directory (overrides config)")
	levelStr := flag.String("log-level", "info", "debug|info|warn|error")
	configPath := flag.String("config", "", "optional HCL config file")
	flag.Parse()

	lvl := slog.LevelInfo
	switch strings.ToLower(*levelStr) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
	slog.SetDefault(logger)

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			logger.Error("config error", "err", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *addr != "" {
		cfg.ListenAddr = *addr
	}
	if *persist != "" {
		cfg.DataDir = *persist
	}
	_ = os.MkdirAll(cfg.DataDir, 0o755)

	// Wire providers → use cases → HTTP adapter
	s := solver.NewBacktrackingSolver()
	g := generator.NewUniqueGenerator(s)
	v := validator.New()
	st := storage.NewFS(cfg.DataDir)
	hin := hint.NewSingles()
	uc := usecase.NewService(s, g, v, hin, st)
	if d, err := domain.ParseDifficulty(cfg.DailyDifficulty); err == nil {
		uc.DailyDifficulty = d
	}
	h := httpadapter.New(uc)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(requestLogger(logger), gin.Recovery())
	r.SetHTMLTemplate(web.Templates())
	r.StaticFS("/static", web.StaticFS())
	r.GET("/", func(c *gin.Context) {
		c.HTML(http.StatusOK, "index.tmpl", gin.H{})
	})
	h.Register(r)

	// Optional daily posting loop.
	if cfg.Schedule != nil && len(cfg.Schedule.PostTimes) > 0 {
		var posters []ports.Poster
		for _, sc := range cfg.Social {
			if sc.Enabled {
				posters = append(posters, social.NewBotPoster(sc))
			}
		}
		sched := scheduler.New(uc, posters, cfg.Schedule.PostTimes, cfg.Schedule.Language)
		ctx := ctxlog.WithLogger(context.Background(), logger)
		go func() {
			if err := sched.Run(ctx); err != nil && err != context.Canceled {
				logger.Error("scheduler stopped", "err", err)
			}
		}()
	}

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}
	logger.Info("listening", "addr", cfg.ListenAddr, "persist", cfg.DataDir)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server error", "err", err)
		os.Exit(1)
	}
}
