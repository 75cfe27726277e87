package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	_ "github.com/invoicing-microservice/smartinvoice/docs"
	"github.com/invoicing-microservice/smartinvoice/pkg/api"
	"github.com/invoicing-microservice/smartinvoice/pkg/cache"
	"github.com/invoicing-microservice/smartinvoice/pkg/pdf"
	"github.com/invoicing-microservice/smartinvoice/pkg/storage"
	"github.com/invoicing-microservice/smartinvoice/pkg/store"
)

const shutdownTimeout = 10 * time.Second

func serve(c *cli.Context) error {
	cfg, log, err := setup(c)
	if err != nil {
		return err
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(c.Context, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	opts := []api.Option{api.WithLogger(log)}

	if cfg.DatabaseURL != "" {
		st, err := store.Open(ctx, cfg.DatabaseURL, log)
		if err != nil {
			return err
		}
		defer st.Close()
		if err := st.Migrate(ctx); err != nil {
			return err
		}
		opts = append(opts, api.WithStore(st))
	} else {
		log.Warn("DATABASE_URL not set, invoice storage disabled")
	}

	if cfg.RedisAddr != "" {
		rc, err := cache.NewRedis(ctx, cache.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
			TTL:      cfg.CacheTTL,
		})
		if err != nil {
			// The cache is optional; render without it.
			log.Warn("redis unavailable, pdf cache disabled", zap.Error(err))
		} else {
			defer rc.Close()
			opts = append(opts, api.WithCache(rc))
		}
	}

	if cfg.StorageEnabled() {
		s3, err := storage.NewS3(cfg.S3Region, cfg.S3Bucket, cfg.S3PublicBaseURL)
		if err != nil {
			return err
		}
		opts = append(opts, api.WithFiles(storage.NewService(s3, log, cfg.S3LogoPrefix, cfg.S3PDFPrefix, cfg.MaxLogoBytes)))
	}

	gen := pdf.NewGenerator(pdf.WithLogger(log))
	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           api.NewServer(gen, opts...).Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		log.Info("server starting", zap.String("addr", cfg.Addr))
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
