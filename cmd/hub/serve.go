package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/arabello/hub-frontend-new/internal/config"
	"github.com/arabello/hub-frontend-new/internal/handler"
	"github.com/arabello/hub-frontend-new/internal/index"
	"github.com/arabello/hub-frontend-new/internal/middleware"
	"github.com/arabello/hub-frontend-new/internal/render"
	"github.com/arabello/hub-frontend-new/internal/usecase"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the catalog website and JSON API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			initLogger(cfg)
			return runServer(cfg)
		},
	}
}

func runServer(cfg *config.Config) error {
	source := index.NewClient(cfg.Index.URL, cfg.Index.Timeout, cfg.Index.TTL)
	catalogUC := usecase.NewCatalogUseCase(source, cfg.Site.Featured)
	searchUC := usecase.NewSearchUseCase(catalogUC)

	tpl, err := render.Templates()
	if err != nil {
		return fmt.Errorf("parse templates: %w", err)
	}

	h := handler.New(catalogUC, searchUC, cfg.Site.Title)

	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Logging(), gin.Recovery())
	router.SetHTMLTemplate(tpl)

	h.RegisterRoutes(router)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		log.Infof("starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced shutdown: %w", err)
	}

	log.Info("server stopped")
	return nil
}
