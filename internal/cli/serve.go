package cli

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/riteshp0/DinoKicks/internal/api"
	"github.com/riteshp0/DinoKicks/internal/api/handler"
	"github.com/riteshp0/DinoKicks/internal/api/router"
	"github.com/riteshp0/DinoKicks/internal/appcontext"
	"github.com/riteshp0/DinoKicks/internal/config"
	"github.com/spf13/cobra"
)

// NewServeCommand starts the HTTP API server.
func NewServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the storefront API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}
}

func runServe() error {
	app, err := appcontext.NewApplicationContext(config.GetConfig())
	if err != nil {
		return err
	}

	// 初始化 handler
	productHandler := handler.NewProductHandler(app.CatalogService)
	cartHandler := handler.NewCartHandler(app.CartService)
	orderHandler := handler.NewOrderHandler(app.OrderService)
	quizHandler := handler.NewQuizHandler(app.QuizService)

	server := api.NewServer(productHandler, cartHandler, orderHandler, quizHandler)

	// 設置路由
	r := router.SetupRouter(server, &app.Logger)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", app.Cf.ServerPort),
		Handler: r,
	}

	// 設置訊號監聽
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	shutDownCompleted := make(chan struct{}, 1)
	go func() {
		<-sigChan
		app.Logger.Info().Msg("Received shutdown signal")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			app.Logger.Error().Err(err).Msg("Server shutdown error")
		}

		if err := app.Shutdown(shutdownCtx); err != nil {
			app.Logger.Error().Err(err).Msg("Application shutdown error")
		}

		shutDownCompleted <- struct{}{}
	}()

	app.Logger.Info().Str("addr", srv.Addr).Msg("Server starting")
	if err := srv.ListenAndServe(); err != http.ErrServerClosed {
		return err
	}
	<-shutDownCompleted
	app.Logger.Info().Msg("closed completed")
	return nil
}
