package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pos/api"
	"pos/cmd"
	"pos/internal/pkg/netutil"

	"github.com/labstack/gommon/log"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configs, err := cmd.LoadConfig(".env")
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: configs.LogLevel}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	doc, err := api.Load(ctx)
	if err != nil {
		log.Fatalf("Error loading OpenAPI document: %v", err)
	}
	api.RegisterSwagger(doc)

	app, err := cmd.NewCompositionRoot(configs, logger)
	if err != nil {
		log.Fatalf("Error building application: %v", err)
	}

	localIP := netutil.LocalIPv4()
	e := app.CreateRouter(localIP, doc)

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}

	go func() {
		if err := e.Start(configs.Addr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	printBanner(configs, localIP)
	logger.Info("server started",
		"addr", configs.Addr(),
		"realtime", configs.RealtimeEnabled,
		"policy", app.Policy().String(),
	)

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err = e.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown failed", "error", err)
	}
	if hub := app.Hub(); hub != nil {
		hub.CloseAll()
	}
	jobManager.StopAll()
	logger.Info("server stopped")
}

func printBanner(configs cmd.Config, localIP string) {
	fmt.Println("==============================================")
	fmt.Println(" Restaurant POS server")
	fmt.Printf(" Local:   http://localhost:%s\n", configs.HTTPPort)
	fmt.Printf(" Network: http://%s:%s\n", localIP, configs.HTTPPort)
	if configs.RealtimeEnabled {
		fmt.Printf(" Socket:  ws://%s:%s/ws\n", localIP, configs.HTTPPort)
	}
	fmt.Printf(" Docs:    http://localhost:%s/swagger/index.html\n", configs.HTTPPort)
	fmt.Println("==============================================")
}
