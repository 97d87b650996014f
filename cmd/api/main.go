package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	"github.com/BruksfildServices01/clinic-scheduler/internal/config"
	dbpkg "github.com/BruksfildServices01/clinic-scheduler/internal/db"
	"github.com/BruksfildServices01/clinic-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/clinic-scheduler/internal/routes"
	ucAppointment "github.com/BruksfildServices01/clinic-scheduler/internal/usecase/appointment"
	"github.com/gin-gonic/gin"
)

func main() {

	cfg := config.Load()

	// A store that fails to open or initialize is logged and kept: every
	// call then reports storage_unavailable instead of the program exiting.
	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		log.Printf("appointment store unavailable: %v", err)
	}
	defer dbpkg.Close(db)

	repo := repository.NewAppointmentGormRepository(db)
	if err := repo.Initialize(context.Background()); err != nil {
		log.Printf("failed to initialize appointment store: %v", err)
	}

	svc := ucAppointment.NewService(repo, audit.New(log.Default()))

	if !cfg.IsLocal() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	routes.RegisterRoutes(r, svc)

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: r,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("Server running on %s (driver=%s)", cfg.Addr(), cfg.DBDriver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("failed to start server: %v", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Println("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown: %v", err)
	}
}
