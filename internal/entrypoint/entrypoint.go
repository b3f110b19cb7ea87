package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"

	"github.com/mrlokans/bookmarks/internal/audit"
	"github.com/mrlokans/bookmarks/internal/config"
	"github.com/mrlokans/bookmarks/internal/database"
	auditdb "github.com/mrlokans/bookmarks/internal/database/audit"
	http_controllers "github.com/mrlokans/bookmarks/internal/http"
	"github.com/mrlokans/bookmarks/internal/jobs"
	"github.com/mrlokans/bookmarks/internal/tasks"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Starting server at %s:%d\n", cfg.HTTP.Host, cfg.HTTP.Port)
		// service connections
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Graceful shutdown: wait for SIGINT/SIGTERM, then drain with a timeout.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	// Call shutdown callback first (e.g., to stop task queue)
	if onShutdown != nil {
		onShutdown(ctx)
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting Bookmarks v%s", version)

	// Initialize database
	db, err := database.NewDatabase(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	// Create auditor for recording import and delete events
	auditor := audit.NewService(auditdb.NewRepository(db.DB))

	// Import job state lives in process memory only; a restart loses
	// in-flight jobs and pollers get 404s, which is the documented contract.
	jobStore := jobs.NewMemoryStore(cfg.Jobs.Retention)
	jobRunner := jobs.NewRunner(jobStore, db, cfg.Import.BatchSize, cfg.Import.BatchDelay)

	// Scheduled maintenance: purge expired jobs and old audit events.
	scheduler := cron.New()
	_, err = scheduler.AddFunc(cfg.Jobs.SweepSchedule, func() {
		if purged := jobStore.PurgeExpired(); purged > 0 {
			log.Printf("Purged %d expired import jobs", purged)
		}
	})
	if err != nil {
		log.Fatalf("Invalid job sweep schedule %q: %v", cfg.Jobs.SweepSchedule, err)
	}
	_, err = scheduler.AddFunc("@daily", func() {
		retention := time.Duration(cfg.Audit.RetentionDays) * 24 * time.Hour
		if deleted, err := auditor.DeleteOldEvents(retention); err != nil {
			log.Printf("Failed to delete old audit events: %v", err)
		} else if deleted > 0 {
			log.Printf("Deleted %d old audit events", deleted)
		}
	})
	if err != nil {
		log.Fatalf("Failed to schedule audit cleanup: %v", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	// Initialize task queue if enabled
	var taskClient *tasks.Client
	var taskCtxCancel context.CancelFunc
	if cfg.Tasks.Enabled {
		taskCfg := tasks.Config{
			Workers:           cfg.Tasks.Workers,
			ReleaseAfter:      cfg.Tasks.ReleaseAfter,
			CleanupInterval:   cfg.Tasks.CleanupInterval,
			RetentionDuration: cfg.Tasks.RetentionDuration,
		}

		taskClient, err = tasks.NewClient(cfg.Database.Path, taskCfg)
		if err != nil {
			log.Fatalf("Failed to initialize task queue: %v", err)
		}
		defer func() {
			if err := taskClient.Close(); err != nil {
				log.Printf("Error closing task client: %v", err)
			}
		}()

		// Register task queues
		taskClient.Register(
			tasks.NewCleanupOrphanTagsQueue(db),
		)

		// Start task workers in background
		var taskCtx context.Context
		taskCtx, taskCtxCancel = context.WithCancel(context.Background())
		go taskClient.Start(taskCtx)
	}

	// Build router configuration with all dependencies
	routerCfg := http_controllers.RouterConfig{
		Database:          db,
		BookmarkStore:     db,
		TagStore:          db,
		JobStore:          jobStore,
		JobRunner:         jobRunner,
		Auditor:           auditor,
		TaskClient:        taskClient,
		ImportMaxFileSize: cfg.Import.MaxFileSizeBytes,
		Version:           version,
	}

	router := http_controllers.NewRouter(routerCfg)

	// Shutdown callback for graceful cleanup
	onShutdown := func(ctx context.Context) {
		if taskClient != nil && taskCtxCancel != nil {
			taskClient.Stop(ctx)
			taskCtxCancel()
		}
	}

	Serve(router, cfg, onShutdown)
}
