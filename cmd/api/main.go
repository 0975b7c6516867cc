package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hansol-labs/compliboard/internal/application"
	appassist "github.com/hansol-labs/compliboard/internal/application/assist"
	appcompliance "github.com/hansol-labs/compliboard/internal/application/compliance"
	appdocs "github.com/hansol-labs/compliboard/internal/application/documents"
	appsettings "github.com/hansol-labs/compliboard/internal/application/settings"
	apptasks "github.com/hansol-labs/compliboard/internal/application/tasks"
	"github.com/hansol-labs/compliboard/internal/config"
	domassist "github.com/hansol-labs/compliboard/internal/domain/assist"
	domcompliance "github.com/hansol-labs/compliboard/internal/domain/compliance"
	domdocs "github.com/hansol-labs/compliboard/internal/domain/documents"
	domsettings "github.com/hansol-labs/compliboard/internal/domain/settings"
	domtasks "github.com/hansol-labs/compliboard/internal/domain/tasks"
	aiopenai "github.com/hansol-labs/compliboard/internal/infra/ai/openai"
	memdb "github.com/hansol-labs/compliboard/internal/infra/db/memory"
	mysqlp "github.com/hansol-labs/compliboard/internal/infra/db/mysql"
	postgresp "github.com/hansol-labs/compliboard/internal/infra/db/postgres"
	"github.com/hansol-labs/compliboard/internal/infra/httpserver"
	"github.com/hansol-labs/compliboard/internal/infra/storage"
	"github.com/hansol-labs/compliboard/internal/middleware"
)

func main() {
	path := "config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		path = v
	}

	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}

	ctx := context.Background()

	var (
		docRepo      domdocs.Repository
		statusRepo   domcompliance.StatusRepository
		taskRepo     domtasks.Repository
		settingsRepo domsettings.Repository
		memTasks     *memdb.TaskRepository
	)
	health := make(map[string]middleware.HealthChecker)

	switch cfg.Database.Driver {
	case "mysql":
		db, err := mysqlp.Connect(ctx, cfg.MySQLDSN())
		if err != nil {
			log.Fatalf("mysql connect error: %v", err)
		}
		defer db.Close()
		docRepo = mysqlp.NewDocumentRepository(db)
		statusRepo = mysqlp.NewStatusRepository(db)
		taskRepo = mysqlp.NewTaskRepository(db)
		settingsRepo = mysqlp.NewSettingsRepository(db)
		health["database"] = &middleware.DatabaseHealthChecker{DB: db}
	case "postgres":
		db, err := postgresp.Connect(ctx, cfg.PostgresDSN())
		if err != nil {
			log.Fatalf("postgres connect error: %v", err)
		}
		defer db.Close()
		docRepo = postgresp.NewDocumentRepository(db)
		statusRepo = postgresp.NewStatusRepository(db)
		taskRepo = postgresp.NewTaskRepository(db)
		settingsRepo = postgresp.NewSettingsRepository(db)
		health["database"] = &middleware.DatabaseHealthChecker{DB: db}
	default:
		// dev profile: everything in process
		log.Println("no database configured, using in-memory repositories")
		docRepo = memdb.NewDocumentRepository()
		statusRepo = memdb.NewStatusRepository()
		memTasks = memdb.NewTaskRepository()
		taskRepo = memTasks
		settingsRepo = memdb.NewSettingsRepository()
	}

	var blobs domdocs.BlobStore
	var blobHandler http.Handler
	if cfg.Minio.Endpoint != "" {
		store, err := storage.New(ctx,
			cfg.Minio.Endpoint,
			cfg.Minio.Region,
			cfg.Minio.BucketName,
			cfg.Minio.AccessKey,
			cfg.Minio.SecretKey,
			cfg.Minio.UseSSL,
		)
		if err != nil {
			log.Fatalf("minio init error: %v", err)
		}
		blobs = store
		health["storage"] = middleware.HealthCheckerFunc(store.Ping)
	} else {
		log.Println("no object store configured, using in-memory blob store")
		mem := storage.NewMemory(fmt.Sprintf("http://localhost:%d/blobs", cfg.Server.Port))
		blobs = mem
		blobHandler = mem.Handler()
	}

	var assistClient domassist.Client
	if cfg.OpenAI.APIKey != "" {
		assistClient = aiopenai.NewClient(cfg.OpenAI.APIKey, cfg.OpenAI.Model)
	}

	clock := application.SystemClock{}
	docsSvc := &appdocs.Service{Repo: docRepo, Blobs: blobs, Clock: clock}
	controlsSvc := &appcompliance.Service{Statuses: statusRepo, Settings: settingsRepo, Clock: clock}
	tasksSvc := &apptasks.Service{Repo: taskRepo, Clock: clock}
	settingsSvc := &appsettings.Service{Repo: settingsRepo, Clock: clock}
	assistSvc := &appassist.Service{Client: assistClient}

	tokens := make(map[string]middleware.Principal, len(cfg.Auth.Tokens))
	for _, t := range cfg.Auth.Tokens {
		if err := middleware.ValidateOrgID(t.Organization); err != nil {
			log.Fatalf("auth config error: %v", err)
		}
		tokens[t.Token] = middleware.Principal{Organization: t.Organization, User: t.User}
	}

	if memTasks != nil {
		seeded := make(map[string]bool)
		for _, p := range tokens {
			if seeded[p.Organization] {
				continue
			}
			seeded[p.Organization] = true
			if err := memdb.SeedTasks(ctx, memTasks, p.Organization); err != nil {
				log.Printf("task seed error: %v", err)
			}
		}
	}

	handler := httpserver.NewRouter(docsSvc, controlsSvc, tasksSvc, settingsSvc, assistSvc, httpserver.Options{
		Tokens:         tokens,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		RateCapacity:   cfg.RateLimit.Capacity,
		RateRefill:     cfg.RateLimit.RefillRate,
		Health:         health,
		Blobs:          blobHandler,
	})

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("server listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	log.Println("shutting down server...")

	ctx2, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx2); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}
