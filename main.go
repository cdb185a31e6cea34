package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KidawR/MainProgect/audit"
	"github.com/KidawR/MainProgect/config"
	"github.com/KidawR/MainProgect/database"
	"github.com/KidawR/MainProgect/docstore"
	"github.com/KidawR/MainProgect/models"
	"github.com/KidawR/MainProgect/repository"
	"github.com/KidawR/MainProgect/router"
	"github.com/KidawR/MainProgect/utils"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
)

func main() {
	utils.InitLogger()

	cfg, err := config.Load()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to load config: %v", err)
	}

	log := config.NewLogger(cfg.Log)
	utils.UseLogger(log)

	if cfg.Primary.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := config.OpenDatabase(cfg.Database, log)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get sql handle: %v", err)
	}

	if err := database.Migrate(db, log); err != nil {
		log.Fatalf("Failed to migrate: %v", err)
	}
	if err := database.SeedBranches(db, database.DefaultBranches, log); err != nil {
		log.Fatalf("Failed to seed branches: %v", err)
	}

	mongoClient, docs := openDocuments(cfg, log)

	emitter := audit.NewEmitter(docs,
		audit.WithBuffer(cfg.Audit.Buffer),
		audit.WithWriteTimeout(cfg.Audit.WriteTimeout),
		audit.WithLogger(log.WithField("component", "audit")),
		audit.OnFailure(func(entry *models.ActionLog, err error) {
			log.WithFields(logrus.Fields{
				"action":  entry.Action,
				"user_id": entry.UserID,
			}).WithError(err).Warn("audit record lost")
		}),
	)

	repo := repository.New(db, docs, emitter,
		repository.WithTimeout(cfg.Store.OpTimeout),
		repository.WithLogger(log.WithField("component", "repository")),
	)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router.SetupRouter(repo, cfg.Server, log),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Infof("Listening on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Error("http shutdown")
	}
	if err := emitter.Close(ctx); err != nil {
		log.WithError(err).Error("audit emitter close")
	}
	stats := emitter.Stats()
	log.WithFields(logrus.Fields{
		"delivered": stats.Delivered,
		"dropped":   stats.Dropped,
		"failed":    stats.Failed,
	}).Info("audit emitter stopped")

	if mongoClient != nil {
		if err := mongoClient.Disconnect(ctx); err != nil {
			log.WithError(err).Error("mongo disconnect")
		}
	}
	if err := sqlDB.Close(); err != nil {
		log.WithError(err).Error("database close")
	}
}

// openDocuments connects the document store. Without Mongo the process
// keeps serving the relational API with reviews and logs held in memory.
func openDocuments(cfg *config.Config, log *logrus.Logger) (*mongo.Client, docstore.Store) {
	ctx := context.Background()

	client, err := config.ConnectMongo(ctx, cfg.Mongo)
	if err != nil {
		log.WithError(err).Warn("Mongo unavailable, reviews and logs are kept in memory")
		return nil, docstore.NewMemoryStore()
	}

	store := docstore.NewMongoStore(client.Database(cfg.Mongo.Database))
	idxCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := database.EnsureMongoIndexes(idxCtx, store, log); err != nil {
		log.WithError(err).Warn("continuing without mongo indexes")
	}
	return client, store
}
