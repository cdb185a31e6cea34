package Controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/KidawR/MainProgect/audit"
	"github.com/KidawR/MainProgect/config"
	"github.com/KidawR/MainProgect/database"
	"github.com/KidawR/MainProgect/docstore"
	"github.com/KidawR/MainProgect/repository"
	"github.com/KidawR/MainProgect/router"
	"github.com/KidawR/MainProgect/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type apiResponse struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type server struct {
	t       *testing.T
	router  *gin.Engine
	docs    *docstore.MemoryStore
	emitter *audit.Emitter
}

func setupServer(t *testing.T) *server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	utils.InitLogger()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	log, _ := test.NewNullLogger()
	require.NoError(t, database.Migrate(db, log))
	require.NoError(t, database.SeedBranches(db, database.DefaultBranches, log))

	docs := docstore.NewMemoryStore()
	emitter := audit.NewEmitter(docs, audit.WithLogger(log.WithField("component", "audit")))
	repo := repository.New(db, docs, emitter, repository.WithTimeout(5*time.Second))

	cfg := config.Default().Server
	cfg.RateLimit = 0

	t.Cleanup(func() {
		emitter.Close(context.Background())
		sqlDB.Close()
	})

	return &server{t: t, router: router.SetupRouter(repo, cfg, log), docs: docs, emitter: emitter}
}

func (s *server) do(method, path string, body any) (*httptest.ResponseRecorder, apiResponse) {
	s.t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(s.t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var resp apiResponse
	require.NoError(s.t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	return w, resp
}

// create posts body and returns the id of the new row.
func (s *server) create(path string, body any) uint {
	s.t.Helper()
	w, resp := s.do(http.MethodPost, path, body)
	require.Equal(s.t, http.StatusCreated, w.Code, w.Body.String())

	var out struct {
		ID uint `json:"id"`
	}
	require.NoError(s.t, json.Unmarshal(resp.Data, &out))
	require.NotZero(s.t, out.ID)
	return out.ID
}

func decodeData[T any](t *testing.T, resp apiResponse) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(resp.Data, &out))
	return out
}

func (s *server) flushAudit() {
	s.t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(s.t, s.emitter.Flush(ctx))
}
