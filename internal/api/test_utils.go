package api

import (
	"bytes"
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/forkcast/backend/internal/catalog"
	"github.com/forkcast/backend/internal/middleware"
	"github.com/forkcast/backend/internal/model"
	"github.com/forkcast/backend/internal/notify"
	"github.com/forkcast/backend/internal/service"
	"github.com/forkcast/backend/internal/store"
	"github.com/forkcast/backend/internal/types"
)

const testJWTSecret = "test-secret"

type testEnv struct {
	router *gin.Engine
	db     *gorm.DB
	kv     *store.MemoryKV
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.RecipeDoc{}))

	kv := store.NewMemoryKV()
	logger := zap.NewNop()
	cat := catalog.NewGormCatalog(db)
	library := service.NewLibraryService(kv)
	usage := service.NewUsageService(kv, logger)

	router := SetupRouter(Deps{
		Catalog:   cat,
		Prefs:     service.NewPrefsService(kv),
		Library:   library,
		Usage:     usage,
		Search:    service.NewSearchService(cat, library, usage, logger, time.Second, time.Millisecond),
		Recommend: service.NewRecommendService(cat, kv, logger, rand.New(rand.NewSource(1))),
		Scheduler: notify.NewScheduler(logger, nil),
		Validator: middleware.NewJWTValidator(testJWTSecret),
		Logger:    logger,
	})
	return &testEnv{router: router, db: db, kv: kv}
}

func (e *testEnv) seedRecipe(t *testing.T, doc model.RecipeDoc) {
	t.Helper()
	require.NoError(t, e.db.Create(&doc).Error)
}

func (e *testEnv) token(t *testing.T, userID string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, types.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	signed, err := token.SignedString([]byte(testJWTSecret))
	require.NoError(t, err)
	return signed
}

func (e *testEnv) do(t *testing.T, userID, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		req = httptest.NewRequest(method, path, bytes.NewReader(raw))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if userID != "" {
		req.Header.Set("Authorization", "Bearer "+e.token(t, userID))
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}
