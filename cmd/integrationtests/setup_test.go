package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"match-night/internal/events"
	"match-night/internal/ledger"
	"match-night/internal/matching"
	model "match-night/internal/models"
	"match-night/internal/repository"
	"match-night/internal/server"
	"match-night/internal/session"
	"match-night/internal/snapshot"

	"github.com/gin-gonic/gin"
)

const (
	testMinIncrement = 100
	testEndowment    = 10000
	testLikeCap      = 5
	testScoreFloor   = 20
	testTopN         = 3
)

// SetupTestRouter initializes the router with an in-memory repository for
// integration testing. The returned repo allows direct seeding.
func SetupTestRouter() (*gin.Engine, *repository.MemoryRepo) {
	gin.SetMode(gin.TestMode)
	repo := repository.NewMemoryRepo()
	publisher := events.NewLogPublisher()

	ledgerSvc := ledger.NewService(repo, publisher, testMinIncrement)
	sessionSvc := session.NewService(repo, testEndowment, testLikeCap)
	pipeline := matching.NewPipeline(repo, publisher, testTopN, testScoreFloor, matching.PolicyLive)
	materializer := snapshot.NewMaterializer(repo, publisher, 24*time.Hour)

	router := server.SetupRouter(ledgerSvc, sessionSvc, pipeline, materializer)
	return router, repo
}

// SetupTestRouterWithItems initializes the router and seeds the repo with items.
func SetupTestRouterWithItems(items ...model.Item) (*gin.Engine, *repository.MemoryRepo) {
	router, repo := SetupTestRouter()
	for _, item := range items {
		repo.CreateItem(item)
	}
	return router, repo
}

// ExecuteRequest executes an HTTP request and returns the response recorder.
func ExecuteRequest(t *testing.T, router *gin.Engine, method, url string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// ExecuteRequestAndParse executes an HTTP request on the given router and parses the response
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	case string:
		reqBody = []byte(v)
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		err := json.Unmarshal(w.Body.Bytes(), &resp)
		if err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}

	return resp, w
}

// data unwraps the success envelope's data object.
func data(t *testing.T, resp map[string]any) map[string]any {
	t.Helper()
	d, ok := resp["data"].(map[string]any)
	if !ok {
		t.Fatalf("response has no data object: %v", resp)
	}
	return d
}
