package routes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ReconfigureIO/converge/message"
	"github.com/ReconfigureIO/converge/plugin"
	"github.com/ReconfigureIO/converge/plugins/builtin"
	"github.com/ReconfigureIO/converge/queue"
	"github.com/ReconfigureIO/converge/task"
	"github.com/gin-gonic/gin"
	metrics "github.com/rcrowley/go-metrics"
)

func init() {
	// Switch to test mode so you don't get such noisy output
	gin.SetMode(gin.TestMode)
}

func setup(t *testing.T) *gin.Engine {
	store := queue.NewMemoryStore()
	actions := queue.NewRegistry()
	plugins := plugin.NewRegistry(nil)
	if err := builtin.Register(plugins); err != nil {
		t.Fatal(err)
	}

	r := gin.New()
	SetupRoutes(r, Deps{
		QueueRepo: store,
		Actions:   actions,
		Executor:  queue.NewScheduler(store, actions, 1, 0, metrics.NewRegistry()),
		Broker:    message.NewMemory(),
		Tracker:   task.NewTracker(task.NewMemoryRepo()),
		Plugins:   plugins,
	})
	return r
}

func TestRoutes(t *testing.T) {
	r := setup(t)

	for _, tc := range []struct {
		method, path, body string
		code               int
	}{
		{"GET", "/health", "", http.StatusOK},
		{"GET", "/api/queue", "", http.StatusOK},
		{"GET", "/api/queue/missing", "", http.StatusNotFound},
		{"POST", "/api/queue/missing/execute", "", http.StatusNotFound},
		{"DELETE", "/api/queue/missing", "", http.StatusNotFound},
		{"GET", "/api/tasks", "", http.StatusOK},
		{"GET", "/api/plugins", "", http.StatusOK},
		{"POST", "/api/newswire/fetch", "", http.StatusAccepted},
		{"POST", "/api/queue", `{"action_type":"nope","instance_type":"x","instance_id":"1"}`, http.StatusBadRequest},
	} {
		req := httptest.NewRequest(tc.method, tc.path, strings.NewReader(tc.body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != tc.code {
			t.Errorf("%s %s: expected %d, got %d %s", tc.method, tc.path, tc.code, w.Code, w.Body)
		}
	}
}

func TestCORS(t *testing.T) {
	r := setup(t)

	req := httptest.NewRequest("GET", "/api/plugins", nil)
	req.Header.Set("Origin", "https://newsroom.example.com")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Errorf("expected CORS headers, got %v", w.Header())
	}
}
