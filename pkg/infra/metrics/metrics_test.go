package metrics_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/secmon-lab/depfix/pkg/domain/model"
	"github.com/secmon-lab/depfix/pkg/infra/metrics"
)

func TestObserve(t *testing.T) {
	m := metrics.New("http://localhost:9091")

	record := &model.RunRecord{
		Timestamp:      time.Unix(1700000000, 0),
		Autofix:        true,
		Classification: model.NotYetFixed.String(),
		ExitCode:       2,
		Outcome:        model.OutcomeFailure.String(),
	}
	m.Observe(record)
	m.Observe(record)

	gt.V(t, testutil.ToFloat64(m.RunsTotal.WithLabelValues("true", "not_yet_fixed", "failure"))).Equal(2.0)
	gt.V(t, testutil.ToFloat64(m.ScannerExit)).Equal(2.0)
	gt.V(t, testutil.ToFloat64(m.LastRunSeconds)).Equal(1700000000.0)
}

func TestPush(t *testing.T) {
	var (
		mutex sync.Mutex
		paths []string
		body  string
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		mutex.Lock()
		paths = append(paths, r.URL.Path)
		body = string(raw)
		mutex.Unlock()
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	ctx := context.Background()

	t.Run("push grouped by repository", func(t *testing.T) {
		m := metrics.New(server.URL)
		m.Observe(&model.RunRecord{
			Timestamp:      time.Now(),
			Repository:     "team/service",
			Classification: model.AlreadyFixedByUs.String(),
			Outcome:        model.OutcomeSuccess.String(),
		})
		gt.NoError(t, m.Push(ctx))

		mutex.Lock()
		defer mutex.Unlock()
		gt.A(t, paths).Length(1)
		gt.True(t, strings.HasPrefix(paths[0], "/metrics/job/depfix/repository"))
		gt.True(t, len(body) > 0)
	})

	t.Run("gateway error", func(t *testing.T) {
		failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer failing.Close()

		m := metrics.New(failing.URL)
		gt.Error(t, m.Push(ctx))
	})
}
