package config

import (
	"context"
	"time"

	metrics "github.com/rcrowley/go-metrics"
	log "github.com/sirupsen/logrus"
)

// LogMetrics writes a snapshot of every metric in r to the log every
// interval until ctx is done.
func LogMetrics(ctx context.Context, r metrics.Registry, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			logSnapshot(r)
		}
	}
}

func logSnapshot(r metrics.Registry) {
	r.Each(func(name string, i interface{}) {
		fields := log.Fields{"metric": name}
		switch m := i.(type) {
		case metrics.Counter:
			fields["count"] = m.Count()
		case metrics.Gauge:
			fields["value"] = m.Value()
		case metrics.Histogram:
			h := m.Snapshot()
			fields["count"] = h.Count()
			fields["mean"] = time.Duration(int64(h.Mean()))
			fields["p95"] = time.Duration(int64(h.Percentile(0.95)))
			fields["max"] = time.Duration(h.Max())
		case metrics.Timer:
			t := m.Snapshot()
			fields["count"] = t.Count()
			fields["mean"] = time.Duration(t.Mean())
			fields["p95"] = time.Duration(t.Percentile(0.95))
			fields["max"] = time.Duration(t.Max())
		default:
			return
		}
		log.WithFields(fields).Info("metrics")
	})
}
