package models

import (
	"errors"
	"testing"
	"time"
)

func TestQueueItemEligible(t *testing.T) {
	now := time.Date(2018, 10, 17, 9, 0, 0, 0, time.UTC)
	later := now.Add(time.Hour)

	cases := []struct {
		name     string
		item     QueueItem
		force    bool
		expected bool
	}{
		{"queued", QueueItem{Status: StatusQueued}, false, true},
		{"error stays eligible", QueueItem{Status: StatusError, TryCount: 1000}, false, true},
		{"scheduled in future", QueueItem{Status: StatusScheduled, ScheduledFor: later}, false, false},
		{"scheduled in future forced", QueueItem{Status: StatusScheduled, ScheduledFor: later}, true, true},
		{"scheduled due", QueueItem{Status: StatusScheduled, ScheduledFor: now}, false, true},
		{"failed", QueueItem{Status: StatusFailed}, false, false},
		{"failed forced", QueueItem{Status: StatusFailed}, true, true},
		{"completed", QueueItem{Status: StatusCompleted}, false, false},
		{"unknown status", QueueItem{Status: "BOGUS"}, true, false},
	}

	for _, c := range cases {
		if got := c.item.Eligible(now, c.force); got != c.expected {
			t.Errorf("%s: expected %t got %t", c.name, c.expected, got)
		}
	}
}

func TestQueueItemRecordAttempt(t *testing.T) {
	at := time.Now()
	item := NewQueueItem("content.index", "ContentItem", "42")

	item.RecordAttempt(at, errors.New("connection refused"), false)
	if item.Status != StatusError || item.TryCount != 1 {
		t.Fatalf("unexpected item after transient failure: %+v", item)
	}
	if item.ErrorMessage != "connection refused" {
		t.Errorf("expected error message to be recorded, got %q", item.ErrorMessage)
	}
	if item.LastTry == nil || !item.LastTry.Equal(at) {
		t.Errorf("expected last try %v, got %v", at, item.LastTry)
	}

	item.RecordAttempt(at, errors.New("missing url"), true)
	if item.Status != StatusFailed || item.TryCount != 2 {
		t.Fatalf("unexpected item after terminal failure: %+v", item)
	}

	item.RecordAttempt(at, nil, false)
	if item.Status != StatusCompleted || item.ErrorMessage != "" || item.TryCount != 3 {
		t.Fatalf("unexpected item after success: %+v", item)
	}
}

func TestQueueItemRequeue(t *testing.T) {
	now := time.Now()
	item := QueueItem{Status: StatusFailed, ScheduledFor: now.Add(-time.Hour)}
	item.Requeue(now)
	if item.Status != StatusQueued || !item.ScheduledFor.Equal(now) {
		t.Errorf("unexpected item after requeue: %+v", item)
	}
	if !item.Eligible(now, false) {
		t.Error("requeued item should be eligible")
	}
}

func TestPluginConfigurationValues(t *testing.T) {
	conf := PluginConfiguration{}
	values, err := conf.Values()
	if err != nil || len(values) != 0 {
		t.Fatalf("expected empty values, got %v %v", values, err)
	}

	err = conf.SetValues(map[string][]string{
		"url":       {"https://example.com/hook"},
		"recipient": {"desk@example.com", "night@example.com"},
	})
	if err != nil {
		t.Fatal(err)
	}
	values, err = conf.Values()
	if err != nil {
		t.Fatal(err)
	}
	if len(values["recipient"]) != 2 || values["url"][0] != "https://example.com/hook" {
		t.Errorf("unexpected values: %v", values)
	}

	if _, err := (PluginConfiguration{Properties: "{not json"}).Values(); err == nil {
		t.Error("expected an error decoding malformed properties")
	}
}

var _ QueueRepo = &MockQueueRepo{}
