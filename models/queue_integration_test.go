// +build integration

package models

import (
	"testing"
	"time"

	"github.com/jinzhu/gorm"
)

func TestQueueRepoEligible(t *testing.T) {
	RunTransaction(func(db *gorm.DB) {
		repo := QueueDataSource(db)
		now := time.Now()

		queued := NewQueueItem("content.index", "ContentItem", "1")
		errored := NewQueueItem("content.index", "ContentItem", "2")
		errored.Status = StatusError
		future := NewQueueItem("content.index", "ContentItem", "3")
		future.Status = StatusScheduled
		future.ScheduledFor = now.Add(time.Hour)
		failed := NewQueueItem("content.index", "ContentItem", "4")
		failed.Status = StatusFailed

		for _, item := range []*QueueItem{&queued, &errored, &future, &failed} {
			if err := repo.Push(item); err != nil {
				t.Fatal(err)
			}
		}

		items, err := repo.Eligible(now, 10)
		if err != nil {
			t.Fatal(err)
		}
		found := map[string]bool{}
		for _, item := range items {
			found[item.InstanceID] = true
		}
		if !found["1"] || !found["2"] {
			t.Errorf("expected queued and errored items to be eligible, got %v", found)
		}
		if found["3"] || found["4"] {
			t.Errorf("expected future and failed items to be skipped, got %v", found)
		}
	})
}

func TestQueueRepoClaimFinishAndDelete(t *testing.T) {
	RunTransaction(func(db *gorm.DB) {
		repo := QueueDataSource(db)
		now := time.Now()
		item := NewQueueItem("content.index", "ContentItem", "1")
		if err := repo.Push(&item); err != nil {
			t.Fatal(err)
		}
		if item.ID == "" {
			t.Fatal("expected an id to be generated")
		}

		claimed, err := repo.Claim(item.ID, now, false)
		if err != nil || claimed.Status != StatusRunning {
			t.Fatalf("expected a running item, got %+v %v", claimed, err)
		}
		if _, err := repo.Claim(item.ID, now, true); err != ErrNotClaimed {
			t.Errorf("expected a second claim to fail, got %v", err)
		}
		if _, err := repo.Requeue(item.ID, now); err != ErrNotClaimed {
			t.Errorf("expected a running item not to be requeued, got %v", err)
		}

		claimed.RecordAttempt(now, nil, false)
		if err := repo.Finish(&claimed); err != nil {
			t.Fatal(err)
		}
		if err := repo.Finish(&claimed); err != ErrNotClaimed {
			t.Errorf("expected finishing twice to fail, got %v", err)
		}
		stored, err := repo.ByID(item.ID)
		if err != nil {
			t.Fatal(err)
		}
		if stored.Status != StatusCompleted || stored.TryCount != 1 {
			t.Errorf("unexpected stored item: %+v", stored)
		}

		requeued, err := repo.Requeue(item.ID, now)
		if err != nil || requeued.Status != StatusQueued || requeued.TryCount != 1 {
			t.Errorf("unexpected requeued item: %+v %v", requeued, err)
		}

		if err := repo.Delete(item.ID); err != nil {
			t.Fatal(err)
		}
		if _, err := repo.ByID(item.ID); err != ErrNotFound {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
		if err := repo.Delete(item.ID); err != ErrNotFound {
			t.Errorf("expected ErrNotFound deleting twice, got %v", err)
		}
		if _, err := repo.Claim(item.ID, now, true); err != ErrNotFound {
			t.Errorf("expected ErrNotFound claiming a deleted item, got %v", err)
		}
	})
}

func TestQueueRepoClaimRespectsSchedule(t *testing.T) {
	RunTransaction(func(db *gorm.DB) {
		repo := QueueDataSource(db)
		now := time.Now()
		item := NewQueueItem("content.index", "ContentItem", "1")
		item.Status = StatusScheduled
		item.ScheduledFor = now.Add(time.Hour)
		if err := repo.Push(&item); err != nil {
			t.Fatal(err)
		}

		if _, err := repo.Claim(item.ID, now, false); err != ErrNotClaimed {
			t.Errorf("expected a future item not to be claimed, got %v", err)
		}
		if _, err := repo.Claim(item.ID, now.Add(2*time.Hour), false); err != nil {
			t.Errorf("expected a due item to be claimed, got %v", err)
		}
		n, err := repo.RequeueStale(now.Add(3 * time.Hour))
		if err != nil || n != 1 {
			t.Fatalf("expected one stale item, got %d %v", n, err)
		}
		stored, _ := repo.ByID(item.ID)
		if stored.Status != StatusError {
			t.Errorf("expected the stale item to be errored, got %+v", stored)
		}
	})
}

func TestNewswireRepoStoreSkipsSeen(t *testing.T) {
	RunTransaction(func(db *gorm.DB) {
		service := NewswireService{Name: "wire", DecoderKey: "rss", Active: true}
		if err := db.Create(&service).Error; err != nil {
			t.Fatal(err)
		}
		repo := NewswireDataSource(db)
		items := []NewswireItem{{ExternalID: "a", Title: "A"}, {ExternalID: "b", Title: "B"}}

		n, err := repo.Store(service, items)
		if err != nil || n != 2 {
			t.Fatalf("expected 2 stored, got %d %v", n, err)
		}
		n, err = repo.Store(service, items)
		if err != nil || n != 0 {
			t.Fatalf("expected 0 stored on refetch, got %d %v", n, err)
		}
	})
}
