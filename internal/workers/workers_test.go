// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 AuraCrypt Authors

package workers

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/auracrypt/auracrypt/internal/backup"
	"github.com/auracrypt/auracrypt/internal/logger"
)

// mockWorker is a test implementation of the Worker interface
// that tracks how many times Run and Stop were called.
type mockWorker struct {
	runCount  int
	stopCount int
}

func (m *mockWorker) Run()  { m.runCount++ }
func (m *mockWorker) Stop() { m.stopCount++ }

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1 := &mockWorker{}
	w2 := &mockWorker{}
	w3 := &mockWorker{}

	ws := NewWorkers(w1, w2, w3)
	ws.Run()

	for i, w := range []*mockWorker{w1, w2, w3} {
		if w.runCount != 1 {
			t.Errorf("worker[%d]: expected runCount=1, got %d", i, w.runCount)
		}
	}
}

func TestWorkers_Stop_AllWorkersAreStopped(t *testing.T) {
	w1 := &mockWorker{}
	w2 := &mockWorker{}

	ws := NewWorkers(w1, w2)
	ws.Run()
	ws.Stop()

	for i, w := range []*mockWorker{w1, w2} {
		if w.stopCount != 1 {
			t.Errorf("worker[%d]: expected stopCount=1, got %d", i, w.stopCount)
		}
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := NewWorkers()

	// Should not panic on empty workers list
	ws.Run()
	ws.Stop()
}

func TestWorkers_Run_Order(t *testing.T) {
	order := []int{}

	newOrderWorker := func(id int) Worker {
		return &orderWorker{id: id, order: &order}
	}

	ws := NewWorkers(
		newOrderWorker(1),
		newOrderWorker(2),
		newOrderWorker(3),
	)
	ws.Run()

	expected := []int{1, 2, 3}
	for i, v := range expected {
		if order[i] != v {
			t.Errorf("expected order[%d]=%d, got %d", i, v, order[i])
		}
	}
}

// orderWorker is a helper that appends its ID to a shared slice on Run.
type orderWorker struct {
	id    int
	order *[]int
}

func (o *orderWorker) Run()  { *o.order = append(*o.order, o.id) }
func (o *orderWorker) Stop() {}

// countingCreator counts backup.Create calls.
type countingCreator struct {
	count atomic.Int32
	err   error
}

func (c *countingCreator) Create(backup.Type) (string, error) {
	c.count.Add(1)
	return "", c.err
}

func TestAutoBackupWorker_BacksUpOnTick(t *testing.T) {
	creator := &countingCreator{}
	w := NewAutoBackupWorker(creator, func() bool { return true }, 10*time.Millisecond, logger.Nop())

	w.Run()
	defer w.Stop()

	deadline := time.After(2 * time.Second)
	for creator.count.Load() == 0 {
		select {
		case <-deadline:
			t.Fatal("no backup created before deadline")
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func TestAutoBackupWorker_SkipsWhenVaultMissing(t *testing.T) {
	creator := &countingCreator{}
	w := NewAutoBackupWorker(creator, func() bool { return false }, 5*time.Millisecond, logger.Nop())

	w.Run()
	time.Sleep(50 * time.Millisecond)
	w.Stop()

	if got := creator.count.Load(); got != 0 {
		t.Errorf("expected no backups without a vault file, got %d", got)
	}
}

func TestAutoBackupWorker_StopIsIdempotent(t *testing.T) {
	creator := &countingCreator{err: errors.New("boom")}
	w := NewAutoBackupWorker(creator, func() bool { return true }, time.Hour, logger.Nop())

	w.Run()
	w.Stop()
	w.Stop()
}
