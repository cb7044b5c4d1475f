// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 AuraCrypt Authors

package workers

import (
	"sync"
	"time"

	"github.com/auracrypt/auracrypt/internal/backup"
	"github.com/auracrypt/auracrypt/internal/logger"
)

// backupCreator is the slice of backup.Manager the worker needs.
type backupCreator interface {
	Create(t backup.Type) (string, error)
}

// AutoBackupWorker periodically copies the encrypted vault file into
// the backup directory. It works on the ciphertext, so it runs whether
// or not a session is unlocked; ticks with no vault file are skipped.
type AutoBackupWorker struct {
	backups  backupCreator
	exists   func() bool
	interval time.Duration
	log      *logger.Logger

	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
}

// NewAutoBackupWorker constructs a worker backing up every interval.
// exists reports whether a vault file is present.
func NewAutoBackupWorker(backups backupCreator, exists func() bool, interval time.Duration, log *logger.Logger) *AutoBackupWorker {
	return &AutoBackupWorker{
		backups:  backups,
		exists:   exists,
		interval: interval,
		log:      log,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Run starts the backup loop in its own goroutine and returns.
func (w *AutoBackupWorker) Run() {
	go w.loop()
}

// Stop ends the backup loop and waits for it to finish.
func (w *AutoBackupWorker) Stop() {
	w.stopOnce.Do(func() {
		close(w.stop)
	})
	<-w.done
}

func (w *AutoBackupWorker) loop() {
	defer close(w.done)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.log.Info().Dur("interval", w.interval).Msg("auto-backup worker started")
	for {
		select {
		case <-w.stop:
			w.log.Info().Msg("auto-backup worker stopped")
			return
		case <-ticker.C:
			w.tick()
		}
	}
}

func (w *AutoBackupWorker) tick() {
	if !w.exists() {
		return
	}
	if _, err := w.backups.Create(backup.TypeAuto); err != nil {
		w.log.Error().Err(err).Msg("auto backup failed")
	}
}
