package domain

import (
	"fmt"
	"time"
)

// Worker is a field worker or contractor on the roster.
type Worker struct {
	ID             string
	FullName       string
	Role           string
	ActiveTasks    int
	Available      bool
	LastAssignedAt *time.Time
	CreatedAt      time.Time
}

// Selectable reports whether w may be picked for a new assignment. The
// server's Available flag is ignored: only an idle worker is selectable.
func (w Worker) Selectable() bool {
	return w.ActiveTasks == 0
}

// WorkerOption is one entry of a worker-selection control.
type WorkerOption struct {
	Worker   Worker
	Label    string
	Disabled bool
}

// WorkerOptions builds the selection list in roster order. Busy workers are
// listed but disabled. defaultID is the first selectable worker, or empty
// when all are busy.
func WorkerOptions(workers []Worker) (options []WorkerOption, defaultID string) {
	options = make([]WorkerOption, 0, len(workers))
	for _, w := range workers {
		label := fmt.Sprintf("%s (%d)", w.FullName, w.ActiveTasks)
		if !w.Selectable() {
			label += " - Busy"
		}
		options = append(options, WorkerOption{Worker: w, Label: label, Disabled: !w.Selectable()})
		if defaultID == "" && w.Selectable() {
			defaultID = w.ID
		}
	}
	return options, defaultID
}

// SelectWorker validates a selection against the roster.
func SelectWorker(workers []Worker, id string) (Worker, error) {
	if id == "" {
		return Worker{}, ErrNoWorkerSelected
	}
	for _, w := range workers {
		if w.ID != id {
			continue
		}
		if !w.Selectable() {
			return Worker{}, ErrWorkerBusy
		}
		return w, nil
	}
	return Worker{}, fmt.Errorf("worker %s: %w", id, ErrNotFound)
}
