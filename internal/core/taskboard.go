package core

import (
	"sort"

	"farmtwin/pkg/domain"
)

// TaskBoard keeps the duty list pushed to each worker. Labels are stored as
// given; category checks happen at the session boundary.
type TaskBoard struct {
	assigned map[Worker][]TaskLabel
}

// NewTaskBoard returns an empty board.
func NewTaskBoard() *TaskBoard {
	return &TaskBoard{assigned: make(map[Worker][]TaskLabel)}
}

// Assign replaces any previous duties of worker with tasks.
func (b *TaskBoard) Assign(worker Worker, tasks []TaskLabel) {
	b.assigned[worker] = append([]TaskLabel{}, tasks...)
}

// TasksFor returns the duties of worker, or the single default patrol when
// the worker has never been assigned.
func (b *TaskBoard) TasksFor(worker Worker) []TaskLabel {
	tasks, ok := b.assigned[worker]
	if !ok {
		return []TaskLabel{domain.DefaultTask}
	}
	return append([]TaskLabel{}, tasks...)
}

// Assignments returns every explicit assignment sorted by worker.
func (b *TaskBoard) Assignments() []TaskAssignment {
	out := make([]TaskAssignment, 0, len(b.assigned))
	for w, tasks := range b.assigned {
		out = append(out, TaskAssignment{Worker: w, Tasks: append([]TaskLabel{}, tasks...)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Worker < out[j].Worker })
	return out
}
