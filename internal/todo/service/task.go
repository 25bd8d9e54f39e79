package service

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"github.com/sellora/todone/internal/todo/domain"
	"github.com/sellora/todone/internal/todo/store"
)

// TaskService is the owner-scoped CRUD surface over tasks. Every operation
// takes the resolved owner id; rows belonging to anyone else are invisible.
type TaskService struct {
	Store store.Store
}

// Create trims and persists a new pending task. The due date is optional.
func (s *TaskService) Create(ctx context.Context, ownerID int64, name string, due *time.Time) (int64, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, &ValidationError{Reason: "Task name cannot be empty."}
	}

	id, err := s.Store.Tasks().CreateTask(ctx, domain.Task{
		OwnerID: ownerID,
		Name:    name,
		DueDate: due,
	})
	if err != nil {
		return 0, storageErr("create task", err)
	}
	return id, nil
}

// Delete removes the task if it belongs to ownerID. A non-existent or
// foreign id is a silent no-op so callers cannot confirm another user's
// task ids.
func (s *TaskService) Delete(ctx context.Context, ownerID, taskID int64) error {
	if err := s.Store.Tasks().DeleteTask(ctx, ownerID, taskID); err != nil {
		return storageErr("delete task", err)
	}
	return nil
}

// ToggleStatus flips pending<->completed for the (id, owner) pair inside one
// transaction. toggled is false when no matching row exists; that is not an
// error. completed reports the resulting state.
func (s *TaskService) ToggleStatus(ctx context.Context, ownerID, taskID int64) (completed, toggled bool, err error) {
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		task, err := tx.Tasks().GetTask(ctx, ownerID, taskID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return nil // silent no-op on mismatch
			}
			return err
		}

		completed = !task.Done
		toggled = true
		return tx.Tasks().SetTaskDone(ctx, ownerID, taskID, completed)
	})
	if err != nil {
		return false, false, storageErr("toggle task", err)
	}
	return completed, toggled, nil
}

// Edit rewrites name and due date for the (id, owner) pair. Validation
// mirrors Create; a non-matching id is a silent no-op.
func (s *TaskService) Edit(ctx context.Context, ownerID, taskID int64, name string, due *time.Time) error {
	name = strings.TrimSpace(name)
	if taskID <= 0 || name == "" {
		return &ValidationError{Reason: "Invalid task data provided for editing."}
	}

	if err := s.Store.Tasks().UpdateTask(ctx, ownerID, taskID, name, due); err != nil {
		return storageErr("edit task", err)
	}
	return nil
}

// ListWithProgress returns the owner's tasks (pending first, newest first
// within each group) plus the completion summary.
func (s *TaskService) ListWithProgress(ctx context.Context, ownerID int64) (domain.TaskList, error) {
	tasks, err := s.Store.Tasks().ListTasksByOwner(ctx, ownerID)
	if err != nil {
		return domain.TaskList{}, storageErr("list tasks", err)
	}

	list := domain.TaskList{Tasks: tasks, Total: len(tasks)}
	for _, t := range tasks {
		if t.Done {
			list.Completed++
		}
	}
	if list.Total > 0 {
		list.Percent = int(math.Round(float64(list.Completed) / float64(list.Total) * 100))
	}
	return list, nil
}
