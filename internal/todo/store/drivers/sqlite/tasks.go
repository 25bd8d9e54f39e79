package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/sellora/todone/internal/todo/domain"
)

type tasksRepo struct {
	db dbtx
}

func (r *tasksRepo) CreateTask(ctx context.Context, t domain.Task) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO tasks (user_id, task_name, status, due_date) VALUES (?, ?, ?, ?)`,
		t.OwnerID, t.Name, boolToStatus(t.Done), fmtDate(t.DueDate),
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *tasksRepo) GetTask(ctx context.Context, ownerID, taskID int64) (domain.Task, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, task_name, status, due_date FROM tasks WHERE id = ? AND user_id = ?`,
		taskID, ownerID,
	)
	return scanTask(row)
}

// SetTaskDone is owner-scoped: a non-existent or foreign id matches zero rows
// and the affected count is deliberately not inspected.
func (r *tasksRepo) SetTaskDone(ctx context.Context, ownerID, taskID int64, done bool) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE tasks SET status = ? WHERE id = ? AND user_id = ?`,
		boolToStatus(done), taskID, ownerID,
	)
	return err
}

func (r *tasksRepo) UpdateTask(ctx context.Context, ownerID, taskID int64, name string, due *time.Time) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE tasks SET task_name = ?, due_date = ? WHERE id = ? AND user_id = ?`,
		name, fmtDate(due), taskID, ownerID,
	)
	return err
}

func (r *tasksRepo) DeleteTask(ctx context.Context, ownerID, taskID int64) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM tasks WHERE id = ? AND user_id = ?`,
		taskID, ownerID,
	)
	return err
}

func (r *tasksRepo) ListTasksByOwner(ctx context.Context, ownerID int64) ([]domain.Task, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, task_name, status, due_date
		   FROM tasks
		  WHERE user_id = ?
		  ORDER BY status ASC, id DESC`,
		ownerID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := []domain.Task{}
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func scanTask(row rowScanner) (domain.Task, error) {
	var (
		t      domain.Task
		status int
		due    sql.NullString
	)
	if err := row.Scan(&t.ID, &t.OwnerID, &t.Name, &status, &due); err != nil {
		return domain.Task{}, mapNotFound(err)
	}
	t.Done = status != 0

	d, err := parseDate(due)
	if err != nil {
		return domain.Task{}, err
	}
	t.DueDate = d
	return t, nil
}

func boolToStatus(done bool) int {
	if done {
		return 1
	}
	return 0
}
