package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/sellora/todone/internal/todo/domain"
	"github.com/sellora/todone/internal/todo/service"
	"github.com/sellora/todone/pkg/httpx"
	"github.com/sellora/todone/pkg/slogx"
)

// DashboardHandler serves the task list page and its mutations. Every
// mutation ends in a redirect back to the dashboard so a refresh never
// resubmits.
type DashboardHandler struct {
	TaskService    *service.TaskService
	SessionService *service.SessionService
}

// HandleDashboard renders the task list, progress summary and any queued
// flash.
func (h *DashboardHandler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sess, _ := currentSession(ctx)

	page := dashboardPage{
		Username: sess.Username,
		Today:    time.Now(),
	}

	// The flash is drained only once the list is in hand; a failed load must
	// not consume it.
	list, err := h.TaskService.ListWithProgress(ctx, sess.UserID)
	if err != nil {
		slogx.FromContext(ctx).Error("task list failed", "error", err)
		page.Flash = &domain.Flash{
			Kind:    domain.FlashError,
			Message: "Error loading tasks: Database retrieval failed.",
		}
		render(w, r, http.StatusInternalServerError, "dashboard.html", page)
		return
	}
	page.List = list

	if f, ok, err := h.SessionService.PopFlash(ctx, sessionToken(r)); err != nil {
		slogx.FromContext(ctx).Error("flash drain failed", "error", err)
	} else if ok {
		page.Flash = &f
	}

	render(w, r, http.StatusOK, "dashboard.html", page)
}

// HandleCreate creates a task from the new_task / due_date form fields.
func (h *DashboardHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sess, _ := currentSession(ctx)

	if err := r.ParseForm(); err != nil {
		httpx.SeeOther(w, r, "/dashboard")
		return
	}

	due, err := parseDueDate(r.PostForm.Get("due_date"))
	if err != nil {
		h.finishMutation(w, r, err, "")
		return
	}

	_, err = h.TaskService.Create(ctx, sess.UserID, r.PostForm.Get("new_task"), due)
	h.finishMutation(w, r, err, "Task created successfully!")
}

// HandleEdit rewrites a task's name and due date from the task_id /
// task_name / due_date form fields.
func (h *DashboardHandler) HandleEdit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sess, _ := currentSession(ctx)

	if err := r.ParseForm(); err != nil {
		httpx.SeeOther(w, r, "/dashboard")
		return
	}

	taskID, _ := strconv.ParseInt(r.PostForm.Get("task_id"), 10, 64)
	due, err := parseDueDate(r.PostForm.Get("due_date"))
	if err != nil {
		h.finishMutation(w, r, err, "")
		return
	}

	err = h.TaskService.Edit(ctx, sess.UserID, taskID, r.PostForm.Get("task_name"), due)
	h.finishMutation(w, r, err, "Task edited successfully!")
}

// HandleDelete deletes the task named by delete_id. Ids that do not exist
// or belong to someone else still report success, so the endpoint cannot be
// used to probe other users' task ids.
func (h *DashboardHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sess, _ := currentSession(ctx)

	taskID, err := strconv.ParseInt(r.URL.Query().Get("delete_id"), 10, 64)
	if err != nil {
		httpx.SeeOther(w, r, "/dashboard")
		return
	}

	err = h.TaskService.Delete(ctx, sess.UserID, taskID)
	h.finishMutation(w, r, err, "Task deleted successfully!")
}

// HandleMark toggles the completion state of the task named by mark_id. A
// miss redirects with no flash at all.
func (h *DashboardHandler) HandleMark(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sess, _ := currentSession(ctx)

	taskID, err := strconv.ParseInt(r.URL.Query().Get("mark_id"), 10, 64)
	if err != nil {
		httpx.SeeOther(w, r, "/dashboard")
		return
	}

	completed, toggled, err := h.TaskService.ToggleStatus(ctx, sess.UserID, taskID)
	if err != nil {
		slogx.FromContext(ctx).Error("task mutation failed", "error", err)
		h.pushFlash(ctx, r, domain.Flash{Kind: domain.FlashError, Message: genericFailure})
		httpx.SeeOther(w, r, "/dashboard")
		return
	}
	if toggled {
		message := "Task marked as pending!"
		if completed {
			message = "Task marked as completed!"
		}
		h.pushFlash(ctx, r, domain.Flash{Kind: domain.FlashSuccess, Message: message})
	}
	httpx.SeeOther(w, r, "/dashboard")
}

// finishMutation maps the operation outcome to a flash and issues the PRG
// redirect shared by create, edit and delete.
func (h *DashboardHandler) finishMutation(w http.ResponseWriter, r *http.Request, err error, success string) {
	ctx := r.Context()

	switch {
	case err == nil:
		h.pushFlash(ctx, r, domain.Flash{Kind: domain.FlashSuccess, Message: success})
	default:
		var validationErr *service.ValidationError
		if errors.As(err, &validationErr) {
			h.pushFlash(ctx, r, domain.Flash{Kind: domain.FlashError, Message: validationErr.Reason})
		} else {
			slogx.FromContext(ctx).Error("task mutation failed", "error", err)
			h.pushFlash(ctx, r, domain.Flash{Kind: domain.FlashError, Message: genericFailure})
		}
	}
	httpx.SeeOther(w, r, "/dashboard")
}

func (h *DashboardHandler) pushFlash(ctx context.Context, r *http.Request, f domain.Flash) {
	if err := h.SessionService.PushFlash(ctx, sessionToken(r), f); err != nil {
		slogx.FromContext(ctx).Error("flash push failed", "error", err)
	}
}

// parseDueDate interprets the optional due_date form field. An empty value
// means no deadline; anything else must be a calendar date.
func parseDueDate(value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(domain.DueDateLayout, value)
	if err != nil {
		return nil, &service.ValidationError{Reason: "Invalid due date provided."}
	}
	return &t, nil
}
