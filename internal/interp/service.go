package interp

import (
	"context"

	"github.com/lightningnetwork/lnd/fn/v2"

	"github.com/asnlabs/asn/internal/asana"
)

// Service is the full collaborator contract the dispatcher executes
// commands against. It is implemented by asana.Client; tests supply
// fakes.
type Service interface {
	Directory

	// ListUsers returns the members of a workspace.
	ListUsers(
		ctx context.Context, workspaceID string,
	) ([]asana.User, error)

	// ListWorkspaceTasks lists tasks across a workspace. The service
	// requires an assignee filter for workspace-wide queries, so this
	// always lists the caller's own tasks.
	ListWorkspaceTasks(
		ctx context.Context, workspaceID string, showCompleted bool,
	) ([]asana.Task, error)

	// ListProjectTasks lists tasks in a project, optionally filtered
	// to a single assignee's user ID.
	ListProjectTasks(
		ctx context.Context, projectID string, showCompleted bool,
		assignee fn.Option[string],
	) ([]asana.Task, error)

	// CreateTask creates a task in a workspace. An absent assignee
	// assigns the task to the caller; dueOn is a YYYY-MM-DD date.
	CreateTask(
		ctx context.Context, workspaceID, name string,
		assignee fn.Option[string], dueOn fn.Option[string],
	) (asana.Task, error)

	// AttachProject adds an existing task to a project.
	AttachProject(ctx context.Context, taskID, projectID string) error

	// CompleteTask marks a task as completed.
	CompleteTask(ctx context.Context, taskID string) error

	// CommentTask posts a comment to a task's activity feed.
	CommentTask(ctx context.Context, taskID, text string) error

	// CurrentUserID returns the authenticated caller's user ID.
	CurrentUserID(ctx context.Context) (string, error)
}
