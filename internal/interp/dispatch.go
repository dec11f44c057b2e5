package interp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/lightningnetwork/lnd/fn/v2"

	"github.com/asnlabs/asn/internal/asana"
)

// Dispatcher executes classified commands against the service and
// writes human-readable output. One dispatcher serves one process
// invocation; it holds no state across Run calls.
type Dispatcher struct {
	// Service performs the remote operations.
	Service Service

	// Out receives command output. Errors go to the caller, not here.
	Out io.Writer

	// Log receives debug traces of interpretation decisions. Nil
	// falls back to slog.Default.
	Log *slog.Logger

	// Now anchors relative date phrases. Nil means time.Now.
	Now func() time.Time

	// DefaultScope, when non-empty, is used as the scope for query
	// and create commands whose own scope token does not resolve to a
	// workspace. Callers source it from ASANA_WORKSPACE_PROJECT.
	DefaultScope string
}

// Run executes a single classified command. Any error is terminal for
// the invocation; no operation is retried.
func (d *Dispatcher) Run(
	ctx context.Context, cmd Command, opts Options,
) error {

	switch cmd.Kind {
	case KindFinishTask:
		return d.runFinish(ctx, cmd.TaskID)
	case KindListWorkspaces:
		return d.runListWorkspaces(ctx)
	case KindCommentTask:
		return d.runComment(ctx, cmd.TaskID, cmd.Text)
	case KindQuery:
		return d.runQuery(ctx, cmd.Tokens[0], opts)
	case KindCreateTask:
		return d.runCreate(ctx, cmd.Tokens)
	default:
		return fmt.Errorf("unknown command kind %d", cmd.Kind)
	}
}

func (d *Dispatcher) runFinish(ctx context.Context, taskID string) error {
	if err := d.Service.CompleteTask(ctx, taskID); err != nil {
		return fmt.Errorf("complete task %s: %w", taskID, err)
	}

	fmt.Fprintf(d.Out, "Task completed! %s\n", taskID)
	return nil
}

func (d *Dispatcher) runListWorkspaces(ctx context.Context) error {
	workspaces, err := d.Service.ListWorkspaces(ctx)
	if err != nil {
		return fmt.Errorf("list workspaces: %w", err)
	}

	for _, ws := range workspaces {
		fmt.Fprintln(d.Out, ws.Name)
	}
	return nil
}

func (d *Dispatcher) runComment(
	ctx context.Context, taskID, text string,
) error {

	if err := d.Service.CommentTask(ctx, taskID, text); err != nil {
		return fmt.Errorf("comment on task %s: %w", taskID, err)
	}

	fmt.Fprintf(d.Out, "Comment added to %s.\n", taskID)
	return nil
}

func (d *Dispatcher) runQuery(
	ctx context.Context, scope string, opts Options,
) error {

	resolved, _, err := d.resolveWithDefault(ctx, scope)
	if err != nil {
		return err
	}

	var tasks []asana.Task
	if proj, ok := maybeProject(resolved); ok {
		assignee := fn.None[string]()
		if opts.ShowMine {
			uid, err := d.Service.CurrentUserID(ctx)
			if err != nil {
				return fmt.Errorf("resolve current user: %w", err)
			}
			assignee = fn.Some(uid)
		}

		tasks, err = d.Service.ListProjectTasks(
			ctx, proj.ID, opts.ShowCompleted, assignee,
		)
	} else {
		tasks, err = d.Service.ListWorkspaceTasks(
			ctx, resolved.Workspace.ID, opts.ShowCompleted,
		)
	}
	if err != nil {
		return fmt.Errorf("list tasks: %w", err)
	}

	for _, task := range tasks {
		fmt.Fprintf(d.Out, "%s — %s\n", task.ID, task.Name)
	}
	return nil
}

func (d *Dispatcher) runCreate(
	ctx context.Context, tokens []string,
) error {

	assignee, tokens := ExtractAssignee(tokens)
	due, tokens := ExtractDueDate(tokens, d.now())

	if len(tokens) == 0 {
		return &UsageError{Msg: "no workspace given"}
	}

	scope := tokens[0]
	title := tokens[1:]

	d.logger().DebugContext(ctx, "interpreted create",
		"scope", scope,
		"assignee", assignee.UnwrapOr(""),
		"due", due.UnwrapOr(""),
	)

	resolved, usedDefault, err := d.resolveWithDefault(ctx, scope)
	if err != nil {
		return err
	}
	if usedDefault {
		// The typed scope token was title text after all.
		title = tokens
	}

	assigneeID := fn.None[string]()
	if name, ok := maybeName(assignee); ok {
		user, err := d.resolveUser(ctx, resolved.Workspace.ID, name)
		if err != nil {
			return err
		}
		assigneeID = fn.Some(user.ID)
	}

	task, err := d.Service.CreateTask(
		ctx, resolved.Workspace.ID, strings.Join(title, " "),
		assigneeID, due,
	)
	if err != nil {
		return fmt.Errorf("create task: %w", err)
	}

	proj, hasProject := maybeProject(resolved)
	if hasProject {
		err := d.Service.AttachProject(ctx, task.ID, proj.ID)
		if err != nil {
			// The task exists at this point but stays unattached.
			return fmt.Errorf("add task %s to project %s: %w",
				task.ID, proj.ID, err)
		}

		fmt.Fprintf(d.Out, "Task created in %s/%s!\n",
			resolved.Workspace.Name, proj.Name)
		return nil
	}

	fmt.Fprintf(d.Out, "Task created in %s!\n", resolved.Workspace.Name)
	return nil
}

// resolveWithDefault resolves the typed scope, falling back to the
// configured default scope when the typed workspace does not exist.
// The returned bool reports whether the fallback was taken.
func (d *Dispatcher) resolveWithDefault(
	ctx context.Context, scope string,
) (Scope, bool, error) {

	resolved, err := ResolveScope(ctx, d.Service, scope)
	if err == nil || d.DefaultScope == "" {
		return resolved, false, err
	}

	var notFound *NotFoundError
	if !errors.As(err, &notFound) || notFound.Kind != "workspace" {
		return Scope{}, false, err
	}

	d.logger().DebugContext(ctx, "falling back to default scope",
		"typed", scope, "default", d.DefaultScope)

	resolved, err = ResolveScope(ctx, d.Service, d.DefaultScope)
	return resolved, err == nil, err
}

func (d *Dispatcher) resolveUser(
	ctx context.Context, workspaceID, name string,
) (asana.User, error) {

	users, err := d.Service.ListUsers(ctx, workspaceID)
	if err != nil {
		return asana.User{}, fmt.Errorf("list users: %w", err)
	}

	for _, user := range users {
		if nameMatches(user.Name, name) {
			return user, nil
		}
	}

	return asana.User{}, &NotFoundError{Kind: "assignee", Name: name}
}

func (d *Dispatcher) now() time.Time {
	if d.Now != nil {
		return d.Now()
	}
	return time.Now()
}

func (d *Dispatcher) logger() *slog.Logger {
	if d.Log != nil {
		return d.Log
	}
	return slog.Default()
}

func maybeProject(s Scope) (asana.Project, bool) {
	proj := s.Project.UnwrapOr(asana.Project{})
	return proj, s.Project.IsSome()
}

func maybeName(o fn.Option[string]) (string, bool) {
	return o.UnwrapOr(""), o.IsSome()
}
