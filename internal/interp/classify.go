package interp

import "strings"

// Kind identifies what a classified invocation does.
type Kind int

const (
	// KindQuery lists the tasks in a workspace or project.
	KindQuery Kind = iota

	// KindCreateTask creates a task from a scope and a free-text
	// title.
	KindCreateTask

	// KindFinishTask marks an existing task as completed.
	KindFinishTask

	// KindListWorkspaces prints the caller's workspaces.
	KindListWorkspaces

	// KindCommentTask posts a comment on an existing task.
	KindCommentTask
)

// Command is a classified invocation. Only the fields relevant to the
// Kind are populated; extraction of the assignee mention and due-date
// phrase happens later, in the create path, because listing
// invocations take their sole token verbatim as the scope.
type Command struct {
	Kind Kind

	// Tokens is the full argument stream for query and create
	// commands: the scope token followed by any title words.
	Tokens []string

	// TaskID targets finish and comment commands.
	TaskID string

	// Text is the comment body.
	Text string
}

// Options carries the listing flags through classification and
// dispatch. It replaces mutable process-wide state so the same
// invocation always classifies the same way.
type Options struct {
	// ShowCompleted includes completed tasks in listings.
	ShowCompleted bool

	// ShowMine filters project listings to the caller's tasks.
	// Workspace-level listings are always the caller's tasks; the
	// service cannot list a workspace without an assignee filter.
	ShowMine bool
}

// Classify turns the flag-stripped argument stream into a Command.
// Rules are checked in priority order and the first hit wins:
//
//  1. no tokens                          -> usage error
//  2. "finish" + a numeric id, exactly   -> finish
//  3. "workspaces" first                 -> list workspaces
//  4. "comment" + numeric id + text      -> comment
//  5. a single token                     -> query, token is the scope
//  6. anything else                      -> create, first token is the
//     scope and the rest feed extraction
//
// The keyword checks are case-insensitive. A "finish" or "comment"
// token that is not followed by the expected shape falls through to
// the scope rules, so a workspace that happens to be named "finish"
// stays reachable.
func Classify(tokens []string) (Command, error) {
	if len(tokens) == 0 {
		return Command{}, &UsageError{Msg: "nothing to do here"}
	}

	head := strings.ToLower(tokens[0])

	if head == "finish" && len(tokens) == 2 && isDigits(tokens[1]) {
		return Command{Kind: KindFinishTask, TaskID: tokens[1]}, nil
	}

	if head == "workspaces" {
		return Command{Kind: KindListWorkspaces}, nil
	}

	if head == "comment" && len(tokens) >= 3 && isDigits(tokens[1]) {
		return Command{
			Kind:   KindCommentTask,
			TaskID: tokens[1],
			Text:   strings.Join(tokens[2:], " "),
		}, nil
	}

	if len(tokens) == 1 {
		return Command{Kind: KindQuery, Tokens: tokens}, nil
	}

	return Command{Kind: KindCreateTask, Tokens: tokens}, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
