package interp

import (
	"context"
	"fmt"
	"strings"

	"github.com/lightningnetwork/lnd/fn/v2"

	"github.com/asnlabs/asn/internal/asana"
)

// Scope is a resolved command target: a workspace and, when the scope
// argument carried a "/", a project within it.
type Scope struct {
	Workspace asana.Workspace
	Project   fn.Option[asana.Project]
}

// Directory is the slice of the service contract that name resolution
// needs.
type Directory interface {
	ListWorkspaces(ctx context.Context) ([]asana.Workspace, error)
	ListProjects(
		ctx context.Context, workspaceID string,
	) ([]asana.Project, error)
}

// ResolveScope resolves a scope argument of the form "workspace" or
// "workspace/project". Both parts match case-insensitively on
// substring, first hit wins, in the order the service returned the
// candidates. A miss on either part is a NotFoundError naming the part
// that failed.
func ResolveScope(
	ctx context.Context, dir Directory, scope string,
) (Scope, error) {

	wsName, projName, hasProject := strings.Cut(scope, "/")

	workspaces, err := dir.ListWorkspaces(ctx)
	if err != nil {
		return Scope{}, fmt.Errorf("list workspaces: %w", err)
	}

	ws, ok := matchWorkspace(workspaces, wsName)
	if !ok {
		return Scope{}, &NotFoundError{Kind: "workspace", Name: wsName}
	}

	resolved := Scope{
		Workspace: ws,
		Project:   fn.None[asana.Project](),
	}
	if !hasProject {
		return resolved, nil
	}

	projects, err := dir.ListProjects(ctx, ws.ID)
	if err != nil {
		return Scope{}, fmt.Errorf("list projects: %w", err)
	}

	for _, proj := range projects {
		if nameMatches(proj.Name, projName) {
			resolved.Project = fn.Some(proj)
			return resolved, nil
		}
	}

	return Scope{}, &NotFoundError{Kind: "project", Name: projName}
}

func matchWorkspace(
	workspaces []asana.Workspace, name string,
) (asana.Workspace, bool) {

	for _, ws := range workspaces {
		if nameMatches(ws.Name, name) {
			return ws, true
		}
	}
	return asana.Workspace{}, false
}

// nameMatches reports whether a user-typed query selects the given
// entity name: case-insensitive substring containment.
func nameMatches(name, query string) bool {
	return strings.Contains(
		strings.ToLower(name), strings.ToLower(query),
	)
}
