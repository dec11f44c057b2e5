package asana

// Workspace is a top-level container for tasks and projects. The ID is
// assigned by the service and treated as opaque.
type Workspace struct {
	ID   string `json:"gid"`
	Name string `json:"name"`
}

// Project groups tasks within a single workspace.
type Project struct {
	ID   string `json:"gid"`
	Name string `json:"name"`

	// WorkspaceID is the owning workspace. Populated client-side;
	// the list endpoint is already scoped to one workspace.
	WorkspaceID string `json:"-"`
}

// User is a member of a workspace.
type User struct {
	ID   string `json:"gid"`
	Name string `json:"name"`
}

// Task is a single unit of work. Assignee is only populated when a
// listing was requested with assignee fields.
type Task struct {
	ID       string `json:"gid"`
	Name     string `json:"name"`
	Assignee *User  `json:"assignee,omitempty"`
}
