package cqrs

// GetUserQuery fetches a single user by ID.
type GetUserQuery struct {
	UserID int64
}

// ListUsersQuery fetches every user in the directory, ordered by ID.
type ListUsersQuery struct{}

// SearchUsersQuery fetches users whose name contains the given substring,
// anchored on neither side.
type SearchUsersQuery struct {
	Name string
}
