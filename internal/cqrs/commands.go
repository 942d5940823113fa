package cqrs

type CreateUserCommand struct {
	Name     string
	Email    string
	Password string
}

type UpdateUserCommand struct {
	UserID int64
	Name   string
	Email  string
}

type DeleteUserCommand struct {
	UserID int64
}

type LoginCommand struct {
	Email    string
	Password string
}
