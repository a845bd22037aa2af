package dto

type RegisterInput struct {
	Username string
	Password string
	Name     string
}

type LoginInput struct {
	Username string
	Password string
}

type AuthOutput struct {
	UserID string
	Name   string
	Token  string
}

type UserOutput struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
