package auth

type LoginInput struct {
	Email    string
	Password string
}

type LoginOutput struct {
	Token string
	User  UserOutput
}

type UserOutput struct {
	ID    string
	Email string
	Role  string
}
