package account

// LoginInput for POST /login
type LoginInput struct {
	Body struct {
		Username string `json:"username" minLength:"1" required:"true" doc:"Sign-in identifier (the account email)" example:"ada@example.com"`
		Password string `json:"password" minLength:"1" required:"true" doc:"Account password" example:"hunter22"`
	}
}

// RegisterInput for POST /register
type RegisterInput struct {
	Body struct {
		Email    string `json:"email"    format:"email" required:"true" doc:"Contact email"    example:"ada@example.com"`
		Username string `json:"username" minLength:"1"  required:"true" doc:"Display username" example:"ada"`
		Password string `json:"password" minLength:"6"  required:"true" doc:"Account password" example:"hunter22"`
	}
}
