package account

// TokenBundle is the short-lived credential set returned after sign-in.
type TokenBundle struct {
	IDToken      string `json:"idToken"      doc:"Short-lived identity token"       example:"eyJhbGciOi..."`
	RefreshToken string `json:"refreshToken" doc:"Token used to obtain fresh credentials"`
	ExpiresIn    int64  `json:"expiresIn"    doc:"Seconds until idToken expiry"     example:"3600"`
}

// LoginOutput for POST /login
type LoginOutput struct {
	Body TokenBundle
}

// RegisterData is the register response payload: confirmation plus tokens.
type RegisterData struct {
	Message string `json:"message" doc:"Confirmation message"`
	TokenBundle
}

// RegisterOutput for POST /register
type RegisterOutput struct {
	Body RegisterData
}
