package link

// UpsertOutput for POST /link. Status is 201 on first creation, 200 on update.
type UpsertOutput struct {
	Status int
	Body   LinkProfile
}

// PublicGetOutput for GET /link
type PublicGetOutput struct {
	Body LinkProfile
}

// PrivateGetOutput for GET /privateLink
type PrivateGetOutput struct {
	Body LinkProfile
}
