package link

// AvatarUpload is an embedded avatar image submission.
type AvatarUpload struct {
	Content     string `json:"content"     required:"true" doc:"Base64-encoded image bytes"`
	ContentType string `json:"contentType" required:"true" doc:"MIME type, must be image/*" example:"image/png"`
	Filename    string `json:"filename"    required:"true" doc:"Original filename, extension is preserved" example:"me.png"`
}

// UpsertInput for POST /link. Absent fields default to their empty values;
// links are opaque to the server and stored in submission order.
type UpsertInput struct {
	Body struct {
		FirstName string           `json:"firstName,omitempty" doc:"First name"`
		LastName  string           `json:"lastName,omitempty"  doc:"Last name"`
		Email     string           `json:"email,omitempty"     doc:"Contact email"`
		Links     []map[string]any `json:"links,omitempty"     doc:"Ordered link entries"`
		Avatar    *AvatarUpload    `json:"avatar,omitempty"    doc:"Replacement avatar image"`
	}
}

// PublicGetInput for GET /link. The id is checked by hand so a missing value
// reports 400 rather than a schema violation.
type PublicGetInput struct {
	ID string `query:"id" doc:"Public link identifier" example:"9f1c2d"`
}

// PrivateGetInput for GET /privateLink (identity comes from the token).
type PrivateGetInput struct{}
