package link

// LinkProfile is the wire representation of a links profile.
//
// Avatar carries a time-limited signed download URL on reads (never the raw
// storage key), or null when the owner has no avatar.
type LinkProfile struct {
	OwnerID   string           `json:"ownerId,omitempty" doc:"Owning identity subject"      example:"u-7f3a"`
	ID        string           `json:"id,omitempty"      doc:"Public link identifier"       example:"9f1c2d"`
	FirstName string           `json:"firstName"         doc:"First name"                   example:"Ada"`
	LastName  string           `json:"lastName"          doc:"Last name"                    example:"Lovelace"`
	Email     string           `json:"email"             doc:"Contact email"                example:"ada@example.com"`
	Avatar    *string          `json:"avatar"            doc:"Signed avatar download URL, or null"`
	Links     []map[string]any `json:"links"             doc:"Ordered list of link entries"`
}
