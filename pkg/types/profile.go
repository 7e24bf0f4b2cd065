package types

// SocialLinks holds the optional social handles on the profile.
type SocialLinks struct {
	GitHub   string `json:"github,omitempty"`
	Twitter  string `json:"twitter,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
}

// Profile is the site owner's singleton profile. At most one row exists;
// the read path creates DefaultProfile when the table is empty.
type Profile struct {
	ProfileID int64        `json:"id"`
	Name      string       `json:"name"`
	Title     string       `json:"title"`
	Bio       string       `json:"bio"`
	Avatar    *string      `json:"avatar"`
	Location  *string      `json:"location"`
	Email     *string      `json:"email"`
	Social    *SocialLinks `json:"social"` // nil when absent
}

// DefaultProfile returns the profile row created on first read of an empty
// store.
func DefaultProfile() *Profile {
	return &Profile{
		Name:  "Your Name",
		Title: "Your Title",
		Bio:   "Write a short bio.",
	}
}

// Validate checks that the profile carries a name.
func (p *Profile) Validate() error {
	if p.Name == "" {
		return ErrInvalidName
	}
	return nil
}
