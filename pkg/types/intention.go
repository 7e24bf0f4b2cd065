package types

// Intention represents a daily intention shown on the public site.
// Order is a dense-ish display ordering key: used purely for ascending sort,
// not guaranteed contiguous or unique.
type Intention struct {
	IntentionID int64  `json:"id"`
	Text        string `json:"text"`
	Active      bool   `json:"active"`
	Order       int    `json:"order"`
}

// Validate checks that the intention carries text.
func (it *Intention) Validate() error {
	if it.Text == "" {
		return ErrInvalidText
	}
	return nil
}
