package types

// Quote represents a collected quotation.
// Category is optional; nil round-trips as JSON null.
type Quote struct {
	QuoteID  int64   `json:"id"`
	Text     string  `json:"text"`
	Author   string  `json:"author"`
	Source   string  `json:"source"`
	Category *string `json:"category"`
}

// Validate checks that the quote carries text.
func (q *Quote) Validate() error {
	if q.Text == "" {
		return ErrInvalidText
	}
	return nil
}
