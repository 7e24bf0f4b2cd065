// Contemplation entity.
// Implements: prd003-content-entities R4 (Contemplation, answer attachment).
package types

// Contemplation is an admin-authored reflection prompt. Sticky notes answer
// it through a weak back-reference: deleting the contemplation unlinks the
// answers but never deletes them.
type Contemplation struct {
	ContemplationID int64  `json:"id"`
	Question        string `json:"question"`
	Active          bool   `json:"active"`
	Featured        bool   `json:"featured"`
	Order           int    `json:"order"`

	// Answers holds the attached sticky notes on read paths: the five most
	// recent on list reads, all of them on a single-item fetch. Never
	// consulted on write paths.
	Answers []StickyNote `json:"answers"`
}

// Validate checks that the contemplation carries a question.
func (c *Contemplation) Validate() error {
	if c.Question == "" {
		return ErrInvalidQuestion
	}
	return nil
}
