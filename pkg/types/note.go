// StickyNote entity.
// Implements: prd003-content-entities R5 (sticky notes, weak reference);
//             docs/ARCHITECTURE § Main Interface.
package types

import "time"

// Sticky note colors.
const (
	ColorYellow = "yellow"
	ColorPink   = "pink"
	ColorBlue   = "blue"
	ColorGreen  = "green"
)

// validNoteColors is the set of recognized sticky note colors.
var validNoteColors = map[string]bool{
	ColorYellow: true,
	ColorPink:   true,
	ColorBlue:   true,
	ColorGreen:  true,
}

// Position is the free-form placement of a note on the board.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// StickyNote is a free-form text response, optionally linked to a
// contemplation. ContemplationID is a weak reference: it must point at an
// existing contemplation at write time, and is set to nil when that
// contemplation is deleted.
type StickyNote struct {
	NoteID          int64     `json:"id"`
	Question        string    `json:"question"`
	Answer          string    `json:"answer"`
	Author          string    `json:"author"`
	Color           string    `json:"color"`
	Position        Position  `json:"position"`
	Rotation        float64   `json:"rotation"`
	ContemplationID *int64    `json:"contemplationId"`
	CreatedAt       time.Time `json:"createdAt"`
}

// Validate checks the answer text and the color value. An empty color is
// allowed; the store applies the default on create.
func (n *StickyNote) Validate() error {
	if n.Answer == "" {
		return ErrInvalidText
	}
	if n.Color != "" && !validNoteColors[n.Color] {
		return ErrInvalidColor
	}
	return nil
}
