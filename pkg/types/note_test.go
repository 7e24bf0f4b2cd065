package types

import (
	"errors"
	"testing"
)

func TestStickyNoteValidate(t *testing.T) {
	tests := []struct {
		name    string
		note    StickyNote
		wantErr error
	}{
		{
			name:    "missing answer returns ErrInvalidText",
			note:    StickyNote{Color: ColorYellow},
			wantErr: ErrInvalidText,
		},
		{
			name:    "unknown color returns ErrInvalidColor",
			note:    StickyNote{Answer: "an answer", Color: "purple"},
			wantErr: ErrInvalidColor,
		},
		{
			name:    "empty color is valid, store applies the default",
			note:    StickyNote{Answer: "an answer"},
			wantErr: nil,
		},
		{
			name:    "recognized color is valid",
			note:    StickyNote{Answer: "an answer", Color: ColorGreen},
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.note.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}
