// Package edit applies byte-offset text edits to source buffers.
//
// Edits are expressed against the original buffer and applied in
// descending start-offset order, so offsets computed once stay valid
// while earlier regions are rewritten. Bytes outside the edited spans
// are preserved exactly.
package edit

import (
	"fmt"
	"sort"
)

// TextEdit replaces the byte range [Start, End) with NewText.
// An insertion has Start == End.
type TextEdit struct {
	Start   uint32
	End     uint32
	NewText []byte
}

// RangeError is returned when an edit's range is inverted or extends
// past the end of the buffer.
type RangeError struct {
	Edit   TextEdit
	Length int
}

// Error implements the error interface.
func (e *RangeError) Error() string {
	return fmt.Sprintf("edit range [%d, %d) invalid for buffer of %d bytes",
		e.Edit.Start, e.Edit.End, e.Length)
}

// OverlapError is returned when two edits in the same set overlap.
// This is always a defect in the caller's anchor resolution, never a
// user-triggered condition.
type OverlapError struct {
	A TextEdit
	B TextEdit
}

// Error implements the error interface.
func (e *OverlapError) Error() string {
	return fmt.Sprintf("overlapping edits: [%d, %d) and [%d, %d)",
		e.A.Start, e.A.End, e.B.Start, e.B.End)
}

// Apply rewrites source with the given edits and returns the new buffer.
// The input buffer is never modified. Applying an empty edit set returns
// a copy that is byte-identical to the input.
func Apply(source []byte, edits []TextEdit) ([]byte, error) {
	if err := Validate(source, edits); err != nil {
		return nil, err
	}

	result := make([]byte, len(source))
	copy(result, source)

	// Descending start order keeps the remaining offsets stable.
	ordered := make([]TextEdit, len(edits))
	copy(ordered, edits)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].Start > ordered[j].Start
	})

	for _, e := range ordered {
		tail := result[e.End:]
		spliced := make([]byte, 0, len(result)-int(e.End-e.Start)+len(e.NewText))
		spliced = append(spliced, result[:e.Start]...)
		spliced = append(spliced, e.NewText...)
		spliced = append(spliced, tail...)
		result = spliced
	}

	return result, nil
}

// Validate checks that every edit is within bounds and that no two
// edits overlap. Adjacent edits (one ending where the next starts) are
// legal.
func Validate(source []byte, edits []TextEdit) error {
	for _, e := range edits {
		if e.Start > e.End || int(e.End) > len(source) {
			return &RangeError{Edit: e, Length: len(source)}
		}
	}

	ordered := make([]TextEdit, len(edits))
	copy(ordered, edits)
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].Start == ordered[j].Start {
			return ordered[i].End < ordered[j].End
		}
		return ordered[i].Start < ordered[j].Start
	})

	for i := 1; i < len(ordered); i++ {
		prev, cur := ordered[i-1], ordered[i]
		if cur.Start < prev.End {
			return &OverlapError{A: prev, B: cur}
		}
		// Reaching here with equal starts means prev is an insertion
		// (sorted by End, a replacement would have tripped the check
		// above), and application order against cur is undefined.
		if cur.Start == prev.Start {
			return &OverlapError{A: prev, B: cur}
		}
	}

	return nil
}

// Insert returns an edit that inserts text at the given offset.
func Insert(offset uint32, text string) TextEdit {
	return TextEdit{Start: offset, End: offset, NewText: []byte(text)}
}

// Replace returns an edit that replaces the byte range [start, end).
func Replace(start, end uint32, text string) TextEdit {
	return TextEdit{Start: start, End: end, NewText: []byte(text)}
}
