package domain

import "fmt"

// Cursor points into a most-recent-first history. The zero value is Latest,
// meaning the newest entry is displayed. AtOffset(n) means the entry n+1
// steps older than the newest is displayed.
type Cursor struct {
	offset int
	past   bool
}

// Latest returns the cursor that tracks the newest history entry.
func Latest() Cursor {
	return Cursor{}
}

// AtOffset returns a cursor n steps back from Latest. Negative values yield Latest.
func AtOffset(n int) Cursor {
	if n < 0 {
		return Latest()
	}
	return Cursor{offset: n, past: true}
}

// IsLatest reports whether the cursor tracks the newest entry.
func (c Cursor) IsLatest() bool {
	return !c.past
}

// Offset returns the offset and whether the cursor is AtOffset.
func (c Cursor) Offset() (int, bool) {
	return c.offset, c.past
}

// Index returns the history index the cursor displays.
func (c Cursor) Index() int {
	if !c.past {
		return 0
	}
	return c.offset + 1
}

// Older returns the cursor one step toward older entries.
func (c Cursor) Older() Cursor {
	if !c.past {
		return AtOffset(0)
	}
	return AtOffset(c.offset + 1)
}

// Newer returns the cursor one step toward newer entries.
func (c Cursor) Newer() Cursor {
	if !c.past || c.offset == 0 {
		return Latest()
	}
	return AtOffset(c.offset - 1)
}

// String implements fmt.Stringer.
func (c Cursor) String() string {
	if !c.past {
		return "latest"
	}
	return fmt.Sprintf("offset(%d)", c.offset)
}
