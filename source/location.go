package source

import "fmt"

// Location is a position inside a specific Buffer. Line and Column are
// 1-based; Index is the 0-based character offset. Locations are values and
// never change once produced; the buffer reference is shared, not copied.
type Location struct {
	Buffer *Buffer
	Line   int
	Column int
	Index  int
}

func (l Location) String() string {
	origin := "?"
	if l.Buffer != nil {
		origin = l.Buffer.Origin().String()
	}
	return fmt.Sprintf("%s:%d:%d", origin, l.Line, l.Column)
}
