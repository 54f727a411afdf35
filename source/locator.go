package source

import "sort"

// Locator resolves byte offsets into a source buffer to line/column
// positions. It is built once per buffer and lazily indexes line starts on
// first use, grounded on the same Span/Location shape used across the
// retrieved reference packages (Pos/End pairs resolved on demand rather
// than carried on every node).
type Locator struct {
	input      string
	lineStarts []int // byte offset of the start of each line; lineStarts[0] == 0
	built      bool
}

// NewLocator creates a Locator over input. Line-start indexing is deferred
// until the first call to Range or Position.
func NewLocator(input string) *Locator {
	return &Locator{input: input}
}

func (l *Locator) ensureBuilt() {
	if l.built {
		return
	}
	l.lineStarts = []int{0}
	for i := 0; i < len(l.input); i++ {
		switch l.input[i] {
		case '\n':
			l.lineStarts = append(l.lineStarts, i+1)
		case '\r':
			// \r\n counts as a single terminator; bare \r also terminates.
			if i+1 < len(l.input) && l.input[i+1] == '\n' {
				continue
			}
			l.lineStarts = append(l.lineStarts, i+1)
		case 0xE2: // UTF-8 lead byte for U+2028/U+2029 (3-byte sequence E2 80 A8/A9)
			if i+2 < len(l.input) && l.input[i+1] == 0x80 && (l.input[i+2] == 0xA8 || l.input[i+2] == 0xA9) {
				l.lineStarts = append(l.lineStarts, i+3)
			}
		}
	}
	l.built = true
}

// Position resolves a single byte offset to a (line, column) pair. Column
// counts UTF-8 bytes from the start of the line, per the core Locator
// contract (§4.1): it is not a rune count.
func (l *Locator) Position(offset int) Position {
	l.ensureBuilt()
	line := sort.Search(len(l.lineStarts), func(i int) bool {
		return l.lineStarts[i] > offset
	}) - 1
	if line < 0 {
		line = 0
	}
	return Position{Line: line, Column: offset - l.lineStarts[line]}
}

// Range resolves a byte Range to its begin/end Positions.
func (l *Locator) Range(r Range) Span {
	return Span{Begin: l.Position(r.Begin), End: l.Position(r.End)}
}

// LineRange returns the byte range [begin, end) of the given 0-based line,
// end being the offset of the line's terminator (or end of input for the
// last line). Used by document.Document to convert UTF-16 columns.
func (l *Locator) LineRange(line int) Range {
	l.ensureBuilt()
	if line < 0 || line >= len(l.lineStarts) {
		return Range{Begin: len(l.input), End: len(l.input)}
	}
	begin := l.lineStarts[line]
	end := len(l.input)
	if line+1 < len(l.lineStarts) {
		end = l.lineStarts[line+1]
		// Trim the terminator bytes themselves from the line's content range.
		for end > begin && (l.input[end-1] == '\n' || l.input[end-1] == '\r') {
			end--
		}
	}
	return Range{Begin: begin, End: end}
}

// LineCount returns the number of lines in the buffer.
func (l *Locator) LineCount() int {
	l.ensureBuilt()
	return len(l.lineStarts)
}
