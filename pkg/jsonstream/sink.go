package jsonstream

import "io"

// ArrayWriter emits a JSON array element-by-element to an underlying writer,
// inserting commas between successive elements. The engine never buffers a
// whole array; callers own when to write the opening and closing brackets.
type ArrayWriter struct {
	w     io.Writer
	first bool
}

// NewArrayWriter wraps w. Callers write the opening '[' themselves before
// constructing it, and the closing ']' themselves after it's done.
func NewArrayWriter(w io.Writer) *ArrayWriter {
	return &ArrayWriter{w: w, first: true}
}

// WriteElement writes a leading comma when this isn't the first element,
// then calls encode to write the element itself.
func (a *ArrayWriter) WriteElement(encode func(io.Writer) error) error {
	if !a.first {
		if _, err := io.WriteString(a.w, ",\n"); err != nil {
			return err
		}
	}
	a.first = false
	return encode(a.w)
}

// Empty reports whether no element has been written yet.
func (a *ArrayWriter) Empty() bool { return a.first }
