package skyline

// ColumnGenerator hands out columns of an endless skyline one at a
// time, in a somewhat sane fashion that doesn't involve pre-computing
// a huge sequence. We only have one question;
// - what's the next column?
// There is always an answer, the stream never ends & never fails.
type ColumnGenerator interface {
	// Next returns the next column, left to right.
	Next() Column
}
