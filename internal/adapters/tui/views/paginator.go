package views

// Paginator tracks a cursor over a list shown a page at a time. With more
// than one column the list is laid out row-major, as in the project grid.
type Paginator struct {
	pageSize   int
	columns    int
	pageOffset int
	cursor     int
	totalItems int
}

// NewPaginator creates a single-column paginator with the given page size
func NewPaginator(pageSize int) *Paginator {
	if pageSize <= 0 {
		pageSize = 10
	}
	return &Paginator{
		pageSize: pageSize,
		columns:  1,
	}
}

// SetPageSize changes the number of items per page
func (p *Paginator) SetPageSize(n int) {
	p.pageSize = max(1, n)
	p.ensureCursorInPage()
}

// SetColumns sets the number of items per row
func (p *Paginator) SetColumns(n int) {
	p.columns = max(1, n)
}

// Columns returns the number of items per row
func (p *Paginator) Columns() int {
	return p.columns
}

// SetTotal sets the total number of items and pulls the cursor back in range
func (p *Paginator) SetTotal(total int) {
	p.totalItems = total
	if p.cursor >= total {
		p.cursor = max(0, total-1)
	}
	p.ensureCursorInPage()
}

// Total returns the number of items
func (p *Paginator) Total() int {
	return p.totalItems
}

// Cursor returns the current cursor position (absolute index)
func (p *Paginator) Cursor() int {
	return p.cursor
}

// SetCursor moves the cursor, clamped to the list
func (p *Paginator) SetCursor(pos int) {
	p.cursor = max(0, min(pos, p.totalItems-1))
	p.ensureCursorInPage()
}

// Move shifts the cursor by delta items. It reports whether the cursor moved.
func (p *Paginator) Move(delta int) bool {
	next := p.cursor + delta
	if next < 0 || next >= p.totalItems {
		return false
	}
	p.cursor = next
	p.ensureCursorInPage()
	return true
}

// CursorUp moves one row up
func (p *Paginator) CursorUp() bool {
	return p.Move(-p.columns)
}

// CursorDown moves one row down
func (p *Paginator) CursorDown() bool {
	return p.Move(p.columns)
}

// CursorLeft moves one item back within the row
func (p *Paginator) CursorLeft() bool {
	if p.cursor%p.columns == 0 {
		return false
	}
	return p.Move(-1)
}

// CursorRight moves one item forward within the row
func (p *Paginator) CursorRight() bool {
	if p.cursor%p.columns == p.columns-1 {
		return false
	}
	return p.Move(1)
}

// VisibleRange returns the start and end indices for the current page
func (p *Paginator) VisibleRange() (start, end int) {
	start = p.pageOffset
	end = min(p.pageOffset+p.pageSize, p.totalItems)
	return
}

// TotalPages returns the total number of pages
func (p *Paginator) TotalPages() int {
	if p.totalItems == 0 {
		return 1
	}
	return (p.totalItems + p.pageSize - 1) / p.pageSize
}

// CurrentPage returns the current page number (1-based)
func (p *Paginator) CurrentPage() int {
	return p.pageOffset/p.pageSize + 1
}

// Reset puts the cursor back on the first item
func (p *Paginator) Reset() {
	p.cursor = 0
	p.pageOffset = 0
}

func (p *Paginator) ensureCursorInPage() {
	if p.cursor < p.pageOffset || p.cursor >= p.pageOffset+p.pageSize {
		p.pageOffset = (p.cursor / p.pageSize) * p.pageSize
	}
}
