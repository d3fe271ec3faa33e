package form

import (
	"errors"
	"strings"
)

// SelectorPageSize is the fixed page length of every lookup dialog.
const SelectorPageSize = 5

var (
	// ErrNoPendingChoice is returned by Confirm when nothing is selected.
	ErrNoPendingChoice = errors.New("no row selected")
	// ErrParentNotSelected is returned when a dependent selector is
	// opened before its controlling field has a value.
	ErrParentNotSelected = errors.New("select the parent field first")
)

// Selector is a paginated, searchable single-select view over one
// catalog. Dependent selectors (system under service, application
// under system) additionally filter by a parent id and refuse to
// operate until that parent is chosen.
type Selector struct {
	rows      []CatalogRow
	dependent bool
	parentID  string

	searchText string
	page       int
	pending    CatalogRow
}

func NewSelector(rows []CatalogRow) *Selector {
	return &Selector{rows: rows, page: 1}
}

// NewDependentSelector builds a selector whose rows are constrained to
// one parent. An empty parentID puts the selector into the
// parent-missing state: no rows, no confirm.
func NewDependentSelector(rows []CatalogRow, parentID string) *Selector {
	return &Selector{rows: rows, dependent: true, parentID: parentID, page: 1}
}

// NeedsParent reports whether the selector is unusable until the
// controlling field is set.
func (s *Selector) NeedsParent() bool {
	return s.dependent && s.parentID == ""
}

// SetSearch replaces the search text and resets to the first page.
func (s *Selector) SetSearch(text string) {
	s.searchText = text
	s.page = 1
}

func (s *Selector) SearchText() string { return s.searchText }

func (s *Selector) filtered() []CatalogRow {
	if s.NeedsParent() {
		return nil
	}

	query := strings.ToLower(strings.TrimSpace(s.searchText))
	var out []CatalogRow
	for _, row := range s.rows {
		if s.dependent && row.parentKey() != s.parentID {
			continue
		}
		if query == "" {
			out = append(out, row)
			continue
		}
		for _, v := range row.SearchValues() {
			if strings.Contains(strings.ToLower(v), query) {
				out = append(out, row)
				break
			}
		}
	}
	return out
}

// TotalPages returns the page count of the current filtered view; an
// empty view still has one page.
func (s *Selector) TotalPages() int {
	n := len(s.filtered())
	if n == 0 {
		return 1
	}
	return (n + SelectorPageSize - 1) / SelectorPageSize
}

func (s *Selector) Page() int { return s.page }

// SetPage clamps to [1, TotalPages].
func (s *Selector) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	if max := s.TotalPages(); page > max {
		page = max
	}
	s.page = page
}

func (s *Selector) NextPage() { s.SetPage(s.page + 1) }
func (s *Selector) PrevPage() { s.SetPage(s.page - 1) }

// VisibleRows returns the current page of the filtered view.
func (s *Selector) VisibleRows() []CatalogRow {
	rows := s.filtered()
	start := (s.page - 1) * SelectorPageSize
	if start >= len(rows) {
		return nil
	}
	end := start + SelectorPageSize
	if end > len(rows) {
		end = len(rows)
	}
	return rows[start:end]
}

// Select marks the row with the given id as the pending choice,
// replacing any previous one. Ids outside the filtered view are
// ignored.
func (s *Selector) Select(id string) {
	for _, row := range s.filtered() {
		if row.RowID() == id {
			s.pending = row
			return
		}
	}
}

// Pending returns the currently marked row, or nil.
func (s *Selector) Pending() CatalogRow { return s.pending }

// Confirm hands the pending choice to the caller and resets the
// selector for its next opening.
func (s *Selector) Confirm() (CatalogRow, error) {
	if s.NeedsParent() {
		return nil, ErrParentNotSelected
	}
	if s.pending == nil {
		return nil, ErrNoPendingChoice
	}
	chosen := s.pending
	s.resetView()
	return chosen, nil
}

// Cancel discards the pending choice without notifying anyone.
func (s *Selector) Cancel() {
	s.resetView()
}

func (s *Selector) resetView() {
	s.pending = nil
	s.searchText = ""
	s.page = 1
}
