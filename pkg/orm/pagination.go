package orm

import "gorm.io/gorm"

// Pagination is the page metadata returned alongside every paginated list.
type Pagination struct {
	Page    int   `json:"page"`
	PerPage int   `json:"per_page"`
	Total   int64 `json:"total"`
	Pages   int   `json:"pages"`
	HasNext bool  `json:"has_next"`
	HasPrev bool  `json:"has_prev"`
}

// NewPagination computes page metadata for a total row count.
// page and perPage are clamped to sane minimums.
func NewPagination(page, perPage int, total int64) Pagination {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 1
	}

	pages := int((total + int64(perPage) - 1) / int64(perPage))

	return Pagination{
		Page:    page,
		PerPage: perPage,
		Total:   total,
		Pages:   pages,
		HasNext: page < pages,
		HasPrev: page > 1,
	}
}

// GetWithPagination counts the rows matched so far, then fetches one page
// into dest. The count runs on the chain before LIMIT/OFFSET are applied,
// so the metadata always reflects the full filtered set.
func (q *Query) GetWithPagination(dest interface{}, page, perPage int) (Pagination, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 1
	}

	// Fresh sessions so the COUNT does not leave its SELECT clause on the
	// chain the page query reuses.
	var total int64
	if err := q.db.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return Pagination{}, err
	}

	offset := (page - 1) * perPage
	if err := q.db.Session(&gorm.Session{}).Offset(offset).Limit(perPage).Find(dest).Error; err != nil {
		return Pagination{}, err
	}

	return NewPagination(page, perPage, total), nil
}
