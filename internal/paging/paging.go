package paging

// DefaultPageSize используется, если размер страницы не задан.
const DefaultPageSize = 50

// Page - одна страница результата чтения.
type Page[T any] struct {
	Items    []T  `json:"items"`
	Page     int  `json:"page"`      // с 1
	PageSize int  `json:"page_size"` // 0 - все строки одной страницей
	Total    int  `json:"total"`
	HasNext  bool `json:"has_next"`
	HasPrev  bool `json:"has_prev"`
}

// Pages возвращает число страниц; для пустого результата - 1.
func (p Page[T]) Pages() int {
	if p.PageSize <= 0 || p.Total == 0 {
		return 1
	}
	n := p.Total / p.PageSize
	if p.Total%p.PageSize != 0 {
		n++
	}
	return n
}

// Paginate вырезает страницу page из rows. Номер страницы меньше 1
// считается первой; pageSize < 0 - размер по умолчанию, 0 - без деления.
// Страница за концом результата пуста.
func Paginate[T any](rows []T, page, pageSize int) Page[T] {
	total := len(rows)

	if pageSize < 0 {
		pageSize = DefaultPageSize
	}
	if page <= 0 {
		page = 1
	}
	if pageSize == 0 {
		return Page[T]{Items: rows, Page: 1, Total: total}
	}

	// сравнение до умножения: (page-1)*pageSize может переполниться
	start := total
	if page-1 <= total/pageSize {
		start = min((page-1)*pageSize, total)
	}
	end := start + min(pageSize, total-start)

	return Page[T]{
		Items:    rows[start:end],
		Page:     page,
		PageSize: pageSize,
		Total:    total,
		HasNext:  end < total,
		HasPrev:  page > 1,
	}
}
