package views

const (
	DefaultPage     = 0
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Page is a zero-based slice of a larger result set.
type Page[T any] struct {
	Content       []T  `json:"content"`
	Page          int  `json:"page"`
	Size          int  `json:"size"`
	TotalElements int  `json:"totalElements"`
	TotalPages    int  `json:"totalPages"`
	First         bool `json:"first"`
	Last          bool `json:"last"`
}

// Paginate cuts page number `page` of `size` elements out of all. A negative page
// falls back to DefaultPage and a size outside 1..MaxPageSize to DefaultPageSize.
// Pages past the end have empty content.
func Paginate[T any](all []T, page, size int) Page[T] {
	if page < 0 {
		page = DefaultPage
	}
	if size < 1 || size > MaxPageSize {
		size = DefaultPageSize
	}

	total := len(all)
	totalPages := (total + size - 1) / size

	start := total
	if page < totalPages {
		start = page * size
	}
	end := min(start+size, total)

	content := make([]T, end-start)
	copy(content, all[start:end])

	return Page[T]{
		Content:       content,
		Page:          page,
		Size:          size,
		TotalElements: total,
		TotalPages:    totalPages,
		First:         page == 0,
		Last:          page >= totalPages-1,
	}
}
