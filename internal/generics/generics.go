package generics

import "strconv"

/*
Page represents a paginated result set with metadata.

Fields:
- Page: Current page number (1-indexed)
- Size: Number of records returned for the current page
- TotalPages: Total number of pages based on TotalResults and Size
- TotalResults: Total number of records found in the database
- Content: Slice containing the actual data records for the current page
*/
type Page[T any] struct {
	Page         int `json:"page"`
	Size         int `json:"size"`
	TotalPages   int `json:"totalPages"`
	TotalResults int `json:"totalResults"`
	Content      []T `json:"content"`
}

// BuildPage slices an already-loaded result set into a page. Page numbers
// start at 1; a size of 0 means everything on a single page.
func BuildPage[T any](content []T, page, size int) Page[T] {
	total := len(content)

	if size <= 0 {
		return Page[T]{
			Page:         1,
			Size:         total,
			TotalPages:   1,
			TotalResults: total,
			Content:      content,
		}
	}

	if page <= 0 {
		page = 1
	}

	totalPages := (total + size - 1) / size
	start := (page - 1) * size
	if start > total {
		start = total
	}
	end := start + size
	if end > total {
		end = total
	}

	return Page[T]{
		Page:         page,
		Size:         end - start,
		TotalPages:   totalPages,
		TotalResults: total,
		Content:      content[start:end],
	}
}

func StringToInt(s string) int {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return i
}
