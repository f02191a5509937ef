// Package envelope holds the uniform response wrapper every endpoint
// renders: {"status", "message"?, "data"?, "pagination"?}.
package envelope

type (
	Pagination struct {
		TotalRecords uint64 `json:"total_records"`
		TotalPages   uint64 `json:"total_pages"`
		CurrentPage  int    `json:"current_page"`
		Limit        int    `json:"limit"`
		HasNext      bool   `json:"has_next"`
		HasPrev      bool   `json:"has_prev"`
	}

	Envelope struct {
		Status     string      `json:"status"`
		Message    string      `json:"message,omitempty"`
		Data       any         `json:"data,omitempty"`
		Pagination *Pagination `json:"pagination,omitempty"`
	}
)

func Success(message string, data any) Envelope {
	return Envelope{Status: "success", Message: message, Data: data}
}

func SuccessPage(data any, p *Pagination) Envelope {
	return Envelope{Status: "success", Data: data, Pagination: p}
}

func Error(message string) Envelope {
	return Envelope{Status: "error", Message: message}
}

func NewPagination(total uint64, page, limit int) *Pagination {
	totalPages := (total + uint64(limit) - 1) / uint64(limit)

	return &Pagination{
		TotalRecords: total,
		TotalPages:   totalPages,
		CurrentPage:  page,
		Limit:        limit,
		HasNext:      uint64(page) < totalPages,
		HasPrev:      page > 1,
	}
}
