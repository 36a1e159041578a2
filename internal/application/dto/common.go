package dto

// PageRequest paginates listings.
type PageRequest struct {
	Limit int `query:"limit" validate:"omitempty,min=1,max=100"`
	Page  int `query:"page" validate:"omitempty,min=1"`
}

// DefaultPage applies defaults when Limit/Page are zero.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = 20
	}
	if p.Page <= 0 {
		p.Page = 1
	}
}

// Offset converts page/limit into a row offset.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.Limit
}

// ErrorResponse is the HTTP error body.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
