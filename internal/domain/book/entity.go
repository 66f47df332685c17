// internal/domain/book/entity.go
package book

// Book represents a book in the upstream catalog
type Book struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Author      string `json:"author"`
	Year        int    `json:"year"`
	IsPublished bool   `json:"is_published"`
	Description string `json:"description"`
	Synopsis    string `json:"synopsis"`
	ImageURL    string `json:"image_url"`
	Category    string `json:"category"`
}

// CreateBookRequest represents a book create request
type CreateBookRequest struct {
	Title       string `json:"title" binding:"required"`
	Author      string `json:"author" binding:"required"`
	Year        *int   `json:"year" binding:"required"`
	IsPublished bool   `json:"is_published"`
	Description string `json:"description"`
	Synopsis    string `json:"synopsis"`
	ImageURL    string `json:"image_url"`
	Category    string `json:"category"`
}
