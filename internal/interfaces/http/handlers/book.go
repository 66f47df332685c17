// internal/interfaces/http/handlers/book.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/cafe-gateway/internal/domain/book"
)

// BookHandler handles book catalog endpoints
type BookHandler struct {
	bookService *book.Service
}

// NewBookHandler creates a new book handler
func NewBookHandler(bookService *book.Service) *BookHandler {
	return &BookHandler{
		bookService: bookService,
	}
}

// GetBooks handles GET /books
func (h *BookHandler) GetBooks(c *gin.Context) {
	books, err := h.bookService.List(c.Request.Context())
	if err != nil {
		respondUpstreamError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Books retrieved successfully",
		"data":    books,
	})
}

// GetBook handles GET /books/:id
func (h *BookHandler) GetBook(c *gin.Context) {
	bookID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	b, err := h.bookService.Get(c.Request.Context(), bookID)
	if err != nil {
		respondUpstreamError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Book retrieved successfully",
		"data":    b,
	})
}

// CreateBook handles POST /books
func (h *BookHandler) CreateBook(c *gin.Context) {
	var req book.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   "Invalid input",
			"message": "Please check your input and try again",
			"details": err.Error(),
		})
		return
	}

	created, err := h.bookService.Create(c.Request.Context(), &req)
	if err != nil {
		respondUpstreamError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Book created successfully",
		"data":    created,
	})
}
