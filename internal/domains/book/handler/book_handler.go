package handler

import (
	"github.com/gin-gonic/gin"

	"library-catalog/internal/domains/book/service"
	"library-catalog/internal/shared/response"
	"library-catalog/internal/shared/utils"
)

type BookHandler struct {
	service service.ServiceInterface
}

func NewBookHandler(svc service.ServiceInterface) *BookHandler {
	return &BookHandler{
		service: svc,
	}
}

func (h *BookHandler) RegisterRoutes(catalog *gin.RouterGroup) {
	catalog.GET("/books", h.List)
	catalog.GET("/book/:id", h.Detail)
}

// GET /catalog/books
func (h *BookHandler) List(c *gin.Context) {
	out, err := h.service.List(c.Request.Context())
	response.Render(c, out, err)
}

// GET /catalog/book/:id
func (h *BookHandler) Detail(c *gin.Context) {
	out, err := h.service.Detail(c.Request.Context(), utils.ParseStringToUUID(c.Param("id")))
	response.Render(c, out, err)
}
