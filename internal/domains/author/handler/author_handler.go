package handler

import (
	"github.com/gin-gonic/gin"

	"library-catalog/internal/domains/author/service"
	"library-catalog/internal/shared/form"
	"library-catalog/internal/shared/response"
	"library-catalog/internal/shared/utils"
)

// DeleteFormField carries the author id in the delete confirmation form.
const DeleteFormField = "authorid"

type AuthorHandler struct {
	service service.ServiceInterface
}

func NewAuthorHandler(svc service.ServiceInterface) *AuthorHandler {
	return &AuthorHandler{
		service: svc,
	}
}

func (h *AuthorHandler) RegisterRoutes(catalog *gin.RouterGroup) {
	catalog.GET("/authors", h.List)

	catalog.GET("/author/create", h.CreateForm)
	catalog.POST("/author/create", h.Create)

	catalog.GET("/author/:id", h.Detail)
	catalog.GET("/author/:id/update", h.UpdateForm)
	catalog.POST("/author/:id/update", h.Update)
	catalog.GET("/author/:id/delete", h.DeleteConfirm)
	catalog.POST("/author/:id/delete", h.Delete)
}

// ════════════════════════════════════════════════════════════════
// READ
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) List(c *gin.Context) {
	out, err := h.service.List(c.Request.Context())
	response.Render(c, out, err)
}

func (h *AuthorHandler) Detail(c *gin.Context) {
	out, err := h.service.Detail(c.Request.Context(), utils.ParseStringToUUID(c.Param("id")))
	response.Render(c, out, err)
}

// ════════════════════════════════════════════════════════════════
// CREATE / UPDATE
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) CreateForm(c *gin.Context) {
	out, err := h.service.ShowCreateForm(c.Request.Context())
	response.Render(c, out, err)
}

func (h *AuthorHandler) Create(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		_ = c.Error(err)
		return
	}

	out, err := h.service.Create(c.Request.Context(), form.InputFrom(c.Request.PostForm))
	response.Render(c, out, err)
}

func (h *AuthorHandler) UpdateForm(c *gin.Context) {
	out, err := h.service.ShowUpdateForm(c.Request.Context(), utils.ParseStringToUUID(c.Param("id")))
	response.Render(c, out, err)
}

func (h *AuthorHandler) Update(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		_ = c.Error(err)
		return
	}

	id := utils.ParseStringToUUID(c.Param("id"))
	out, err := h.service.Update(c.Request.Context(), id, form.InputFrom(c.Request.PostForm))
	response.Render(c, out, err)
}

// ════════════════════════════════════════════════════════════════
// DELETE
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) DeleteConfirm(c *gin.Context) {
	out, err := h.service.ShowDeleteConfirm(c.Request.Context(), utils.ParseStringToUUID(c.Param("id")))
	response.Render(c, out, err)
}

func (h *AuthorHandler) Delete(c *gin.Context) {
	id := utils.FirstNonEmpty(c.PostForm(DeleteFormField), c.Param("id"))

	out, err := h.service.Delete(c.Request.Context(), utils.ParseStringToUUID(id))
	response.Render(c, out, err)
}
