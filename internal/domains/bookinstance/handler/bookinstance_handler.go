package handler

import (
	"github.com/gin-gonic/gin"

	"library-catalog/internal/domains/bookinstance/service"
	"library-catalog/internal/shared/form"
	"library-catalog/internal/shared/response"
	"library-catalog/internal/shared/utils"
)

// DeleteFormField carries the copy id in the delete confirmation form.
const DeleteFormField = "bookinstanceid"

type BookInstanceHandler struct {
	service service.ServiceInterface
}

func NewBookInstanceHandler(svc service.ServiceInterface) *BookInstanceHandler {
	return &BookInstanceHandler{
		service: svc,
	}
}

// RegisterRoutes mounts the copy pages on the catalog group.
func (h *BookInstanceHandler) RegisterRoutes(catalog *gin.RouterGroup) {
	catalog.GET("/bookinstances", h.List)

	// Static segments are registered before the :id routes.
	catalog.GET("/bookinstance/create", h.CreateForm)
	catalog.POST("/bookinstance/create", h.Create)

	catalog.GET("/bookinstance/:id", h.Detail)
	catalog.GET("/bookinstance/:id/update", h.UpdateForm)
	catalog.POST("/bookinstance/:id/update", h.Update)
	catalog.GET("/bookinstance/:id/delete", h.DeleteConfirm)
	catalog.POST("/bookinstance/:id/delete", h.Delete)
}

// GET /catalog/bookinstances
func (h *BookInstanceHandler) List(c *gin.Context) {
	out, err := h.service.List(c.Request.Context())
	response.Render(c, out, err)
}

// GET /catalog/bookinstance/:id
func (h *BookInstanceHandler) Detail(c *gin.Context) {
	out, err := h.service.Detail(c.Request.Context(), utils.ParseStringToUUID(c.Param("id")))
	response.Render(c, out, err)
}

// GET /catalog/bookinstance/create
func (h *BookInstanceHandler) CreateForm(c *gin.Context) {
	out, err := h.service.ShowCreateForm(c.Request.Context())
	response.Render(c, out, err)
}

// POST /catalog/bookinstance/create
func (h *BookInstanceHandler) Create(c *gin.Context) {
	input, err := postedInput(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	out, err := h.service.Create(c.Request.Context(), input)
	response.Render(c, out, err)
}

// GET /catalog/bookinstance/:id/update
func (h *BookInstanceHandler) UpdateForm(c *gin.Context) {
	out, err := h.service.ShowUpdateForm(c.Request.Context(), utils.ParseStringToUUID(c.Param("id")))
	response.Render(c, out, err)
}

// POST /catalog/bookinstance/:id/update
func (h *BookInstanceHandler) Update(c *gin.Context) {
	input, err := postedInput(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	out, err := h.service.Update(c.Request.Context(), utils.ParseStringToUUID(c.Param("id")), input)
	response.Render(c, out, err)
}

// GET /catalog/bookinstance/:id/delete
func (h *BookInstanceHandler) DeleteConfirm(c *gin.Context) {
	out, err := h.service.ShowDeleteConfirm(c.Request.Context(), utils.ParseStringToUUID(c.Param("id")))
	response.Render(c, out, err)
}

// POST /catalog/bookinstance/:id/delete
func (h *BookInstanceHandler) Delete(c *gin.Context) {
	id := utils.FirstNonEmpty(c.PostForm(DeleteFormField), c.Param("id"))

	out, err := h.service.Delete(c.Request.Context(), utils.ParseStringToUUID(id))
	response.Render(c, out, err)
}

func postedInput(c *gin.Context) (map[string]string, error) {
	if err := c.Request.ParseForm(); err != nil {
		return nil, err
	}
	return form.InputFrom(c.Request.PostForm), nil
}
