package handlers

import (
	"net/http"

	"servicedesk-backend/internal/auth"
	"servicedesk-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// KBHandler handles HTTP requests for knowledge-base articles
type KBHandler struct {
	kbService service.KBServiceInterface
}

// NewKBHandler creates a new knowledge-base handler
func NewKBHandler(kbService service.KBServiceInterface) *KBHandler {
	return &KBHandler{kbService: kbService}
}

// Create handles POST /kb
// @Summary Create an article
// @Description Create a knowledge-base article; content is markdown
// @Tags knowledge-base
// @Accept json
// @Produce json
// @Param article body service.CreateArticleRequest true "Article to create"
// @Success 201 {object} service.ArticleResponse "Article created"
// @Failure 400 {object} map[string]interface{} "Validation failed"
// @Security BearerAuth
// @Router /kb [post]
func (h *KBHandler) Create(c *gin.Context) {
	var req service.CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	article, err := h.kbService.Create(&req, auth.GetPrincipal(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, article)
}

// Search handles GET /kb
// @Summary Search articles
// @Description Search articles by title or content; an empty query returns everything
// @Tags knowledge-base
// @Produce json
// @Param q query string false "Search query"
// @Success 200 {array} service.ArticleResponse "Articles"
// @Router /kb [get]
func (h *KBHandler) Search(c *gin.Context) {
	articles, err := h.kbService.Search(c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, articles)
}

// GetByID handles GET /kb/:id
// @Summary Get an article
// @Description Get an article with its sanitized HTML rendering
// @Tags knowledge-base
// @Produce json
// @Param id path string true "Article ID"
// @Success 200 {object} service.ArticleResponse "Article"
// @Failure 404 {object} map[string]interface{} "Article not found"
// @Router /kb/{id} [get]
func (h *KBHandler) GetByID(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	article, err := h.kbService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, article)
}

// Update handles PATCH /kb/:id
// @Summary Update an article
// @Tags knowledge-base
// @Accept json
// @Produce json
// @Param id path string true "Article ID"
// @Param article body service.UpdateArticleRequest true "Fields to update"
// @Success 200 {object} service.ArticleResponse "Updated article"
// @Failure 404 {object} map[string]interface{} "Article not found"
// @Security BearerAuth
// @Router /kb/{id} [patch]
func (h *KBHandler) Update(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	article, err := h.kbService.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, article)
}

// Delete handles DELETE /kb/:id
// @Summary Delete an article
// @Tags knowledge-base
// @Produce json
// @Param id path string true "Article ID"
// @Success 204 "Article deleted"
// @Failure 404 {object} map[string]interface{} "Article not found"
// @Security BearerAuth
// @Router /kb/{id} [delete]
func (h *KBHandler) Delete(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.kbService.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
