package service

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"servicedesk-backend/internal/auth"
	"servicedesk-backend/internal/database/models"
	apperrors "servicedesk-backend/internal/errors"
	"servicedesk-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"gorm.io/gorm"
)

// KBService handles business logic for knowledge-base articles.
// Content is authored as markdown; reads return sanitized HTML
// alongside the raw source.
type KBService struct {
	repo      repository.KBRepositoryInterface
	validator *validator.Validate
	markdown  goldmark.Markdown
	sanitizer *bluemonday.Policy
}

// NewKBService creates a new knowledge-base service
func NewKBService(repo repository.KBRepositoryInterface, validator *validator.Validate) *KBService {
	return &KBService{
		repo:      repo,
		validator: validator,
		markdown:  goldmark.New(goldmark.WithExtensions(extension.GFM)),
		sanitizer: bluemonday.UGCPolicy(),
	}
}

// CreateArticleRequest represents the request to create an article
type CreateArticleRequest struct {
	Title    string `json:"title" validate:"required,max=255"`
	Content  string `json:"content" validate:"required"`
	Category string `json:"category"`
}

// UpdateArticleRequest is a typed partial update for an article
type UpdateArticleRequest struct {
	Title    *string `json:"title,omitempty"`
	Content  *string `json:"content,omitempty"`
	Category *string `json:"category,omitempty"`
}

// ArticleResponse represents the response for article operations
type ArticleResponse struct {
	ID         uuid.UUID  `json:"id"`
	Title      string     `json:"title"`
	Content    string     `json:"content"`
	HTML       string     `json:"html"`
	Category   string     `json:"category"`
	AuthorID   *uuid.UUID `json:"author_id,omitempty"`
	AuthorName string     `json:"author_name,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// Create creates an article, stamping the caller as author when authenticated
func (s *KBService) Create(req *CreateArticleRequest, principal *auth.Principal) (*ArticleResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	article := &models.KBArticle{
		Title:    req.Title,
		Content:  req.Content,
		Category: req.Category,
	}
	if principal != nil {
		authorID := principal.UserID
		article.AuthorID = &authorID
	}

	if err := s.repo.Create(article); err != nil {
		return nil, fmt.Errorf("failed to create article: %w", err)
	}
	return s.toResponse(article)
}

// GetByID retrieves an article with its rendered HTML
func (s *KBService) GetByID(id uuid.UUID) (*ArticleResponse, error) {
	article, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrArticleNotFound
		}
		return nil, fmt.Errorf("failed to get article: %w", err)
	}
	return s.toResponse(article)
}

// Search retrieves articles whose title or content matches the query.
// An empty query returns everything.
func (s *KBService) Search(query string) ([]ArticleResponse, error) {
	articles, err := s.repo.Search(query)
	if err != nil {
		return nil, fmt.Errorf("failed to search articles: %w", err)
	}

	responses := make([]ArticleResponse, 0, len(articles))
	for i := range articles {
		resp, err := s.toResponse(&articles[i])
		if err != nil {
			return nil, err
		}
		responses = append(responses, *resp)
	}
	return responses, nil
}

// Update applies a partial update to an article
func (s *KBService) Update(id uuid.UUID, req *UpdateArticleRequest) (*ArticleResponse, error) {
	article, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrArticleNotFound
		}
		return nil, fmt.Errorf("failed to get article: %w", err)
	}

	if req.Title != nil {
		article.Title = *req.Title
	}
	if req.Content != nil {
		article.Content = *req.Content
	}
	if req.Category != nil {
		article.Category = *req.Category
	}

	if err := s.repo.Update(article); err != nil {
		return nil, fmt.Errorf("failed to update article: %w", err)
	}
	return s.toResponse(article)
}

// Delete removes an article
func (s *KBService) Delete(id uuid.UUID) error {
	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrArticleNotFound
		}
		return fmt.Errorf("failed to delete article: %w", err)
	}
	return nil
}

func (s *KBService) toResponse(article *models.KBArticle) (*ArticleResponse, error) {
	var buf bytes.Buffer
	if err := s.markdown.Convert([]byte(article.Content), &buf); err != nil {
		return nil, fmt.Errorf("failed to render article: %w", err)
	}

	resp := &ArticleResponse{
		ID:        article.ID,
		Title:     article.Title,
		Content:   article.Content,
		HTML:      s.sanitizer.Sanitize(buf.String()),
		Category:  article.Category,
		AuthorID:  article.AuthorID,
		CreatedAt: article.CreatedAt,
		UpdatedAt: article.UpdatedAt,
	}
	if article.Author != nil {
		resp.AuthorName = article.Author.DisplayName
	}
	return resp, nil
}
