package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"blog-service/app/domain"
	"blog-service/app/port"
	apperrors "blog-service/app/utils/errors"
	"blog-service/app/utils/validator"
)

// PostHandler handles blog content HTTP requests
type PostHandler struct {
	posts     port.PostUsecase
	validator *validator.Validator
	logger    *slog.Logger
}

// NewPostHandler creates a new post handler
func NewPostHandler(posts port.PostUsecase, logger *slog.Logger) *PostHandler {
	return &PostHandler{
		posts:     posts,
		validator: validator.New(),
		logger:    logger,
	}
}

// PublishRequest is the payload for publishing a post
type PublishRequest struct {
	Title   string `json:"title" validate:"required,post_title"`
	Content string `json:"content" validate:"required"`
}

// PostResponse is a single rendered post
type PostResponse struct {
	ID        string          `json:"id"`
	Title     string          `json:"title"`
	Content   string          `json:"content,omitempty"`
	Preview   string          `json:"preview,omitempty"`
	CreatedAt string          `json:"created_at"`
	Author    *AuthorResponse `json:"author,omitempty"`
}

// AuthorResponse is the embedded author of a post
type AuthorResponse struct {
	ID       string  `json:"id"`
	Username string  `json:"username"`
	FullName *string `json:"full_name,omitempty"`
}

// FrontPageResponse is the home page: featured post plus the regular grid
type FrontPageResponse struct {
	Featured *PostResponse  `json:"featured,omitempty"`
	Posts    []PostResponse `json:"posts"`
}

// AuthorPageResponse is an author's profile plus their published posts
type AuthorPageResponse struct {
	Profile ProfileResponse `json:"profile"`
	Posts   []PostResponse  `json:"posts"`
}

// ProfileResponse is a public profile
type ProfileResponse struct {
	ID        string  `json:"id"`
	Username  string  `json:"username"`
	FullName  *string `json:"full_name,omitempty"`
	AvatarURL *string `json:"avatar_url,omitempty"`
}

// FrontPage renders the home page post list
// @Summary Front page
// @Description Published posts newest first; the newest one is featured with a longer preview
// @Tags posts
// @Produce json
// @Success 200 {object} FrontPageResponse
// @Router /v1/posts [get]
func (h *PostHandler) FrontPage(c echo.Context) error {
	frontPage, err := h.posts.FrontPage(c.Request().Context())
	if err != nil {
		h.logger.Error("front page query failed", "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to load posts"})
	}

	resp := FrontPageResponse{Posts: make([]PostResponse, 0, len(frontPage.Posts))}
	if frontPage.Featured != nil {
		featured := postToResponse(frontPage.Featured, domain.FeaturedPreviewLength)
		resp.Featured = &featured
	}
	for _, post := range frontPage.Posts {
		resp.Posts = append(resp.Posts, postToResponse(post, domain.RegularPreviewLength))
	}

	return c.JSON(http.StatusOK, resp)
}

// Get renders a single post in full
// @Summary Get a post
// @Tags posts
// @Produce json
// @Param postId path string true "Post ID"
// @Success 200 {object} PostResponse
// @Failure 404 {object} ErrorResponse
// @Router /v1/posts/{postId} [get]
func (h *PostHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("postId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid post id"})
	}

	post, err := h.posts.Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrPostNotFound) {
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: "post not found", Code: string(apperrors.ErrCodePostNotFound)})
		}
		h.logger.Error("post query failed", "post_id", id, "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to load post"})
	}

	resp := postToResponse(post, 0)
	resp.Content = post.Content
	return c.JSON(http.StatusOK, resp)
}

// Publish stores a new post for the signed-in identity
// @Summary Publish a post
// @Tags posts
// @Accept json
// @Produce json
// @Param request body PublishRequest true "Post data"
// @Success 201 {object} PostResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /v1/posts [post]
func (h *PostHandler) Publish(c echo.Context) error {
	authorID, ok := c.Get("identity_id").(string)
	if !ok || authorID == "" {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
	}

	var req PublishRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if err := h.validator.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Code: string(apperrors.ErrCodeValidationFailed)})
	}

	post, err := h.posts.Publish(c.Request().Context(), authorID, req.Title, req.Content)
	if err != nil {
		h.logger.Error("publish failed", "author_id", authorID, "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to publish post"})
	}

	resp := postToResponse(post, 0)
	resp.Content = post.Content
	return c.JSON(http.StatusCreated, resp)
}

// AuthorPage renders an author's profile with their posts
// @Summary Author page
// @Tags posts
// @Produce json
// @Param username path string true "Author username"
// @Success 200 {object} AuthorPageResponse
// @Failure 404 {object} ErrorResponse
// @Router /v1/authors/{username} [get]
func (h *PostHandler) AuthorPage(c echo.Context) error {
	username := c.Param("username")

	page, err := h.posts.AuthorPage(c.Request().Context(), username)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: "author not found", Code: string(apperrors.ErrCodeProfileNotFound)})
		}
		h.logger.Error("author page query failed", "username", username, "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to load author page"})
	}

	resp := AuthorPageResponse{
		Profile: ProfileResponse{
			ID:        page.Profile.ID,
			Username:  page.Profile.Username,
			FullName:  page.Profile.FullName,
			AvatarURL: page.Profile.AvatarURL,
		},
		Posts: make([]PostResponse, 0, len(page.Posts)),
	}
	for _, post := range page.Posts {
		resp.Posts = append(resp.Posts, postToResponse(post, domain.RegularPreviewLength))
	}

	return c.JSON(http.StatusOK, resp)
}

// postToResponse renders a post; previewLen > 0 swaps content for a preview
func postToResponse(post *domain.Post, previewLen int) PostResponse {
	resp := PostResponse{
		ID:        post.ID.String(),
		Title:     post.Title,
		CreatedAt: post.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if previewLen > 0 {
		resp.Preview = post.Preview(previewLen)
	}
	if post.Author != nil {
		resp.Author = &AuthorResponse{
			ID:       post.Author.ID,
			Username: post.Author.Username,
			FullName: post.Author.FullName,
		}
	}
	return resp
}
