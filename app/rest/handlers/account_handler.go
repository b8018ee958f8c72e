package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"blog-service/app/domain"
	"blog-service/app/port"
	apperrors "blog-service/app/utils/errors"
	"blog-service/app/utils/validator"
)

// AccountHandler handles account lifecycle HTTP requests
type AccountHandler struct {
	accounts  port.AccountUsecase
	sessions  port.SessionPublisher
	validator *validator.Validator
	logger    *slog.Logger
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(accounts port.AccountUsecase, sessions port.SessionPublisher, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		accounts:  accounts,
		sessions:  sessions,
		validator: validator.New(),
		logger:    logger,
	}
}

// RegisterRequest is the payload for account registration
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Username string `json:"username" validate:"required"`
}

// LoginRequest is the payload for password login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// IdentityResponse is the success payload of register and login
type IdentityResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// SessionStateResponse reports the ambient session state
type SessionStateResponse struct {
	Ready    bool              `json:"ready"`
	SignedIn bool              `json:"signed_in"`
	Identity *IdentityResponse `json:"identity,omitempty"`
}

// ErrorResponse is the error payload of all handlers
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// Register handles account registration
// @Summary Register a new account
// @Description Create an identity plus its profile row; a failed profile insert rolls the session back
// @Tags account
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 201 {object} IdentityResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /v1/account/register [post]
func (h *AccountHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if err := h.validator.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Code: string(apperrors.ErrCodeValidationFailed)})
	}

	identity, err := h.accounts.Register(c.Request().Context(), req.Email, req.Password, req.Username)
	if err != nil {
		return h.accountError(c, err)
	}

	return c.JSON(http.StatusCreated, IdentityResponse{ID: identity.ID, Email: identity.Email})
}

// Login handles password login
// @Summary Log in
// @Description Authenticate an email/password pair and verify the account profile
// @Tags account
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} IdentityResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /v1/account/login [post]
func (h *AccountHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if err := h.validator.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Code: string(apperrors.ErrCodeValidationFailed)})
	}

	identity, err := h.accounts.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return h.accountError(c, err)
	}

	return c.JSON(http.StatusOK, IdentityResponse{ID: identity.ID, Email: identity.Email})
}

// SignOut tears down the ambient session
// @Summary Sign out
// @Tags account
// @Produce json
// @Success 204
// @Failure 500 {object} ErrorResponse
// @Router /v1/account/logout [post]
func (h *AccountHandler) SignOut(c echo.Context) error {
	if err := h.accounts.SignOut(c.Request().Context()); err != nil {
		return h.accountError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Session reports the ambient session state
// @Summary Current session state
// @Tags account
// @Produce json
// @Success 200 {object} SessionStateResponse
// @Router /v1/account/session [get]
func (h *AccountHandler) Session(c echo.Context) error {
	state := h.sessions.Current()

	resp := SessionStateResponse{
		Ready:    state.Ready,
		SignedIn: state.Identity != nil,
	}
	if state.Identity != nil {
		resp.Identity = &IdentityResponse{ID: state.Identity.ID, Email: state.Identity.Email}
	}

	return c.JSON(http.StatusOK, resp)
}

// accountError renders a typed account failure with its mapped status code
func (h *AccountHandler) accountError(c echo.Context, err error) error {
	var accountErr *domain.AccountError
	if errors.As(err, &accountErr) {
		appErr := apperrors.FromAccountError(accountErr)
		return c.JSON(apperrors.GetHTTPStatusCode(appErr), ErrorResponse{
			Error: accountErr.Message,
			Code:  string(accountErr.Kind),
		})
	}

	h.logger.Error("unclassified account failure", "error", err)
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}
