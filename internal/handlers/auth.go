package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"RECIPEBOOK_BACK-END/internal/dto"
	"RECIPEBOOK_BACK-END/internal/logger"
	"RECIPEBOOK_BACK-END/internal/middleware"
	"RECIPEBOOK_BACK-END/internal/models"
	"RECIPEBOOK_BACK-END/internal/store"
	"RECIPEBOOK_BACK-END/internal/utils"
)

// UserStore persists user documents.
type UserStore interface {
	Create(ctx context.Context, user models.User) error
	FindByUsername(ctx context.Context, username string) ([]models.User, error)
}

// PasswordHasher hashes and verifies login secrets.
type PasswordHasher interface {
	Hash(secret string) (string, error)
	Verify(hash, secret string) bool
	VerifyDummy(secret string) bool
}

// AuthHandler handles user registration and login
type AuthHandler struct {
	users  UserStore
	hasher PasswordHasher
	newID  func() string
}

// NewAuthHandler creates a new AuthHandler instance
func NewAuthHandler(users UserStore, hasher PasswordHasher) *AuthHandler {
	return &AuthHandler{
		users:  users,
		hasher: hasher,
		newID:  uuid.NewString,
	}
}

// Register handles user registration
// @Summary Register a new user
// @Description Create a user account; the login secret is stored as a bcrypt hash
// @Tags users
// @Accept json
// @Produce json
// @Param request body dto.CreateUserRequest true "User registration data"
// @Success 201 {object} dto.CreateUserResponse "User created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 409 {object} dto.ErrorResponse "Username already taken"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/user [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, newAPIError(ErrValidation, "Invalid request body", err))
		return
	}

	existing, err := h.users.FindByUsername(r.Context(), req.Username)
	if err != nil {
		writeError(w, r, newAPIError(ErrUpstream, "Failed to create user", err))
		return
	}
	if len(existing) > 0 {
		writeError(w, r, newAPIError(ErrConflict, "Username already taken", nil))
		return
	}

	hashedPassword, err := h.hasher.Hash(req.LoginSecret)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		writeError(w, r, newAPIError(ErrValidation, "Login secret is too long", err))
		return
	}
	if err != nil {
		writeError(w, r, newAPIError(ErrUpstream, "Failed to create user", err))
		return
	}

	uid := h.newID()
	user := models.User{
		UID:          uid,
		FullName:     req.FullName,
		Username:     req.Username,
		PasswordHash: hashedPassword,
	}
	err = h.users.Create(r.Context(), user)
	if errors.Is(err, store.ErrDuplicateDocument) {
		// lost a race with a concurrent registration of the same name
		writeError(w, r, newAPIError(ErrConflict, "Username already taken", err))
		return
	}
	if err != nil {
		writeError(w, r, newAPIError(ErrUpstream, "Failed to create user", err))
		return
	}

	logger.FromRequest(r).Info().Str("uid", uid).Msg("user created")
	utils.WriteJSONResponse(w, http.StatusCreated, dto.CreateUserResponse{
		Message: "User created",
		UID:     uid,
	})
}

// Login handles user login
// @Summary Login user
// @Description Verify a username and login secret and return the stored profile
// @Tags users
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.LoginResponse "Login successful"
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, newAPIError(ErrValidation, "Invalid request body", err))
		return
	}

	users, err := h.users.FindByUsername(r.Context(), req.Username)
	if err != nil {
		writeError(w, r, newAPIError(ErrUpstream, "Login failed", err))
		return
	}

	// Unknown usernames and wrong secrets get the same body and cost.
	if len(users) == 0 {
		h.hasher.VerifyDummy(req.LoginSecret)
		middleware.RecordLoginAttempt(false)
		writeError(w, r, newAPIError(ErrInvalidCredentials, "Invalid credentials", nil))
		return
	}

	user := users[0]
	if !h.hasher.Verify(user.PasswordHash, req.LoginSecret) {
		middleware.RecordLoginAttempt(false)
		writeError(w, r, newAPIError(ErrInvalidCredentials, "Invalid credentials", nil))
		return
	}

	middleware.RecordLoginAttempt(true)
	utils.WriteJSONResponse(w, http.StatusOK, dto.LoginResponse{
		Message:  "Login successful",
		UserData: user.Public(),
	})
}
