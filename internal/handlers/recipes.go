package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"RECIPEBOOK_BACK-END/internal/dto"
	"RECIPEBOOK_BACK-END/internal/logger"
	"RECIPEBOOK_BACK-END/internal/media"
	"RECIPEBOOK_BACK-END/internal/middleware"
	"RECIPEBOOK_BACK-END/internal/models"
	"RECIPEBOOK_BACK-END/internal/store"
	"RECIPEBOOK_BACK-END/internal/utils"
)

// RecipeStore persists recipe documents.
type RecipeStore interface {
	Create(ctx context.Context, recipe models.Recipe) error
	Get(ctx context.Context, id string) (models.Recipe, error)
	List(ctx context.Context) ([]models.Recipe, error)
	Delete(ctx context.Context, id string) error
}

// RecipeHandler handles recipe CRUD requests
type RecipeHandler struct {
	recipes        RecipeStore
	uploader       media.Uploader
	maxUploadBytes int64
	newID          func() string
}

// NewRecipeHandler creates a new RecipeHandler instance
func NewRecipeHandler(recipes RecipeStore, uploader media.Uploader, maxUploadBytes int64) *RecipeHandler {
	return &RecipeHandler{
		recipes:        recipes,
		uploader:       uploader,
		maxUploadBytes: maxUploadBytes,
		newID:          uuid.NewString,
	}
}

// CreateRecipe handles recipe creation with an image upload
// @Summary Create a recipe
// @Description Upload the recipe image to the media host and store the recipe
// @Tags recipes
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Recipe image"
// @Param title formData string false "Title"
// @Param time formData string false "Preparation time"
// @Param servings formData string false "Servings"
// @Param privacy formData string false "Privacy flag"
// @Param calories formData string false "Calories"
// @Param protein formData string false "Protein"
// @Param carb formData string false "Carbohydrates"
// @Param contains formData string false "Allergen marker"
// @Param userId formData string false "Owning user id"
// @Param ingredients formData string true "JSON array of ingredients"
// @Param instructions formData string true "JSON array of instructions"
// @Success 201 {object} dto.CreateRecipeResponse "Recipe created"
// @Failure 400 {object} dto.ErrorResponse "Missing image or malformed fields"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/recipe [post]
func (h *RecipeHandler) CreateRecipe(w http.ResponseWriter, r *http.Request) {
	if r.ContentLength > h.maxUploadBytes {
		middleware.RecordRecipeUpload(middleware.UploadResultRejected)
		writeError(w, r, multipartError(&http.MaxBytesError{Limit: h.maxUploadBytes}))
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		middleware.RecordRecipeUpload(middleware.UploadResultRejected)
		writeError(w, r, multipartError(err))
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("image")
	if err != nil {
		middleware.RecordRecipeUpload(middleware.UploadResultRejected)
		writeError(w, r, newAPIError(ErrValidation, "Image file is required", err))
		return
	}
	defer file.Close()

	// Decode before uploading so a bad payload never leaves an orphaned image.
	ingredients, err := decodeSequence(r.PostFormValue("ingredients"))
	if err != nil {
		middleware.RecordRecipeUpload(middleware.UploadResultRejected)
		writeError(w, r, newAPIError(ErrValidation, "Invalid ingredients", err))
		return
	}
	instructions, err := decodeSequence(r.PostFormValue("instructions"))
	if err != nil {
		middleware.RecordRecipeUpload(middleware.UploadResultRejected)
		writeError(w, r, newAPIError(ErrValidation, "Invalid instructions", err))
		return
	}

	id := h.newID()
	uploaded, err := h.uploader.Upload(r.Context(), media.UploadInput{
		Body:        file,
		Size:        header.Size,
		ContentType: header.Header.Get("Content-Type"),
		FileName:    id + "_" + header.Filename,
		Folder:      media.RecipesFolder,
	})
	if err != nil {
		middleware.RecordRecipeUpload(middleware.UploadResultMediaError)
		writeError(w, r, newAPIError(ErrUpstream, "Failed to upload image", err))
		return
	}

	recipe := models.Recipe{
		ID:           id,
		Title:        r.PostFormValue("title"),
		Time:         r.PostFormValue("time"),
		Servings:     r.PostFormValue("servings"),
		Privacy:      r.PostFormValue("privacy"),
		Calories:     r.PostFormValue("calories"),
		Protein:      r.PostFormValue("protein"),
		Carb:         r.PostFormValue("carb"),
		UserID:       r.PostFormValue("userId"),
		Contains:     r.PostFormValue("contains"),
		Ingredients:  ingredients,
		Instructions: instructions,
		ImageName:    uploaded.Name,
		ImageURL:     uploaded.URL,
	}

	if err := h.recipes.Create(r.Context(), recipe); err != nil {
		// The image stays on the media host; there is no rollback.
		logger.FromRequest(r).Warn().
			Str("recipe_id", id).
			Str("image_url", uploaded.URL).
			Msg("recipe image orphaned after failed write")
		middleware.RecordRecipeUpload(middleware.UploadResultStoreError)
		writeError(w, r, newAPIError(ErrUpstream, "Failed to create recipe", err))
		return
	}

	middleware.RecordRecipeUpload(middleware.UploadResultCreated)
	logger.FromRequest(r).Info().Str("recipe_id", id).Msg("recipe created")
	utils.WriteJSONResponse(w, http.StatusCreated, dto.CreateRecipeResponse{
		Message: "Recipe created",
		ID:      id,
	})
}

// ListRecipes returns every stored recipe
// @Summary List recipes
// @Description Return every recipe, public and private alike
// @Tags recipes
// @Produce json
// @Success 200 {array} models.Recipe
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/recipe [get]
func (h *RecipeHandler) ListRecipes(w http.ResponseWriter, r *http.Request) {
	recipes, err := h.recipes.List(r.Context())
	if err != nil {
		writeError(w, r, newAPIError(ErrUpstream, "Failed to list recipes", err))
		return
	}
	if recipes == nil {
		recipes = []models.Recipe{}
	}

	utils.WriteJSONResponse(w, http.StatusOK, recipes)
}

// GetRecipe returns a single recipe
// @Summary Get a recipe
// @Tags recipes
// @Produce json
// @Param id path string true "Recipe ID"
// @Success 200 {object} models.Recipe
// @Failure 404 {object} dto.ErrorResponse "Recipe not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/recipe/{id} [get]
func (h *RecipeHandler) GetRecipe(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	recipe, err := h.recipes.Get(r.Context(), id)
	if errors.Is(err, store.ErrDocumentNotFound) {
		writeError(w, r, newAPIError(ErrNotFound, "Recipe not found", err))
		return
	}
	if err != nil {
		writeError(w, r, newAPIError(ErrUpstream, "Failed to get recipe", err))
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, recipe)
}

// DeleteRecipe deletes a recipe by id
// @Summary Delete a recipe
// @Description Delete the recipe document; deleting an unknown id also succeeds
// @Tags recipes
// @Produce json
// @Param id path string true "Recipe ID"
// @Success 200 {object} dto.DeleteRecipeResponse "Recipe deleted"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/recipe/{id} [delete]
func (h *RecipeHandler) DeleteRecipe(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.recipes.Delete(r.Context(), id); err != nil {
		writeError(w, r, newAPIError(ErrUpstream, "Failed to delete recipe", err))
		return
	}

	logger.FromRequest(r).Info().Str("recipe_id", id).Msg("recipe deleted")
	utils.WriteJSONResponse(w, http.StatusOK, dto.DeleteRecipeResponse{
		Message: "Recipe deleted",
		ID:      id,
	})
}

// decodeSequence parses a form field holding a JSON array.
func decodeSequence(text string) ([]json.RawMessage, error) {
	var seq []json.RawMessage
	if err := json.Unmarshal([]byte(text), &seq); err != nil {
		return nil, err
	}
	if seq == nil {
		return nil, errors.New("expected a JSON array, got null")
	}
	return seq, nil
}

func multipartError(err error) *apiError {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.Is(err, http.ErrNotMultipart):
		// No multipart body means no file was attached.
		return newAPIError(ErrValidation, "Image file is required", err)
	case errors.As(err, &tooLarge):
		return newAPIError(ErrValidation, fmt.Sprintf("Request body exceeds %d bytes", tooLarge.Limit), err)
	default:
		return newAPIError(ErrValidation, "Invalid multipart form", err)
	}
}
