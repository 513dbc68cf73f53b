package store

import (
	"context"
	"encoding/json"
	"fmt"

	"RECIPEBOOK_BACK-END/internal/models"
)

// RecipeRepository reads and writes recipe documents.
type RecipeRepository struct {
	docs DocumentStore
}

// NewRecipeRepository creates a new RecipeRepository instance
func NewRecipeRepository(docs DocumentStore) *RecipeRepository {
	return &RecipeRepository{docs: docs}
}

func (r *RecipeRepository) Create(ctx context.Context, recipe models.Recipe) error {
	if err := r.docs.Set(ctx, RecipesCollection, recipe.ID, recipe); err != nil {
		return fmt.Errorf("create recipe %s: %w", recipe.ID, err)
	}
	return nil
}

// Get returns ErrDocumentNotFound (wrapped) for unknown ids.
func (r *RecipeRepository) Get(ctx context.Context, id string) (models.Recipe, error) {
	raw, err := r.docs.Get(ctx, RecipesCollection, id)
	if err != nil {
		return models.Recipe{}, fmt.Errorf("get recipe %s: %w", id, err)
	}
	var recipe models.Recipe
	if err := json.Unmarshal(raw, &recipe); err != nil {
		return models.Recipe{}, fmt.Errorf("decode recipe %s: %w", id, err)
	}
	return recipe, nil
}

func (r *RecipeRepository) List(ctx context.Context) ([]models.Recipe, error) {
	raws, err := r.docs.All(ctx, RecipesCollection)
	if err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}
	recipes, err := decodeAll[models.Recipe](raws)
	if err != nil {
		return nil, fmt.Errorf("decode recipes: %w", err)
	}
	return recipes, nil
}

func (r *RecipeRepository) Delete(ctx context.Context, id string) error {
	if err := r.docs.Delete(ctx, RecipesCollection, id); err != nil {
		return fmt.Errorf("delete recipe %s: %w", id, err)
	}
	return nil
}
