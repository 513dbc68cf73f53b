package dto

// CreateRecipeResponse represents the response after a recipe is created
type CreateRecipeResponse struct {
	Message string `json:"message" example:"Recipe created"`
	ID      string `json:"id" example:"0b6a1d8e-94f4-4a7a-8d0c-3f7f0d2c9b11"`
}

// DeleteRecipeResponse represents the response after a recipe is deleted
type DeleteRecipeResponse struct {
	Message string `json:"message" example:"Recipe deleted"`
	ID      string `json:"id" example:"0b6a1d8e-94f4-4a7a-8d0c-3f7f0d2c9b11"`
}
