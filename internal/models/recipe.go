package models

import "encoding/json"

// Recipe is the document stored in the "recipes" collection.
//
// The descriptive fields hold the text submitted by the client as-is.
// Ingredients and Instructions are ordered lists whose entries are defined
// by the client, so they are kept as raw JSON.
type Recipe struct {
	ID           string            `json:"id"`
	Title        string            `json:"title"`
	Time         string            `json:"time"`
	Servings     string            `json:"servings"`
	Privacy      string            `json:"privacy"`
	Calories     string            `json:"calories"`
	Protein      string            `json:"protein"`
	Carb         string            `json:"carb"`
	UserID       string            `json:"userId"`
	Contains     string            `json:"contains"`
	Ingredients  []json.RawMessage `json:"ingredients"`
	Instructions []json.RawMessage `json:"instructions"`
	ImageName    string            `json:"imageName"`
	ImageURL     string            `json:"imageUrl"`
}
