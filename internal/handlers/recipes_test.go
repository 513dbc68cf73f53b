package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"RECIPEBOOK_BACK-END/internal/dto"
	"RECIPEBOOK_BACK-END/internal/media"
	"RECIPEBOOK_BACK-END/internal/models"
	"RECIPEBOOK_BACK-END/internal/store"
)

func createRecipe(t *testing.T, env *testEnv, fields map[string]string) string {
	t.Helper()
	rec := env.do(recipeRequest(t, fields, testImage()))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp dto.CreateRecipeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Recipe created", resp.Message)
	require.NotEmpty(t, resp.ID)
	return resp.ID
}

func getRecipe(t *testing.T, env *testEnv, id string) (*httptest.ResponseRecorder, models.Recipe) {
	t.Helper()
	rec := env.do(httptest.NewRequest(http.MethodGet, "/api/recipe/"+id, nil))
	var recipe models.Recipe
	if rec.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &recipe))
	}
	return rec, recipe
}

func TestCreateRecipe_RoundTrip(t *testing.T) {
	env := newTestEnv(t)
	fields := validRecipeFields()

	id := createRecipe(t, env, fields)

	rec, got := getRecipe(t, env, id)
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, id, got.ID)
	assert.Equal(t, fields["title"], got.Title)
	assert.Equal(t, fields["time"], got.Time)
	assert.Equal(t, fields["servings"], got.Servings)
	assert.Equal(t, fields["privacy"], got.Privacy)
	assert.Equal(t, fields["calories"], got.Calories)
	assert.Equal(t, fields["protein"], got.Protein)
	assert.Equal(t, fields["carb"], got.Carb)
	assert.Equal(t, fields["contains"], got.Contains)
	assert.Equal(t, fields["userId"], got.UserID)

	ingredients, err := json.Marshal(got.Ingredients)
	require.NoError(t, err)
	assert.JSONEq(t, fields["ingredients"], string(ingredients))
	instructions, err := json.Marshal(got.Instructions)
	require.NoError(t, err)
	assert.JSONEq(t, fields["instructions"], string(instructions))

	assert.Equal(t, id+"_shakshuka.jpg", got.ImageName)
	assert.Equal(t, testImage().data, env.uploader.objects[got.ImageURL])
}

func TestCreateRecipe_UploadInput(t *testing.T) {
	env := newTestEnv(t)

	id := createRecipe(t, env, validRecipeFields())

	require.Equal(t, 1, env.uploader.calls())
	in := env.uploader.inputs[0]
	assert.Equal(t, media.RecipesFolder, in.Folder)
	assert.Equal(t, id+"_shakshuka.jpg", in.FileName)
	assert.Equal(t, "image/jpeg", in.ContentType)
	assert.Equal(t, int64(len(testImage().data)), in.Size)
}

func TestCreateRecipe_ImageURLComesFromMediaHost(t *testing.T) {
	env := newTestEnv(t)
	fields := validRecipeFields()
	fields["imageUrl"] = "https://evil.example/x.jpg"
	fields["imageName"] = "x.jpg"

	id := createRecipe(t, env, fields)

	_, got := getRecipe(t, env, id)
	assert.Equal(t, "https://media.test/recipes/"+id+"_shakshuka.jpg", got.ImageURL)
	assert.Equal(t, id+"_shakshuka.jpg", got.ImageName)
}

func TestCreateRecipe_RejectedWithoutSideEffects(t *testing.T) {
	tests := []struct {
		name    string
		req     func(t *testing.T) *http.Request
		wantMsg string
	}{
		{
			name: "missing image",
			req: func(t *testing.T) *http.Request {
				return recipeRequest(t, validRecipeFields(), nil)
			},
			wantMsg: "Image file is required",
		},
		{
			name: "not multipart",
			req: func(t *testing.T) *http.Request {
				return jsonRequest(t, http.MethodPost, "/api/recipe", validRecipeFields())
			},
			wantMsg: "Image file is required",
		},
		{
			name: "malformed ingredients",
			req: func(t *testing.T) *http.Request {
				f := validRecipeFields()
				f["ingredients"] = `[{"name":"eggs"`
				return recipeRequest(t, f, testImage())
			},
			wantMsg: "Invalid ingredients",
		},
		{
			name: "missing ingredients",
			req: func(t *testing.T) *http.Request {
				f := validRecipeFields()
				delete(f, "ingredients")
				return recipeRequest(t, f, testImage())
			},
			wantMsg: "Invalid ingredients",
		},
		{
			name: "ingredients not an array",
			req: func(t *testing.T) *http.Request {
				f := validRecipeFields()
				f["ingredients"] = `{"name":"eggs"}`
				return recipeRequest(t, f, testImage())
			},
			wantMsg: "Invalid ingredients",
		},
		{
			name: "null instructions",
			req: func(t *testing.T) *http.Request {
				f := validRecipeFields()
				f["instructions"] = `null`
				return recipeRequest(t, f, testImage())
			},
			wantMsg: "Invalid instructions",
		},
		{
			name: "malformed instructions",
			req: func(t *testing.T) *http.Request {
				f := validRecipeFields()
				f["instructions"] = `step one, step two`
				return recipeRequest(t, f, testImage())
			},
			wantMsg: "Invalid instructions",
		},
		{
			name: "body too large",
			req: func(t *testing.T) *http.Request {
				img := testImage()
				img.data = bytes.Repeat([]byte("x"), 2<<20)
				return recipeRequest(t, validRecipeFields(), img)
			},
			wantMsg: "Request body exceeds",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)

			rec := env.do(tt.req(t))

			require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
			body := decodeError(t, rec)
			assert.Contains(t, body.Error, tt.wantMsg)
			assert.Equal(t, ErrCodeInvalidRequest, body.Code)
			assert.Equal(t, 0, countRecipes(t, env.docs))
			assert.Equal(t, 0, env.uploader.calls())
		})
	}
}

func TestCreateRecipe_IgnoresQueryString(t *testing.T) {
	t.Run("query does not override the body", func(t *testing.T) {
		env := newTestEnv(t)
		fields := validRecipeFields()
		delete(fields, "userId")

		req := recipeRequest(t, fields, testImage())
		req.URL.RawQuery = "userId=someone-else&title=Hijacked"
		rec := env.do(req)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		var resp dto.CreateRecipeResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		_, got := getRecipe(t, env, resp.ID)
		assert.Empty(t, got.UserID)
		assert.Equal(t, fields["title"], got.Title)
	})

	t.Run("sequences must be in the body", func(t *testing.T) {
		env := newTestEnv(t)
		fields := validRecipeFields()
		delete(fields, "ingredients")

		req := recipeRequest(t, fields, testImage())
		req.URL.RawQuery = `ingredients=[{"name":"salt"}]`
		rec := env.do(req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid ingredients", decodeError(t, rec).Error)
		assert.Zero(t, env.uploader.calls())
		assert.Zero(t, countRecipes(t, env.docs))
	})
}

func TestCreateRecipe_UploadFailure(t *testing.T) {
	env := newTestEnv(t)
	env.uploader.uploadFn = func(context.Context, media.UploadInput) (media.UploadResult, error) {
		return media.UploadResult{}, errors.Join(media.ErrUpload, errors.New("imagekit responded 403: Your account cannot be authenticated."))
	}

	rec := env.do(recipeRequest(t, validRecipeFields(), testImage()))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "Failed to upload image", body.Error)
	assert.Equal(t, ErrCodeInternal, body.Code)
	assertNoLeak(t, rec, "authenticated")
	assert.Equal(t, 0, countRecipes(t, env.docs))
}

func TestCreateRecipe_StoreFailureAfterUpload(t *testing.T) {
	uploader := newFakeUploader()
	recipes := &stubRecipeStore{
		createFn: func(context.Context, models.Recipe) error {
			return errors.New("pq: relation \"documents\" does not exist")
		},
	}
	router := newTestRouter(
		NewAuthHandler(&stubUserStore{}, newTestHasher(t)),
		NewRecipeHandler(recipes, uploader, 1<<20),
	)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, recipeRequest(t, validRecipeFields(), testImage()))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Failed to create recipe", decodeError(t, rec).Error)
	assertNoLeak(t, rec, "relation")
	// no rollback: the image stays uploaded
	assert.Equal(t, 1, uploader.calls())
	assert.Len(t, uploader.objects, 1)
}

func TestListRecipes_ReturnsEveryRecipeRegardlessOfPrivacy(t *testing.T) {
	env := newTestEnv(t)

	public := validRecipeFields()
	private := validRecipeFields()
	private["privacy"] = "private"
	private["title"] = "Secret Sauce"
	private["userId"] = "user-2"

	ids := map[string]bool{
		createRecipe(t, env, public):  false,
		createRecipe(t, env, private): false,
	}

	rec := env.do(httptest.NewRequest(http.MethodGet, "/api/recipe", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var recipes []models.Recipe
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &recipes))
	require.Len(t, recipes, 2)
	for _, r := range recipes {
		seen, ok := ids[r.ID]
		require.True(t, ok, "unexpected recipe %s", r.ID)
		require.False(t, seen, "recipe %s listed twice", r.ID)
		ids[r.ID] = true
	}
}

func TestListRecipes_Empty(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(httptest.NewRequest(http.MethodGet, "/api/recipe", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestListRecipes_NilFromStoreIsEmptyArray(t *testing.T) {
	recipes := &stubRecipeStore{
		listFn: func(context.Context) ([]models.Recipe, error) { return nil, nil },
	}
	h := NewRecipeHandler(recipes, newFakeUploader(), 1<<20)

	rec := httptest.NewRecorder()
	h.ListRecipes(rec, httptest.NewRequest(http.MethodGet, "/api/recipe", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestListRecipes_StoreFailure(t *testing.T) {
	recipes := &stubRecipeStore{
		listFn: func(context.Context) ([]models.Recipe, error) { return nil, errors.New("deadline exceeded") },
	}
	h := NewRecipeHandler(recipes, newFakeUploader(), 1<<20)

	rec := httptest.NewRecorder()
	h.ListRecipes(rec, httptest.NewRequest(http.MethodGet, "/api/recipe", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Failed to list recipes", decodeError(t, rec).Error)
	assertNoLeak(t, rec, "deadline")
}

func TestGetRecipe_NotFound(t *testing.T) {
	env := newTestEnv(t)

	rec, _ := getRecipe(t, env, "does-not-exist")

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Recipe not found","code":"not_found"}`, rec.Body.String())
}

func TestGetRecipe_StoreFailure(t *testing.T) {
	recipes := &stubRecipeStore{
		getFn: func(context.Context, string) (models.Recipe, error) {
			return models.Recipe{}, errors.New("connection reset by peer")
		},
	}
	router := newTestRouter(NewAuthHandler(&stubUserStore{}, newTestHasher(t)), NewRecipeHandler(recipes, newFakeUploader(), 1<<20))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/recipe/abc", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assertNoLeak(t, rec, "connection reset")
}

func TestDeleteRecipe_Idempotent(t *testing.T) {
	env := newTestEnv(t)
	id := createRecipe(t, env, validRecipeFields())

	for i := 0; i < 2; i++ {
		rec := env.do(httptest.NewRequest(http.MethodDelete, "/api/recipe/"+id, nil))
		require.Equal(t, http.StatusOK, rec.Code)

		var resp dto.DeleteRecipeResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, dto.DeleteRecipeResponse{Message: "Recipe deleted", ID: id}, resp)
	}

	rec, _ := getRecipe(t, env, id)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, 0, countRecipes(t, env.docs))

	// the image is not removed from the media host
	assert.Len(t, env.uploader.objects, 1)
}

func TestDeleteRecipe_UnknownID(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(httptest.NewRequest(http.MethodDelete, "/api/recipe/never-existed", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "never-existed")
}

func TestDeleteRecipe_StoreFailure(t *testing.T) {
	recipes := &stubRecipeStore{
		deleteFn: func(context.Context, string) error { return errors.New("permission denied for table documents") },
	}
	router := newTestRouter(NewAuthHandler(&stubUserStore{}, newTestHasher(t)), NewRecipeHandler(recipes, newFakeUploader(), 1<<20))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/recipe/abc", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Failed to delete recipe", decodeError(t, rec).Error)
	assertNoLeak(t, rec, "permission")
}

func TestDecodeSequence(t *testing.T) {
	seq, err := decodeSequence(`[1, "two", {"three": 3}]`)
	require.NoError(t, err)
	assert.Len(t, seq, 3)

	seq, err = decodeSequence(`[]`)
	require.NoError(t, err)
	assert.NotNil(t, seq)
	assert.Empty(t, seq)

	for _, bad := range []string{``, `null`, `{}`, `"text"`, `[1,`} {
		_, err := decodeSequence(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestRecipeNotFoundIsDistinctFromStoreErrors(t *testing.T) {
	err := newAPIError(ErrNotFound, "Recipe not found", store.ErrDocumentNotFound)
	assert.Equal(t, http.StatusNotFound, mappingFromError(err).status)
	assert.True(t, strings.Contains(err.Error(), store.ErrDocumentNotFound.Error()))
}
