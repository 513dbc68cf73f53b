package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"RECIPEBOOK_BACK-END/internal/dto"
	"RECIPEBOOK_BACK-END/internal/media"
	"RECIPEBOOK_BACK-END/internal/models"
	"RECIPEBOOK_BACK-END/internal/store"
	"RECIPEBOOK_BACK-END/internal/utils"
)

// ─────────────────────────────────────────────
// Fakes
// ─────────────────────────────────────────────

// fakeUploader keeps uploaded bytes in memory, keyed by returned URL.
type fakeUploader struct {
	mu       sync.Mutex
	objects  map[string][]byte
	inputs   []media.UploadInput
	uploadFn func(ctx context.Context, in media.UploadInput) (media.UploadResult, error)
}

func newFakeUploader() *fakeUploader {
	return &fakeUploader{objects: make(map[string][]byte)}
}

func (f *fakeUploader) Upload(ctx context.Context, in media.UploadInput) (media.UploadResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.inputs = append(f.inputs, in)

	if f.uploadFn != nil {
		return f.uploadFn(ctx, in)
	}

	data, err := io.ReadAll(in.Body)
	if err != nil {
		return media.UploadResult{}, err
	}
	url := "https://media.test" + in.Folder + "/" + in.FileName
	f.objects[url] = data
	return media.UploadResult{FileID: in.FileName, Name: in.FileName, URL: url}, nil
}

func (f *fakeUploader) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.inputs)
}

// stubUserStore implements UserStore with overridable functions.
type stubUserStore struct {
	createFn func(ctx context.Context, user models.User) error
	findFn   func(ctx context.Context, username string) ([]models.User, error)
}

func (s *stubUserStore) Create(ctx context.Context, user models.User) error {
	return s.createFn(ctx, user)
}

func (s *stubUserStore) FindByUsername(ctx context.Context, username string) ([]models.User, error) {
	return s.findFn(ctx, username)
}

// stubRecipeStore implements RecipeStore with overridable functions.
type stubRecipeStore struct {
	createFn func(ctx context.Context, recipe models.Recipe) error
	getFn    func(ctx context.Context, id string) (models.Recipe, error)
	listFn   func(ctx context.Context) ([]models.Recipe, error)
	deleteFn func(ctx context.Context, id string) error
}

func (s *stubRecipeStore) Create(ctx context.Context, recipe models.Recipe) error {
	return s.createFn(ctx, recipe)
}

func (s *stubRecipeStore) Get(ctx context.Context, id string) (models.Recipe, error) {
	return s.getFn(ctx, id)
}

func (s *stubRecipeStore) List(ctx context.Context) ([]models.Recipe, error) {
	return s.listFn(ctx)
}

func (s *stubRecipeStore) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

type testEnv struct {
	docs     *store.MemoryStore
	users    *store.UserRepository
	recipes  *store.RecipeRepository
	uploader *fakeUploader
	hasher   *utils.PasswordHasher
	router   http.Handler
}

func newTestHasher(t *testing.T) *utils.PasswordHasher {
	t.Helper()
	h, err := utils.NewPasswordHasher(bcrypt.MinCost)
	require.NoError(t, err)
	return h
}

func newTestRouter(auth *AuthHandler, recipes *RecipeHandler) http.Handler {
	r := chi.NewRouter()
	r.Post("/api/user", auth.Register)
	r.Post("/api/login", auth.Login)
	r.Post("/api/recipe", recipes.CreateRecipe)
	r.Get("/api/recipe", recipes.ListRecipes)
	r.Get("/api/recipe/{id}", recipes.GetRecipe)
	r.Delete("/api/recipe/{id}", recipes.DeleteRecipe)
	return r
}

// newTestEnv wires handlers to an in-memory store and a fake media host.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	docs := store.NewMemoryStore()
	env := &testEnv{
		docs:     docs,
		users:    store.NewUserRepository(docs),
		recipes:  store.NewRecipeRepository(docs),
		uploader: newFakeUploader(),
		hasher:   newTestHasher(t),
	}
	env.router = newTestRouter(
		NewAuthHandler(env.users, env.hasher),
		NewRecipeHandler(env.recipes, env.uploader, 1<<20),
	)
	return env
}

func (e *testEnv) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func jsonRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(method, target, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	return req
}

type formImage struct {
	filename    string
	contentType string
	data        []byte
}

// recipeRequest builds a multipart POST /api/recipe request.
// A nil image omits the file part.
func recipeRequest(t *testing.T, fields map[string]string, image *formImage) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if image != nil {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="image"; filename="`+image.filename+`"`)
		h.Set("Content-Type", image.contentType)
		part, err := mw.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write(image.data)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/recipe", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func validRecipeFields() map[string]string {
	return map[string]string{
		"title":        "Shakshuka",
		"time":         "30 min",
		"servings":     "4",
		"privacy":      "public",
		"calories":     "320",
		"protein":      "18",
		"carb":         "22",
		"contains":     "eggs",
		"userId":       "user-1",
		"ingredients":  `[{"name":"eggs","amount":"6"},{"name":"tomatoes","amount":"800g"}]`,
		"instructions": `[{"step":1,"text":"Simmer the sauce"},{"step":2,"text":"Poach the eggs"}]`,
	}
}

func testImage() *formImage {
	return &formImage{filename: "shakshuka.jpg", contentType: "image/jpeg", data: []byte("\xff\xd8\xff\xe0fake-jpeg")}
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return body
}

func countRecipes(t *testing.T, docs store.DocumentStore) int {
	t.Helper()
	all, err := docs.All(context.Background(), store.RecipesCollection)
	require.NoError(t, err)
	return len(all)
}

func assertNoLeak(t *testing.T, rec *httptest.ResponseRecorder, secret string) {
	t.Helper()
	require.False(t, strings.Contains(rec.Body.String(), secret), "response leaked %q: %s", secret, rec.Body.String())
}
