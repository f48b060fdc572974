package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ecommerce-admin-api/internal/application/auth"
	"github.com/jhoicas/ecommerce-admin-api/internal/application/usecase"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain/entity"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain/repository"
	apphttp "github.com/jhoicas/ecommerce-admin-api/internal/interfaces/http"
)

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "ecommerce-admin-test"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repos en memoria: la API completa se prueba contra ellos, sin Postgres.
// ──────────────────────────────────────────────────────────────────────────────

type memUserRepo struct {
	byID map[int64]*entity.User
	seq  int64
}

func newMemUserRepo() *memUserRepo { return &memUserRepo{byID: map[int64]*entity.User{}} }

func (r *memUserRepo) Create(u *entity.User) (int64, error) {
	r.seq++
	cp := *u
	cp.ID = r.seq
	r.byID[cp.ID] = &cp
	return cp.ID, nil
}

func (r *memUserRepo) FindByID(id int64) (*entity.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *memUserRepo) FindByEmail(email string) (*entity.User, error) {
	for _, u := range r.byID {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) FindByUsername(username string) (*entity.User, error) {
	for _, u := range r.byID {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

type memCategoryRepo struct {
	byID map[int64]*entity.Category
	seq  int64
}

func newMemCategoryRepo() *memCategoryRepo {
	return &memCategoryRepo{byID: map[int64]*entity.Category{}}
}

func (r *memCategoryRepo) FindAll() ([]*entity.Category, error) {
	out := make([]*entity.Category, 0, len(r.byID))
	for _, c := range r.byID {
		cp := *c
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *memCategoryRepo) FindByID(id int64) (*entity.Category, error) {
	c, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *memCategoryRepo) FindByName(name string) (*entity.Category, error) {
	for _, c := range r.byID {
		if c.Name == name {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memCategoryRepo) Create(c *entity.Category) (int64, error) {
	r.seq++
	cp := *c
	cp.ID = r.seq
	r.byID[cp.ID] = &cp
	return cp.ID, nil
}

func (r *memCategoryRepo) Update(c *entity.Category) (bool, error) {
	if _, ok := r.byID[c.ID]; !ok {
		return false, nil
	}
	cp := *c
	r.byID[c.ID] = &cp
	return true, nil
}

func (r *memCategoryRepo) Delete(id int64) (bool, error) {
	if _, ok := r.byID[id]; !ok {
		return false, nil
	}
	delete(r.byID, id)
	return true, nil
}

type memSubCategoryRepo struct {
	byID       map[int64]*entity.SubCategory
	categories *memCategoryRepo
	seq        int64
}

func newMemSubCategoryRepo(categories *memCategoryRepo) *memSubCategoryRepo {
	return &memSubCategoryRepo{byID: map[int64]*entity.SubCategory{}, categories: categories}
}

func (r *memSubCategoryRepo) withCategoryName(s *entity.SubCategory) *entity.SubCategory {
	cp := *s
	if c, _ := r.categories.FindByID(cp.CategoryID); c != nil {
		cp.CategoryName = c.Name
	}
	return &cp
}

func (r *memSubCategoryRepo) FindAll() ([]*entity.SubCategory, error) {
	out := make([]*entity.SubCategory, 0, len(r.byID))
	for _, s := range r.byID {
		out = append(out, r.withCategoryName(s))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *memSubCategoryRepo) FindByID(id int64) (*entity.SubCategory, error) {
	s, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return r.withCategoryName(s), nil
}

func (r *memSubCategoryRepo) Create(s *entity.SubCategory) (int64, error) {
	r.seq++
	cp := *s
	cp.ID = r.seq
	r.byID[cp.ID] = &cp
	return cp.ID, nil
}

func (r *memSubCategoryRepo) Update(s *entity.SubCategory) (bool, error) {
	if _, ok := r.byID[s.ID]; !ok {
		return false, nil
	}
	cp := *s
	r.byID[s.ID] = &cp
	return true, nil
}

func (r *memSubCategoryRepo) Delete(id int64) (bool, error) {
	if _, ok := r.byID[id]; !ok {
		return false, nil
	}
	delete(r.byID, id)
	return true, nil
}

type memProductRepo struct {
	byID          map[int64]*entity.Product
	categories    *memCategoryRepo
	subCategories *memSubCategoryRepo
	seq           int64
}

func newMemProductRepo(categories *memCategoryRepo, subCategories *memSubCategoryRepo) *memProductRepo {
	return &memProductRepo{byID: map[int64]*entity.Product{}, categories: categories, subCategories: subCategories}
}

func (r *memProductRepo) withNames(p *entity.Product) *entity.Product {
	cp := *p
	cp.Images = append([]string(nil), p.Images...)
	if c, _ := r.categories.FindByID(cp.CategoryID); c != nil {
		cp.CategoryName = c.Name
	}
	if s, _ := r.subCategories.FindByID(cp.SubCategoryID); s != nil {
		cp.SubCategoryName = s.Name
	}
	return &cp
}

func (r *memProductRepo) FindAll() ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.byID))
	for _, p := range r.byID {
		out = append(out, r.withNames(p))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *memProductRepo) FindByID(id int64) (*entity.Product, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return r.withNames(p), nil
}

func (r *memProductRepo) skuTaken(sku *string, exceptID int64) bool {
	if sku == nil {
		return false
	}
	for _, p := range r.byID {
		if p.ID != exceptID && p.SKU != nil && *p.SKU == *sku {
			return true
		}
	}
	return false
}

func (r *memProductRepo) Create(p *entity.Product) (int64, error) {
	if r.skuTaken(p.SKU, 0) {
		return 0, domain.ErrDuplicate
	}
	r.seq++
	cp := *p
	cp.ID = r.seq
	cp.Images = append([]string(nil), p.Images...)
	r.byID[cp.ID] = &cp
	return cp.ID, nil
}

func (r *memProductRepo) Update(p *entity.Product) (bool, error) {
	if _, ok := r.byID[p.ID]; !ok {
		return false, nil
	}
	if r.skuTaken(p.SKU, p.ID) {
		return false, domain.ErrDuplicate
	}
	cp := *p
	cp.Images = append([]string(nil), p.Images...)
	r.byID[p.ID] = &cp
	return true, nil
}

func (r *memProductRepo) Delete(id int64) (bool, error) {
	if _, ok := r.byID[id]; !ok {
		return false, nil
	}
	delete(r.byID, id)
	return true, nil
}

type memImageRepo struct{}

func (memImageRepo) ReplaceForProduct(productID int64, imageURLs []string) error { return nil }

// memTxRunner ejecuta fn directamente sobre los repos en memoria.
type memTxRunner struct {
	products *memProductRepo
	images   memImageRepo
}

func (t *memTxRunner) Run(ctx context.Context, fn func(repository.ProductRepository, repository.ProductImageRepository) error) error {
	return fn(t.products, t.images)
}

// fakeStorage devuelve rutas deterministas sin tocar disco.
type fakeStorage struct {
	saved []string
	seq   int
}

func (s *fakeStorage) Save(_ context.Context, file *multipart.FileHeader) (string, error) {
	s.seq++
	path := fmt.Sprintf("/uploads/test-%d%s", s.seq, strings.ToLower(filepath.Ext(file.Filename)))
	s.saved = append(s.saved, path)
	return path, nil
}

type noopMailer struct{}

func (noopMailer) SendPasswordReset(string) error { return nil }

// ──────────────────────────────────────────────────────────────────────────────
// Construcción de la app de test y helpers de peticiones
// ──────────────────────────────────────────────────────────────────────────────

type testEnv struct {
	app     *fiber.App
	users   *memUserRepo
	storage *fakeStorage
}

// buildTestApp arma la app completa (usecases reales + repos en memoria).
func buildTestApp(t *testing.T, protectWrites bool) *testEnv {
	t.Helper()

	users := newMemUserRepo()
	categories := newMemCategoryRepo()
	subCategories := newMemSubCategoryRepo(categories)
	products := newMemProductRepo(categories, subCategories)
	storage := &fakeStorage{}

	authUC := auth.NewAuthUseCase(users, noopMailer{}, auth.JWTConfig{
		Secret: testJWTSecret,
		Issuer: testIssuer,
	})
	categoryUC := usecase.NewCategoryUseCase(categories)
	subCategoryUC := usecase.NewSubCategoryUseCase(subCategories, categories)
	productUC := usecase.NewProductUseCase(products, categories, subCategories, &memTxRunner{products: products})

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:        authUC,
		CategoryUC:    categoryUC,
		SubCategoryUC: subCategoryUC,
		ProductUC:     productUC,
		Users:         users,
		Storage:       storage,
		JWTSecret:     testJWTSecret,
		ProtectWrites: protectWrites,
	})
	return &testEnv{app: app, users: users, storage: storage}
}

// registerAndLogin registra un usuario de prueba y devuelve su bearer token.
func registerAndLogin(t *testing.T, env *testEnv) string {
	t.Helper()
	body := `{"username":"admin","email":"admin@tienda.com","password":"secreto123"}`
	resp := doJSON(t, env.app, http.MethodPost, "/api/auth/register", body, "")
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode, "el registro de prueba debe funcionar")

	var out struct {
		Token string `json:"token"`
	}
	require.NoError(t, decodeJSON(resp.Body, &out))
	require.NotEmpty(t, out.Token)
	return out.Token
}

// doJSON lanza una petición con cuerpo JSON.
func doJSON(t *testing.T, app *fiber.App, method, path, body, token string) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// multipartBody construye un cuerpo multipart/form-data con campos y archivos.
// files mapea nombre de campo a lista de nombres de archivo (contenido dummy).
func multipartBody(t *testing.T, fields map[string]string, files map[string][]string) (io.Reader, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for name, value := range fields {
		require.NoError(t, w.WriteField(name, value))
	}
	for field, names := range files {
		for _, name := range names {
			part, err := w.CreateFormFile(field, name)
			require.NoError(t, err)
			_, err = part.Write([]byte("contenido-imagen"))
			require.NoError(t, err)
		}
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

// doForm lanza una petición multipart/form-data.
func doForm(t *testing.T, app *fiber.App, method, path string, fields map[string]string, files map[string][]string, token string) *http.Response {
	t.Helper()
	body, contentType := multipartBody(t, fields, files)
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", contentType)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeJSON(r io.Reader, v any) error {
	return json.NewDecoder(r).Decode(v)
}
