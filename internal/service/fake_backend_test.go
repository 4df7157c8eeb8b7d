package service

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/Pradeep-photonx/LearnRite-Superadmin-sub000/internal/cache"
	"github.com/Pradeep-photonx/LearnRite-Superadmin-sub000/internal/models"
	"github.com/Pradeep-photonx/LearnRite-Superadmin-sub000/pkg/schoolapi"
)

var errBackendDown = errors.New("backend down")

// fakeBackend serves canned data and counts calls per endpoint.
type fakeBackend struct {
	mu    sync.Mutex
	calls map[string]int

	loginResp *models.LoginResponse
	loginErr  error

	schools       []models.School
	categories    []models.Category
	subCategories map[int][]models.SubCategory
	products      []models.Product
	productsErr   error
	bundleRows    []models.BundleRow

	// beforeProductsBy runs inside ListProductsBy, before it answers.
	beforeProductsBy func()

	created    []*models.CreateBundleRequest
	updated    []*models.UpdateBundleRequest
	submitErr  error
	admissions []*models.AdmissionInput
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{calls: map[string]int{}}
}

func (f *fakeBackend) hit(name string) {
	f.mu.Lock()
	f.calls[name]++
	f.mu.Unlock()
}

func (f *fakeBackend) count(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[name]
}

func (f *fakeBackend) Login(_ context.Context, _, _ string) (*models.LoginResponse, error) {
	f.hit("login")
	return f.loginResp, f.loginErr
}

func (f *fakeBackend) ListSchools(context.Context) ([]models.School, error) {
	f.hit("schools")
	return f.schools, nil
}

func (f *fakeBackend) ListClasses(context.Context) ([]models.Class, error) {
	f.hit("classes")
	return []models.Class{{ID: 1, Name: "Grade 1"}}, nil
}

func (f *fakeBackend) ListLanguages(context.Context) ([]models.ClassLanguage, error) {
	f.hit("languages")
	return []models.ClassLanguage{{ID: 1, Name: "English"}}, nil
}

func (f *fakeBackend) ListCategories(context.Context) ([]models.Category, error) {
	f.hit("categories")
	return f.categories, nil
}

func (f *fakeBackend) ListSubCategories(_ context.Context, categoryID int) ([]models.SubCategory, error) {
	f.hit("subcategories")
	return f.subCategories[categoryID], nil
}

func (f *fakeBackend) ListBrands(context.Context) ([]models.Brand, error) {
	f.hit("brands")
	return nil, nil
}

func (f *fakeBackend) ListProducts(context.Context) ([]models.Product, error) {
	f.hit("products")
	return f.products, f.productsErr
}

func (f *fakeBackend) ListProductsBy(_ context.Context, categoryID, subCategoryID int) ([]models.Product, error) {
	f.hit("productsBy")
	if f.beforeProductsBy != nil {
		f.beforeProductsBy()
	}
	var out []models.Product
	for _, p := range f.products {
		if cat, sub := p.Placement(); cat == categoryID && sub == subCategoryID {
			out = append(out, p)
		}
	}
	return out, f.productsErr
}

func (f *fakeBackend) ListBundleRows(context.Context) ([]models.BundleRow, error) {
	f.hit("bundles")
	return f.bundleRows, nil
}

func (f *fakeBackend) CreateBundle(_ context.Context, req *models.CreateBundleRequest) (*schoolapi.Envelope, error) {
	f.hit("create")
	if f.submitErr != nil {
		return nil, f.submitErr
	}
	f.created = append(f.created, req)
	return envelope(`{"message":"Bundle created","data":{"class_bundle_id":77}}`), nil
}

func (f *fakeBackend) UpdateBundle(_ context.Context, req *models.UpdateBundleRequest) (*schoolapi.Envelope, error) {
	f.hit("update")
	if f.submitErr != nil {
		return nil, f.submitErr
	}
	f.updated = append(f.updated, req)
	return envelope(`{"message":"Bundle updated"}`), nil
}

func (f *fakeBackend) DeleteBundle(context.Context, int) (*schoolapi.Envelope, error) {
	f.hit("delete")
	return envelope(`{"message":"Bundle deleted"}`), nil
}

func (f *fakeBackend) CreateAdmission(_ context.Context, in *models.AdmissionInput) (*schoolapi.Envelope, error) {
	f.hit("admissionCreate")
	f.admissions = append(f.admissions, in)
	return envelope(`{"message":"Admission created","data":{"id":9}}`), nil
}

func (f *fakeBackend) ListAdmissions(context.Context, *models.AdmissionListRequest) (*models.ListResponse[models.Admission], error) {
	f.hit("admissionList")
	return &models.ListResponse[models.Admission]{}, nil
}

func (f *fakeBackend) ViewAdmission(_ context.Context, id int) (*models.Admission, error) {
	f.hit("admissionView")
	return &models.Admission{ID: id, StudentName: "Asha"}, nil
}

func (f *fakeBackend) UpdateAdmission(context.Context, int, *models.AdmissionInput) (*schoolapi.Envelope, error) {
	f.hit("admissionUpdate")
	return envelope(`{"message":"Admission updated"}`), nil
}

func (f *fakeBackend) DeleteAdmission(context.Context, int) (*schoolapi.Envelope, error) {
	f.hit("admissionDelete")
	return envelope(`{"message":"Admission deleted"}`), nil
}

func envelope(body string) *schoolapi.Envelope {
	var env schoolapi.Envelope
	if err := json.Unmarshal([]byte(body), &env); err != nil {
		panic(err)
	}
	return &env
}

// memoryAudit is an in-memory SubmissionLog.
type memoryAudit struct {
	mu      sync.Mutex
	entries []models.BundleSubmission
	err     error
}

func (m *memoryAudit) Create(_ context.Context, s *models.BundleSubmission) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	s.ID = len(m.entries) + 1
	s.CreatedAt = time.Now()
	m.entries = append(m.entries, *s)
	return nil
}

func (m *memoryAudit) ListRecent(_ context.Context, bundleID *int, limit int) ([]models.BundleSubmission, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.BundleSubmission{}
	for i := len(m.entries) - 1; i >= 0 && len(out) < limit; i-- {
		e := m.entries[i]
		if bundleID == nil || (e.BundleID != nil && *e.BundleID == *bundleID) {
			out = append(out, e)
		}
	}
	return out, nil
}

func catalogProduct(id, cat, sub int, name string) models.Product {
	return models.Product{ID: id, Name: name, CategoryID: cat, SubCategoryID: sub}
}

func testCatalog() []models.Product {
	return []models.Product{
		catalogProduct(1, 1, 1, "Notebook"),
		catalogProduct(2, 1, 1, "Pencil"),
		catalogProduct(3, 1, 2, "Eraser"),
		catalogProduct(4, 2, 1, "Ruler"),
	}
}

func newTestReferences(t *testing.T, backend Backend) (*ReferenceService, *cache.MemoryStore) {
	t.Helper()
	store := cache.NewMemoryStore()
	return NewReferenceService(backend, cache.NewReferenceCache(store, time.Minute)), store
}
