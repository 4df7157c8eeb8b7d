package service

import (
	"context"
	"errors"

	"github.com/Pradeep-photonx/LearnRite-Superadmin-sub000/internal/models"
	"github.com/Pradeep-photonx/LearnRite-Superadmin-sub000/pkg/schoolapi"
)

// Backend is the school-supplies REST API as the services use it.
// *schoolapi.Client implements it.
type Backend interface {
	Login(ctx context.Context, email, password string) (*models.LoginResponse, error)

	ListSchools(ctx context.Context) ([]models.School, error)
	ListClasses(ctx context.Context) ([]models.Class, error)
	ListLanguages(ctx context.Context) ([]models.ClassLanguage, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
	ListSubCategories(ctx context.Context, categoryID int) ([]models.SubCategory, error)
	ListBrands(ctx context.Context) ([]models.Brand, error)
	ListProducts(ctx context.Context) ([]models.Product, error)
	ListProductsBy(ctx context.Context, categoryID, subCategoryID int) ([]models.Product, error)

	ListBundleRows(ctx context.Context) ([]models.BundleRow, error)
	CreateBundle(ctx context.Context, req *models.CreateBundleRequest) (*schoolapi.Envelope, error)
	UpdateBundle(ctx context.Context, req *models.UpdateBundleRequest) (*schoolapi.Envelope, error)
	DeleteBundle(ctx context.Context, bundleID int) (*schoolapi.Envelope, error)

	CreateAdmission(ctx context.Context, in *models.AdmissionInput) (*schoolapi.Envelope, error)
	ListAdmissions(ctx context.Context, filter *models.AdmissionListRequest) (*models.ListResponse[models.Admission], error)
	ViewAdmission(ctx context.Context, id int) (*models.Admission, error)
	UpdateAdmission(ctx context.Context, id int, in *models.AdmissionInput) (*schoolapi.Envelope, error)
	DeleteAdmission(ctx context.Context, id int) (*schoolapi.Envelope, error)
}

var _ Backend = (*schoolapi.Client)(nil)

// Service errors mapped to HTTP statuses by the handlers.
var (
	ErrSessionNotFound    = errors.New("editing session not found")
	ErrBundleNotFound     = errors.New("bundle not found")
	ErrStaleSelection     = errors.New("selection changed while loading, reload the section")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidImage       = errors.New("image must be a base64 data URL")
	ErrInvalidAdmission   = errors.New("student name, school and class are required")
)
