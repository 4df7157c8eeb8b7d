package schoolapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/Pradeep-photonx/LearnRite-Superadmin-sub000/internal/models"
)

// list fetches a {count, rows} endpoint and drops rows that fail boundary
// validation.
func list[T any](ctx context.Context, c *Client, path string) ([]T, error) {
	var resp models.ListResponse[T]
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return validRows(path, resp.Rows), nil
}

func validRows[T any](path string, rows []T) []T {
	out := make([]T, 0, len(rows))
	for i, r := range rows {
		if err := models.Validate(r); err != nil {
			log.Warn().Err(err).Str("endpoint", path).Int("row", i).Msg("Dropping invalid row from backend")
			continue
		}
		out = append(out, r)
	}
	return out
}

// Login authenticates a school admin.
func (c *Client) Login(ctx context.Context, email, password string) (*models.LoginResponse, error) {
	var resp models.LoginResponse
	req := models.LoginRequest{Email: email, Password: password}
	if err := c.doRequest(ctx, http.MethodPost, "/SchoolAdmin/login", req, &resp); err != nil {
		return nil, err
	}
	if err := models.Validate(resp); err != nil {
		return nil, fmt.Errorf("invalid login response: %w", err)
	}
	return &resp, nil
}

// ListSchools returns all schools.
func (c *Client) ListSchools(ctx context.Context) ([]models.School, error) {
	return list[models.School](ctx, c, "/School/list")
}

// ListClasses returns all classes.
func (c *Client) ListClasses(ctx context.Context) ([]models.Class, error) {
	return list[models.Class](ctx, c, "/Class/list")
}

// ListLanguages returns all class languages.
func (c *Client) ListLanguages(ctx context.Context) ([]models.ClassLanguage, error) {
	return list[models.ClassLanguage](ctx, c, "/ClassLanguage/list")
}

// ListCategories returns all categories.
func (c *Client) ListCategories(ctx context.Context) ([]models.Category, error) {
	return list[models.Category](ctx, c, "/Category/list")
}

// ListSubCategories returns the subcategories of a category.
func (c *Client) ListSubCategories(ctx context.Context, categoryID int) ([]models.SubCategory, error) {
	return list[models.SubCategory](ctx, c, fmt.Sprintf("/SubCategory/list/%d", categoryID))
}

// ListBrands returns all brands.
func (c *Client) ListBrands(ctx context.Context) ([]models.Brand, error) {
	return list[models.Brand](ctx, c, "/Brand/list")
}

// ListProducts returns the whole catalog.
func (c *Client) ListProducts(ctx context.Context) ([]models.Product, error) {
	return list[models.Product](ctx, c, "/Product/list")
}

// ListProductsBy returns the products of one (category, subcategory) pair.
func (c *Client) ListProductsBy(ctx context.Context, categoryID, subCategoryID int) ([]models.Product, error) {
	return list[models.Product](ctx, c, fmt.Sprintf("/Product/list/%d/%d", categoryID, subCategoryID))
}

// ListBundleRows returns flat (class bundle, product) rows.
func (c *Client) ListBundleRows(ctx context.Context) ([]models.BundleRow, error) {
	return list[models.BundleRow](ctx, c, "/ClassBundle/list")
}

// CreateBundle creates a class bundle.
func (c *Client) CreateBundle(ctx context.Context, req *models.CreateBundleRequest) (*Envelope, error) {
	if err := models.Validate(req); err != nil {
		return nil, fmt.Errorf("invalid bundle: %w", err)
	}
	var env Envelope
	if err := c.doRequest(ctx, http.MethodPost, "/ClassBundle/create", req, &env); err != nil {
		return nil, err
	}
	return &env, nil
}

// UpdateBundle replaces a class bundle's header fields and contents.
func (c *Client) UpdateBundle(ctx context.Context, req *models.UpdateBundleRequest) (*Envelope, error) {
	if err := models.Validate(req); err != nil {
		return nil, fmt.Errorf("invalid bundle: %w", err)
	}
	var env Envelope
	if err := c.doRequest(ctx, http.MethodPut, "/ClassBundle/update", req, &env); err != nil {
		return nil, err
	}
	return &env, nil
}

// DeleteBundle deletes a class bundle.
func (c *Client) DeleteBundle(ctx context.Context, bundleID int) (*Envelope, error) {
	var env Envelope
	if err := c.doRequest(ctx, http.MethodDelete, fmt.Sprintf("/ClassBundle/delete/%d", bundleID), nil, &env); err != nil {
		return nil, err
	}
	return &env, nil
}

// CreateAdmission creates a student admission.
func (c *Client) CreateAdmission(ctx context.Context, in *models.AdmissionInput) (*Envelope, error) {
	var env Envelope
	if err := c.doRequest(ctx, http.MethodPost, "/Admission/create", in, &env); err != nil {
		return nil, err
	}
	return &env, nil
}

// ListAdmissions returns admissions matching the filter.
func (c *Client) ListAdmissions(ctx context.Context, filter *models.AdmissionListRequest) (*models.ListResponse[models.Admission], error) {
	var resp models.ListResponse[models.Admission]
	if err := c.doRequest(ctx, http.MethodPost, "/Admission/list", filter, &resp); err != nil {
		return nil, err
	}
	if resp.Rows == nil {
		resp.Rows = []models.Admission{}
	}
	return &resp, nil
}

// ViewAdmission returns one admission.
func (c *Client) ViewAdmission(ctx context.Context, id int) (*models.Admission, error) {
	var raw json.RawMessage
	if err := c.doRequest(ctx, http.MethodGet, fmt.Sprintf("/Admission/view/%d", id), nil, &raw); err != nil {
		return nil, err
	}
	var a models.Admission
	if err := decodeResource(raw, &a); err != nil {
		return nil, fmt.Errorf("failed to decode admission: %w", err)
	}
	return &a, nil
}

// UpdateAdmission updates one admission.
func (c *Client) UpdateAdmission(ctx context.Context, id int, in *models.AdmissionInput) (*Envelope, error) {
	var env Envelope
	if err := c.doRequest(ctx, http.MethodPut, fmt.Sprintf("/Admission/update/%d", id), in, &env); err != nil {
		return nil, err
	}
	return &env, nil
}

// DeleteAdmission deletes one admission.
func (c *Client) DeleteAdmission(ctx context.Context, id int) (*Envelope, error) {
	var env Envelope
	if err := c.doRequest(ctx, http.MethodDelete, fmt.Sprintf("/Admission/delete/%d", id), nil, &env); err != nil {
		return nil, err
	}
	return &env, nil
}
