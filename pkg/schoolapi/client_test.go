package schoolapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pradeep-photonx/LearnRite-Superadmin-sub000/internal/bundle"
	"github.com/Pradeep-photonx/LearnRite-Superadmin-sub000/internal/models"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Config{BaseURL: srv.URL + "/"})
}

func TestClient_ListProductsDropsInvalidRows(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/Product/list/3/4", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		_, _ = io.WriteString(w, `{"count":3,"rows":[
			{"id":5,"name":"Notebook","price":"45","category_id":3,"sub_category_id":4},
			{"id":0,"name":"broken"},
			{"id":6,"name":"Pencil","price":10,"Category":{"id":3},"SubCategory":{"id":4}}
		]}`)
	})

	products, err := client.ListProductsBy(WithToken(context.Background(), "tok"), 3, 4)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, 45.0, products[0].Price.Float64())
	cat, sub := products[1].Placement()
	assert.Equal(t, 3, cat)
	assert.Equal(t, 4, sub)
}

func TestClient_ListBundleRowsKeepsPartialNestedObjects(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ClassBundle/list", r.URL.Path)
		_, _ = io.WriteString(w, `{"count":2,"rows":[
			{"class_bundle_id":7,"name":"Grade 1","product_id":11,"quantity":1,"total_price":100,"Product":{"id":11,"name":"A"}},
			{"class_bundle_id":7,"name":"Grade 1","product_id":12,"quantity":1,"total_price":150,"Product":{"name":"B"}}
		]}`)
	})

	rows, err := client.ListBundleRows(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "B", rows[1].Product.Name)

	bundles := bundle.Aggregate(rows)
	require.Len(t, bundles, 1)
	assert.Equal(t, 2, bundles[0].TotalItemsCount)
	assert.Equal(t, 250.0, bundles[0].TotalBundlePrice)
}

func TestClient_ReferenceEndpoints(t *testing.T) {
	var mu sync.Mutex
	seen := map[string]bool{}
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		seen[r.URL.Path] = true
		mu.Unlock()
		_, _ = io.WriteString(w, `{"count":1,"rows":[{"id":1,"name":"x","category_id":2}]}`)
	})
	ctx := context.Background()

	_, err := client.ListSchools(ctx)
	require.NoError(t, err)
	_, err = client.ListClasses(ctx)
	require.NoError(t, err)
	_, err = client.ListLanguages(ctx)
	require.NoError(t, err)
	_, err = client.ListCategories(ctx)
	require.NoError(t, err)
	subs, err := client.ListSubCategories(ctx, 2)
	require.NoError(t, err)
	_, err = client.ListBrands(ctx)
	require.NoError(t, err)
	_, err = client.ListProducts(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, subs[0].CategoryID)
	mu.Lock()
	defer mu.Unlock()
	for _, p := range []string{"/School/list", "/Class/list", "/ClassLanguage/list", "/Category/list", "/SubCategory/list/2", "/Brand/list", "/Product/list"} {
		assert.True(t, seen[p], p)
	}
}

func TestClient_CreateBundle(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/ClassBundle/create", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body models.CreateBundleRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, 2, body.ClassID)
		assert.Equal(t, 3, body.CLID)
		assert.Len(t, body.Products, 1)

		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"message":"created","data":{"class_bundle_id":"17"}}`)
	})

	env, err := client.CreateBundle(context.Background(), &models.CreateBundleRequest{
		ClassID: 2, CLID: 3, SchoolID: 1, Name: "Grade 2",
		Products: []models.BundleProductRow{{ProductID: 9, Quantity: 1, IsMandatory: true}},
	})
	require.NoError(t, err)
	assert.Equal(t, "created", env.Message)
	assert.Equal(t, 17, env.ResourceID())
}

func TestClient_CreateBundleRejectsInvalidPayload(t *testing.T) {
	var called atomic.Bool
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		called.Store(true)
	})

	_, err := client.CreateBundle(context.Background(), &models.CreateBundleRequest{
		Products: []models.BundleProductRow{{ProductID: 9, Quantity: 0}},
	})
	assert.Error(t, err)
	assert.False(t, called.Load())
}

func TestClient_ErrorMessages(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   string
	}{
		{"message field", 400, `{"message":"Bundle name taken"}`, "Bundle name taken"},
		{"error string", 422, `{"error":"cl_id is required"}`, "cl_id is required"},
		{"nested error", 500, `{"error":{"message":"db down"}}`, "db down"},
		{"errors list", 400, `{"errors":[{"message":"bad quantity"}]}`, "bad quantity"},
		{"no message", 502, `<html>bad gateway</html>`, "backend returned status 502"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			})

			_, err := client.ListSchools(context.Background())
			require.Error(t, err)
			assert.Equal(t, tt.want, ErrorMessage(err))
			assert.Equal(t, tt.status, StatusCode(err))
		})
	}
}

func TestErrorMessage_Fallbacks(t *testing.T) {
	assert.Equal(t, "dial tcp: refused", ErrorMessage(errors.New("dial tcp: refused")))
	assert.Equal(t, DefaultMessage, ErrorMessage(nil))
	assert.Equal(t, DefaultMessage, ErrorMessage(errors.New("")))
	assert.Zero(t, StatusCode(errors.New("x")))
}

func TestClient_ViewAdmissionUnwrapsData(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/Admission/view/4", r.URL.Path)
		_, _ = io.WriteString(w, `{"data":{"id":4,"student_name":"Asha","school_id":1,"class_id":2}}`)
	})

	a, err := client.ViewAdmission(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, "Asha", a.StudentName)
}

func TestClient_Login(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body models.LoginRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		if body.Password != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = io.WriteString(w, `{"message":"Invalid credentials"}`)
			return
		}
		_, _ = io.WriteString(w, `{"token":"up-token","role":"superadmin","admin":{"id":1,"name":"Ravi"}}`)
	})

	resp, err := client.Login(context.Background(), "a@b.c", "secret")
	require.NoError(t, err)
	assert.Equal(t, "up-token", resp.Token)
	assert.Equal(t, "Ravi", resp.Admin.Name)

	_, err = client.Login(context.Background(), "a@b.c", "wrong")
	assert.Equal(t, "Invalid credentials", ErrorMessage(err))
}
