package models

// BundleProductRow is the wire unit of a bundle's contents.
type BundleProductRow struct {
	ProductID   int  `json:"product_id" validate:"gt=0"`
	Quantity    int  `json:"quantity" validate:"gte=1"`
	IsMandatory bool `json:"is_mandatory"`
}

// BundleRow is one (class bundle, product) mapping as the bundle list
// endpoint returns it. Bundle header fields repeat on every row.
type BundleRow struct {
	ClassBundleID int      `json:"class_bundle_id"`
	Name          string   `json:"name"`
	SchoolID      int      `json:"school_id"`
	ClassID       int      `json:"class_id"`
	CLID          int      `json:"cl_id"`
	IsActive      bool     `json:"is_active"`
	ProductID     int      `json:"product_id"`
	Quantity      Number   `json:"quantity"`
	IsMandatory   bool     `json:"is_mandatory"`
	UnitPrice     Number   `json:"unit_price"`
	TotalPrice    Number   `json:"total_price"`
	Product       *Product `json:"Product,omitempty" validate:"-"`
	School        *School  `json:"School,omitempty" validate:"-"`
	Class         *Class   `json:"Class,omitempty" validate:"-"`
}

// Association extracts the bundle-product association a row carries.
func (r BundleRow) Association() BundleProductRow {
	return BundleProductRow{
		ProductID:   r.ProductID,
		Quantity:    r.Quantity.Int(),
		IsMandatory: r.IsMandatory,
	}
}

// AggregatedBundle is one logical bundle for list display, built from all rows
// sharing a class_bundle_id. The embedded BundleRow is the first such row.
type AggregatedBundle struct {
	BundleRow
	AllProducts      []BundleRow `json:"allProducts"`
	TotalBundlePrice float64     `json:"total_bundle_price"`
	TotalItemsCount  int         `json:"total_items_count"`
}

// CreateBundleRequest is the body of POST /ClassBundle/create.
type CreateBundleRequest struct {
	ClassID  int                `json:"class_id"`
	CLID     int                `json:"cl_id"`
	SchoolID int                `json:"school_id"`
	Name     string             `json:"name"`
	Products []BundleProductRow `json:"products" validate:"dive"`
}

// UpdateBundleRequest is the body of PUT /ClassBundle/update.
type UpdateBundleRequest struct {
	BundleID    int                `json:"bundle_id"`
	NewSchoolID *int               `json:"new_school_id,omitempty"`
	Name        *string            `json:"name,omitempty"`
	ClassID     int                `json:"class_id,omitempty"`
	CLID        int                `json:"cl_id,omitempty"`
	Products    []BundleProductRow `json:"products" validate:"dive"`
}
