package utils

// API error codes carried in the response envelope.
const (
	CodeInvalidRequest     = "INVALID_REQUEST"
	CodeInvalidID          = "INVALID_ID"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeInvalidToken       = "INVALID_TOKEN"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeTooManyRequests    = "TOO_MANY_REQUESTS"
	CodeMissingField       = "MISSING_REQUIRED_FIELD"
	CodeEmptyBundle        = "EMPTY_BUNDLE"
	CodeDuplicateProduct   = "DUPLICATE_PRODUCT"
	CodeProductUnavailable = "PRODUCT_UNAVAILABLE"
	CodeSectionIncomplete  = "SECTION_INCOMPLETE"
	CodeSectionNotFound    = "SECTION_NOT_FOUND"
	CodeProductNotFound    = "PRODUCT_NOT_FOUND"
	CodeSessionNotFound    = "SESSION_NOT_FOUND"
	CodeBundleNotFound     = "BUNDLE_NOT_FOUND"
	CodeStaleSelection     = "STALE_SELECTION"
	CodeInvalidImage       = "INVALID_IMAGE"
	CodeUpstreamError      = "UPSTREAM_ERROR"
	CodeInternalError      = "INTERNAL_ERROR"
)
