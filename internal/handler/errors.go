package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Pradeep-photonx/LearnRite-Superadmin-sub000/internal/bundle"
	"github.com/Pradeep-photonx/LearnRite-Superadmin-sub000/internal/service"
	"github.com/Pradeep-photonx/LearnRite-Superadmin-sub000/internal/utils"
	"github.com/Pradeep-photonx/LearnRite-Superadmin-sub000/pkg/schoolapi"
)

type errorMapping struct {
	err    error
	status int
	code   string
}

var errorMappings = []errorMapping{
	{bundle.ErrMissingField, http.StatusBadRequest, utils.CodeMissingField},
	{bundle.ErrEmptyBundle, http.StatusBadRequest, utils.CodeEmptyBundle},
	{bundle.ErrDuplicateProduct, http.StatusConflict, utils.CodeDuplicateProduct},
	{bundle.ErrProductUnavailable, http.StatusUnprocessableEntity, utils.CodeProductUnavailable},
	{bundle.ErrSectionIncomplete, http.StatusUnprocessableEntity, utils.CodeSectionIncomplete},
	{bundle.ErrSectionNotFound, http.StatusNotFound, utils.CodeSectionNotFound},
	{bundle.ErrProductNotFound, http.StatusNotFound, utils.CodeProductNotFound},
	{service.ErrSessionNotFound, http.StatusNotFound, utils.CodeSessionNotFound},
	{service.ErrBundleNotFound, http.StatusNotFound, utils.CodeBundleNotFound},
	{service.ErrStaleSelection, http.StatusConflict, utils.CodeStaleSelection},
	{service.ErrInvalidImage, http.StatusBadRequest, utils.CodeInvalidImage},
	{service.ErrInvalidAdmission, http.StatusBadRequest, utils.CodeMissingField},
	{service.ErrInvalidCredentials, http.StatusUnauthorized, utils.CodeInvalidCredentials},
}

// respondError writes err in the standard envelope. Backend errors keep the
// backend's message and, for 4xx answers, its status.
func respondError(c *gin.Context, err error) {
	for _, m := range errorMappings {
		if errors.Is(err, m.err) {
			utils.Error(c, m.status, m.code, err.Error())
			return
		}
	}

	var apiErr *schoolapi.APIError
	if errors.As(err, &apiErr) {
		status := http.StatusBadGateway
		if apiErr.StatusCode >= 400 && apiErr.StatusCode < 500 {
			status = apiErr.StatusCode
		}
		utils.Error(c, status, utils.CodeUpstreamError, schoolapi.ErrorMessage(err))
		return
	}

	log.Error().Err(err).Str("path", c.FullPath()).Msg("Request failed")
	utils.Error(c, http.StatusBadGateway, utils.CodeUpstreamError, schoolapi.ErrorMessage(err))
}

// pathID parses a positive integer path parameter, answering 400 when it is not one.
func pathID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		utils.Error(c, http.StatusBadRequest, utils.CodeInvalidID, "Invalid "+name)
		return 0, false
	}
	return id, true
}

// queryInt parses an optional integer query parameter, returning def when absent or malformed.
func queryInt(c *gin.Context, name string, def int) int {
	if v := c.Query(name); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}
