// Package http provides http transport for the query service
package http

import (
	stdhttp "net/http"

	phttp "sitequery/internal/platform/net/http"
	"sitequery/internal/services/query/domain"
)

// Register mounts query endpoints on the given router
func Register(r phttp.Router, s domain.ParserPort) {
	h := &handlers{svc: s}

	phttp.PostJSON[domain.ParseInput](r, "/parse", h.parse)
	phttp.PostJSON[domain.ValidateInput](r, "/validate", h.validate)
	phttp.PostJSON[domain.DescribeInput](r, "/describe", h.describe)
}

type handlers struct{ svc domain.ParserPort }

// @Summary Parse a free-text query into a structured descriptor
// @Tags Query
// @Accept json
// @Produce json
// @Param payload body domain.ParseInput true "Query text"
// @Success 200 {object} queryparse.ParsedQuery "ok"
// @Router /query/parse [post]
func (h *handlers) parse(r *stdhttp.Request, in domain.ParseInput) (any, error) {
	return h.svc.Parse(r.Context(), in.Query), nil
}

// @Summary Check a descriptor for internal consistency
// @Tags Query
// @Accept json
// @Produce json
// @Param payload body domain.ValidateInput true "Descriptor"
// @Success 200 {object} queryparse.ValidationResult "ok"
// @Router /query/validate [post]
func (h *handlers) validate(r *stdhttp.Request, in domain.ValidateInput) (any, error) {
	return h.svc.Validate(r.Context(), in.Query), nil
}

// @Summary Render a descriptor as a confirmation sentence
// @Tags Query
// @Accept json
// @Produce json
// @Param payload body domain.DescribeInput true "Descriptor"
// @Success 200 {object} domain.DescribeOutput "ok"
// @Router /query/describe [post]
func (h *handlers) describe(r *stdhttp.Request, in domain.DescribeInput) (any, error) {
	return domain.DescribeOutput{Description: h.svc.Describe(r.Context(), in.Query)}, nil
}
