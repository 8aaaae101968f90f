// Package domain defines the core types and interfaces for the query service
package domain

import "sitequery/internal/core/queryparse"

// ParseInput is the payload for POST /query/parse
type ParseInput struct {
	Query string `json:"query" validate:"required,min=1,max=500"`
}

// ValidateInput carries a previously produced descriptor for a consistency check
type ValidateInput struct {
	Query queryparse.ParsedQuery `json:"query" validate:"required"`
}

// DescribeInput carries a descriptor to render for user confirmation
type DescribeInput struct {
	Query queryparse.ParsedQuery `json:"query" validate:"required"`
}

// DescribeOutput is the rendered confirmation sentence
type DescribeOutput struct {
	Description string `json:"description"`
}
