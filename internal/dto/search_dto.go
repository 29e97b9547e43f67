package dto

import "pathfinder-be/pkg/search"

type SearchRequest struct {
	Query string `query:"q" validate:"max=200"`
	Limit int    `query:"limit" validate:"gte=0,lte=100"`
}

type SearchResponse struct {
	Query   string          `json:"query"`
	Count   int             `json:"count"` // returned results
	Total   int             `json:"total"` // matches before truncation
	Results []search.Result `json:"results"`
}
