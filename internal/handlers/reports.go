package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/edudata/unidex/internal/models"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type countryCountResponse struct {
	Country string `json:"country"`
	Total   int64  `json:"total"`
}

type universityResponse struct {
	ID            int64    `json:"id"`
	Name          string   `json:"name"`
	Country       string   `json:"country"`
	AlphaTwoCode  string   `json:"alphaTwoCode,omitempty"`
	StateProvince *string  `json:"stateProvince,omitempty"`
	Domains       []string `json:"domains"`
	WebPages      []string `json:"webPages"`
}

// GetCountryTotals returns the number of universities per country
// (GET /reports/countries)
func (h *Handler) GetCountryTotals(c *gin.Context) {
	counts, err := h.reporter.CountryTotals(c.Request.Context())
	if err != nil {
		zap.S().Named("http").Errorw("failed to compute country totals", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute country totals"})
		return
	}

	resp := make([]countryCountResponse, 0, len(counts))
	for _, cc := range counts {
		resp = append(resp, countryCountResponse{Country: cc.Country, Total: cc.Total})
	}
	c.JSON(http.StatusOK, resp)
}

// GetUniversities lists universities filtered by country and/or name substring
// (GET /universities?country=&search=&limit=&offset=)
func (h *Handler) GetUniversities(c *gin.Context) {
	limit := uint64(defaultPageSize)
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		if parsed > 0 {
			limit = parsed
		}
		if limit > maxPageSize {
			limit = maxPageSize
		}
	}

	var offset uint64
	if raw := c.Query("offset"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid offset"})
			return
		}
		offset = parsed
	}

	ctx := c.Request.Context()
	var (
		universities []models.University
		err          error
	)
	if search := c.Query("search"); search != "" {
		universities, err = h.reporter.Search(ctx, search, limit, offset)
	} else if country := c.Query("country"); country != "" {
		universities, err = h.reporter.UniversitiesByCountry(ctx, country, limit, offset)
	} else {
		c.JSON(http.StatusBadRequest, gin.H{"error": "either country or search is required"})
		return
	}
	if err != nil {
		zap.S().Named("http").Errorw("failed to list universities", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list universities"})
		return
	}

	resp := make([]universityResponse, 0, len(universities))
	for _, u := range universities {
		resp = append(resp, universityResponse{
			ID:            u.ID,
			Name:          u.Name,
			Country:       u.CountryName,
			AlphaTwoCode:  u.AlphaTwoCode,
			StateProvince: u.StateProvince,
			Domains:       nonNil(u.Domains),
			WebPages:      nonNil(u.WebPages),
		})
	}
	c.JSON(http.StatusOK, resp)
}

// nonNil keeps empty list fields serializing as [] rather than null.
func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
