package models

import "strings"

// RawRecord is a single entry as returned by the remote catalog service.
// The catalog is loose about field presence; everything except Name and
// Country may be missing, and the state field appears under two different
// keys depending on the record.
type RawRecord struct {
	Name             string   `json:"name"`
	Country          string   `json:"country"`
	AlphaTwoCode     string   `json:"alpha_two_code"`
	StateProvince    *string  `json:"state-province"`
	StateProvinceAlt *string  `json:"state_province"`
	Domains          []string `json:"domains"`
	WebPages         []string `json:"web_pages"`
}

// Valid reports whether the record carries the minimum fields required for
// storage. Invalid records are dropped at the fetch stage.
func (r RawRecord) Valid() bool {
	return strings.TrimSpace(r.Name) != "" && strings.TrimSpace(r.Country) != ""
}

// State returns the canonical state/province value, resolving the two key
// variants used by the catalog. Absent or empty values map to nil.
func (r RawRecord) State() *string {
	for _, v := range []*string{r.StateProvince, r.StateProvinceAlt} {
		if v != nil && *v != "" {
			s := *v
			return &s
		}
	}
	return nil
}
