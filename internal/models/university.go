package models

import "strings"

// listSeparator joins multi-valued text columns (domains, web pages).
const listSeparator = ";"

type Country struct {
	ID   int64
	Name string
}

// University is a stored directory entry. Domains and WebPages are kept as
// slices in memory and joined with ";" in the database.
type University struct {
	ID            int64
	Name          string
	CountryID     int64
	CountryName   string
	AlphaTwoCode  string
	StateProvince *string
	Domains       []string
	WebPages      []string
}

// CountryCount is one row of the per-country aggregate report.
type CountryCount struct {
	Country string
	Total   int64
}

// JoinList flattens a multi-valued field for storage. An empty or nil list
// becomes the empty string, never NULL.
func JoinList(values []string) string {
	return strings.Join(values, listSeparator)
}

// SplitList is the inverse of JoinList.
func SplitList(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, listSeparator)
}
