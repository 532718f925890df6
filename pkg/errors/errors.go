// Package errors defines the typed errors shared between the store, the
// services and the CLI.
package errors

import (
	"errors"
	"fmt"
)

// StoreUnavailableError indicates the embedded database could not be opened
// or reached. It is the only error class that aborts an ingestion run.
type StoreUnavailableError struct {
	Path string
	Err  error
}

func NewStoreUnavailableError(path string, err error) *StoreUnavailableError {
	return &StoreUnavailableError{Path: path, Err: err}
}

func (e *StoreUnavailableError) Error() string {
	return fmt.Sprintf("store %q unavailable: %v", e.Path, e.Err)
}

func (e *StoreUnavailableError) Unwrap() error { return e.Err }

func IsStoreUnavailableError(err error) bool {
	var t *StoreUnavailableError
	return errors.As(err, &t)
}

// CatalogRequestError indicates the remote catalog could not produce a usable
// response for a country after all retry attempts were spent.
type CatalogRequestError struct {
	Country  string
	Attempts int
	Err      error
}

func NewCatalogRequestError(country string, attempts int, err error) *CatalogRequestError {
	return &CatalogRequestError{Country: country, Attempts: attempts, Err: err}
}

func (e *CatalogRequestError) Error() string {
	return fmt.Sprintf("catalog request for %q failed after %d attempts: %v", e.Country, e.Attempts, e.Err)
}

func (e *CatalogRequestError) Unwrap() error { return e.Err }

func IsCatalogRequestError(err error) bool {
	var t *CatalogRequestError
	return errors.As(err, &t)
}

// CountryNotFoundError is returned by lookups against a country name that
// was never ingested.
type CountryNotFoundError struct {
	Name string
}

func NewCountryNotFoundError(name string) *CountryNotFoundError {
	return &CountryNotFoundError{Name: name}
}

func (e *CountryNotFoundError) Error() string {
	return fmt.Sprintf("country %q not found", e.Name)
}

func IsCountryNotFoundError(err error) bool {
	var t *CountryNotFoundError
	return errors.As(err, &t)
}
