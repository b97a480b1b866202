package domain

import (
	"errors"
	"strings"
)

// Status is the publication status of a banner record.
type Status string

const (
	StatusActive   Status = "Active"
	StatusInactive Status = "Inactive"
)

// Variant is the severity/type of the banner.
type Variant string

const (
	VariantInfo    Variant = "Info"
	VariantError   Variant = "Error"
	VariantWarning Variant = "Warning"
	VariantSuccess Variant = "Success"
)

var (
	// ErrSessionNotFound is returned when no display session exists under the given id.
	ErrSessionNotFound = errors.New("session not found")
	// ErrControllerClosed is returned when a torn-down display session is used.
	ErrControllerClosed = errors.New("banner controller closed")
)

// Banner represents a notification banner record from the backing store.
type Banner struct {
	ID          string  `json:"id" yaml:"id"`
	Name        string  `json:"name" yaml:"name"`
	StartDate   string  `json:"startDate,omitempty" yaml:"startDate"`
	EndDate     string  `json:"endDate,omitempty" yaml:"endDate"`
	Status      Status  `json:"status" yaml:"status"`
	Variant     Variant `json:"variant" yaml:"variant"`
	Title       string  `json:"title" yaml:"title"`
	Description string  `json:"description,omitempty" yaml:"description"`
	Message     string  `json:"message,omitempty" yaml:"message"`
	LinkURL     string  `json:"linkUrl,omitempty" yaml:"linkUrl"`
}

// IsActive reports whether the banner is published.
func (b Banner) IsActive() bool {
	return b.Status == StatusActive
}

// VariantOrInfo returns the banner variant, defaulting to Info when unset.
func (b Banner) VariantOrInfo() Variant {
	if b.Variant == "" {
		return VariantInfo
	}
	return b.Variant
}

// ProviderError is one entry of the structured error list reported by a banner provider.
type ProviderError struct {
	Message string `json:"message"`
}

// FetchError reports a failed banner fetch. The prior banner state is kept when it occurs.
type FetchError struct {
	Errors []ProviderError
	Err    error
}

// NewFetchError builds a FetchError from a cause and optional provider messages.
// Without messages the cause's text becomes the single entry.
func NewFetchError(cause error, messages ...string) *FetchError {
	fe := &FetchError{Err: cause}
	for _, m := range messages {
		fe.Errors = append(fe.Errors, ProviderError{Message: m})
	}
	if len(fe.Errors) == 0 && cause != nil {
		fe.Errors = []ProviderError{{Message: cause.Error()}}
	}
	return fe
}

func (e *FetchError) Error() string {
	msgs := make([]string, 0, len(e.Errors))
	for _, pe := range e.Errors {
		msgs = append(msgs, pe.Message)
	}
	return "banner fetch failed: " + strings.Join(msgs, "; ")
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// FilterActive returns the active banners in their received order.
func FilterActive(banners []Banner) []Banner {
	active := make([]Banner, 0, len(banners))
	for _, b := range banners {
		if b.IsActive() {
			active = append(active, b)
		}
	}
	return active
}
