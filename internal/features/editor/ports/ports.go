package ports

import (
	"banner-buddy/internal/features/editor/domain"
	theming "banner-buddy/internal/features/theming/domain"
)

// PropertyRequest carries the host's input variables and an optional field change.
type PropertyRequest struct {
	InputVariables []domain.InputVariable `json:"inputVariables"`
	Field          string                 `json:"field"`
	Value          any                    `json:"value"`
}

// PropertyState is the property editor after a request was applied.
type PropertyState struct {
	Values                map[string]any           `json:"values"`
	OverriddenTokenFields []string                 `json:"overriddenTokenFields"`
	ResolvedTokens        theming.ResolvedTokenSet `json:"resolvedTokens"`
	Preview               domain.Preview           `json:"preview"`
	Errors                []domain.ValidationError `json:"errors"`
	Events                []domain.ChangeEvent     `json:"events"`
}

// ExperienceRequest carries a grouped configuration and one field edit.
// With Blur set, NewValue is the raw text of the input that lost focus.
type ExperienceRequest struct {
	Value    theming.Config `json:"value"`
	Field    string         `json:"field"`
	NewValue any            `json:"newValue"`
	Blur     bool           `json:"blur"`
	Errors   []any          `json:"errors"`
}

// ExperienceState is the grouped-config editor after an edit.
type ExperienceState struct {
	Value         theming.Config        `json:"value"`
	Changed       bool                  `json:"changed"`
	Fields        map[string]any        `json:"fields"`
	IsStickyMode  bool                  `json:"isStickyMode"`
	IsTickerMode  bool                  `json:"isTickerMode"`
	HasErrors     bool                  `json:"hasErrors"`
	ErrorMessages []domain.ErrorMessage `json:"errorMessages"`
}

// EditorService defines the primary port for the configuration editors.
type EditorService interface {
	LoadProperty(req PropertyRequest) PropertyState
	ChangeProperty(req PropertyRequest) (PropertyState, error)
	ResetProperty(req PropertyRequest) PropertyState
	ValidateProperty(req PropertyRequest) []domain.ValidationError
	ChangeExperience(req ExperienceRequest) ExperienceState
}
