package service

import (
	"banner-buddy/internal/core/logger"
	"banner-buddy/internal/features/editor/domain"
	"banner-buddy/internal/features/editor/ports"

	"github.com/spf13/cast"
	"go.uber.org/zap"
)

// EditorServiceImpl implements ports.EditorService.
// Editors are rebuilt from the request on every call; the host owns the state.
type EditorServiceImpl struct{}

// NewEditorService creates a new EditorServiceImpl.
func NewEditorService() *EditorServiceImpl {
	return &EditorServiceImpl{}
}

// LoadProperty loads the property editor from the input variables.
func (s *EditorServiceImpl) LoadProperty(req ports.PropertyRequest) ports.PropertyState {
	return propertyState(domain.NewPropertyEditor(req.InputVariables), nil)
}

// ChangeProperty applies one field change.
func (s *EditorServiceImpl) ChangeProperty(req ports.PropertyRequest) (ports.PropertyState, error) {
	e := domain.NewPropertyEditor(req.InputVariables)
	event, err := e.Change(req.Field, req.Value)
	if err != nil {
		return ports.PropertyState{}, err
	}

	logger.Get().Debug("Property editor value changed",
		zap.String("field", event.Name),
		zap.String("data_type", event.NewValueDataType),
	)
	return propertyState(e, []domain.ChangeEvent{event}), nil
}

// ResetProperty reverts every token field to the active preset.
func (s *EditorServiceImpl) ResetProperty(req ports.PropertyRequest) ports.PropertyState {
	e := domain.NewPropertyEditor(req.InputVariables)
	events := e.ResetPresetOverrides()
	return propertyState(e, events)
}

// ValidateProperty validates the input variables.
func (s *EditorServiceImpl) ValidateProperty(req ports.PropertyRequest) []domain.ValidationError {
	return domain.NewPropertyEditor(req.InputVariables).Validate()
}

// ChangeExperience applies one edit to a grouped configuration.
func (s *EditorServiceImpl) ChangeExperience(req ports.ExperienceRequest) ports.ExperienceState {
	e := domain.NewGroupedConfigEditor(req.Value)

	changed := false
	switch {
	case req.Blur:
		_, changed = e.HandleFieldBlur(req.Field, cast.ToString(req.NewValue))
	case req.Field != "":
		e.UpdateField(req.Field, req.NewValue)
		changed = true
	}

	msgs := domain.ErrorMessages(req.Errors)
	return ports.ExperienceState{
		Value:         e.Value(),
		Changed:       changed,
		Fields:        e.Fields(),
		IsStickyMode:  e.IsStickyMode(),
		IsTickerMode:  e.IsTickerMode(),
		HasErrors:     len(msgs) > 0,
		ErrorMessages: msgs,
	}
}

func propertyState(e *domain.PropertyEditor, events []domain.ChangeEvent) ports.PropertyState {
	if events == nil {
		events = []domain.ChangeEvent{}
	}
	return ports.PropertyState{
		Values:                e.Values(),
		OverriddenTokenFields: e.OverriddenFields(),
		ResolvedTokens:        e.ResolvedTokens(),
		Preview:               e.Preview(),
		Errors:                e.Validate(),
		Events:                events,
	}
}
