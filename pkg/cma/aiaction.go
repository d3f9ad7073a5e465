package cma

import "encoding/json"

// VariableType enumerates the variable kinds an AI Action may declare.
type VariableType string

const (
	VariableStandardInput     VariableType = "StandardInput"
	VariableText              VariableType = "Text"
	VariableFreeFormInput     VariableType = "FreeFormInput"
	VariableStringOptionsList VariableType = "StringOptionsList"
	VariableReference         VariableType = "Reference"
	VariableMediaReference    VariableType = "MediaReference"
	VariableLocale            VariableType = "Locale"
	VariableSmartContext      VariableType = "SmartContext"
	VariableResourceLink      VariableType = "ResourceLink"
)

// Reference reports whether values of this type are sent to the remote
// API as structured entity references rather than raw scalars.
func (t VariableType) Reference() bool {
	switch t {
	case VariableReference, VariableMediaReference, VariableResourceLink:
		return true
	}
	return false
}

// EntityType returns the wire entity type for reference-shaped variables,
// or "" for scalar types.
func (t VariableType) EntityType() string {
	switch t {
	case VariableReference:
		return "Entry"
	case VariableMediaReference:
		return "Asset"
	case VariableResourceLink:
		return "ResourceLink"
	}
	return ""
}

// VariableConfiguration holds type-specific settings for a variable.
type VariableConfiguration struct {
	// Values lists the allowed options for StringOptionsList variables.
	Values []string `json:"values,omitempty"`
	// AllowedEntities restricts the entity kinds a Reference may point at.
	AllowedEntities []string `json:"allowedEntities,omitempty"`
	Strict          bool     `json:"strict,omitempty"`
}

// Variable is one typed placeholder in an AI Action's prompt template.
// The ID is opaque and assigned by the remote system.
type Variable struct {
	ID            string                 `json:"id"`
	Type          VariableType           `json:"type"`
	Name          string                 `json:"name,omitempty"`
	Description   string                 `json:"description,omitempty"`
	Configuration *VariableConfiguration `json:"configuration,omitempty"`
}

// Instruction is an AI Action's prompt template plus its variable set.
// Conditions are remote-authored rules the adapter never evaluates;
// they are carried opaquely.
type Instruction struct {
	Template   string            `json:"template"`
	Variables  []Variable        `json:"variables"`
	Conditions []json.RawMessage `json:"conditions,omitempty"`
}

// ActionConfiguration selects the model an action runs on.
type ActionConfiguration struct {
	ModelType        string  `json:"modelType"`
	ModelTemperature float64 `json:"modelTemperature"`
}

// Sys is the system metadata envelope the remote API wraps resources in.
type Sys struct {
	ID        string `json:"id"`
	Type      string `json:"type,omitempty"`
	Version   int    `json:"version,omitempty"`
	Status    string `json:"status,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

// AIAction is a remotely defined, user-authored transformation.
// Immutable once fetched; the adapter caches and never mutates it.
type AIAction struct {
	Sys           Sys                 `json:"sys"`
	Name          string              `json:"name"`
	Description   string              `json:"description,omitempty"`
	Instruction   Instruction         `json:"instruction"`
	Configuration ActionConfiguration `json:"configuration"`
}

// ID returns the action's remote identifier.
func (a *AIAction) ID() string { return a.Sys.ID }
