package cma

// OutputFormat selects the shape of an invocation's result content.
type OutputFormat string

const (
	FormatMarkdown  OutputFormat = "Markdown"
	FormatRichText  OutputFormat = "RichText"
	FormatPlainText OutputFormat = "PlainText"
)

// OutputFormats lists the accepted formats, in schema enum order.
func OutputFormats() []string {
	return []string{string(FormatMarkdown), string(FormatRichText), string(FormatPlainText)}
}

// InvocationStatus is the remote state of one AI Action invocation.
type InvocationStatus string

const (
	StatusScheduled  InvocationStatus = "SCHEDULED"
	StatusInProgress InvocationStatus = "IN_PROGRESS"
	StatusFailed     InvocationStatus = "FAILED"
	StatusCompleted  InvocationStatus = "COMPLETED"
	StatusCancelled  InvocationStatus = "CANCELLED"
)

// Terminal reports whether no further state transition can occur.
func (s InvocationStatus) Terminal() bool {
	switch s {
	case StatusFailed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// ReferenceValue is the wire shape for reference-typed variable values.
type ReferenceValue struct {
	EntityType string `json:"entityType"`
	EntityID   string `json:"entityId"`
	EntityPath string `json:"entityPath,omitempty"`
}

// InvocationVariable pairs a variable ID with its resolved value.
// Value is either a raw scalar or a ReferenceValue.
type InvocationVariable struct {
	ID    string `json:"id"`
	Value any    `json:"value"`
}

// InvocationRequest is the payload sent to the remote invoke endpoint.
type InvocationRequest struct {
	OutputFormat OutputFormat         `json:"outputFormat"`
	Variables    []InvocationVariable `json:"variables"`
}

// InvocationSys is the system envelope of an invocation resource.
type InvocationSys struct {
	ID     string           `json:"id"`
	Type   string           `json:"type,omitempty"`
	Status InvocationStatus `json:"status"`
}

// InvocationResult is present once an invocation reaches COMPLETED.
type InvocationResult struct {
	Type     string         `json:"type"`
	Content  any            `json:"content"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// Invocation is one run of an AI Action, possibly still in flight.
type Invocation struct {
	Sys    InvocationSys     `json:"sys"`
	Result *InvocationResult `json:"result,omitempty"`
}
