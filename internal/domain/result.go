package domain

// Response is the envelope every endpoint answers with.
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Code    string `json:"code,omitempty"`
	TraceID string `json:"trace_id,omitempty"`
}

func OK(data any) Response {
	return Response{Success: true, Data: data}
}

// SideEffectFailure records a best-effort step that failed after the primary write succeeded.
type SideEffectFailure struct {
	Step  string `json:"step"`
	Error string `json:"error"`
}

// Enrichment reports the outcome of the best-effort steps attached to a primary operation.
// A primary operation can succeed while its enrichment degrades.
type Enrichment struct {
	Failures []SideEffectFailure `json:"failures,omitempty"`
}

func (e *Enrichment) Fail(step string, err error) {
	if err == nil {
		return
	}
	e.Failures = append(e.Failures, SideEffectFailure{Step: step, Error: err.Error()})
}

func (e Enrichment) Degraded() bool {
	return len(e.Failures) > 0
}
