package dispatch

import (
	"encoding/json"
	"fmt"
)

// DefaultChartHeight is used when a payload does not carry its own height.
const DefaultChartHeight = 360

// ChartPayload is the JSON contract for plotly/chartjs fence bodies.
// Type and Data are mandatory; everything else falls back to defaults.
type ChartPayload struct {
	Type    string                 `json:"type"`
	Data    map[string]interface{} `json:"data"`
	Options map[string]interface{} `json:"options,omitempty"`
	Height  int                    `json:"height,omitempty"`
}

// DecodeError reports a chart fence body that could not be decoded. It is
// returned as a value for the rendering layer to turn into a visible
// placeholder; it never crosses the pipeline boundary as a panic.
type DecodeError struct {
	Reason string
	Err    error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("chart payload: %s: %v", e.Reason, e.Err)
	}
	return "chart payload: " + e.Reason
}

// Unwrap returns the underlying JSON error, if any.
func (e *DecodeError) Unwrap() error { return e.Err }

// DecodeChartPayload parses a fence body as a chart payload.
//
// On success the payload comes back with Height defaulted and base visual
// options merged in under any payload-supplied options. On failure the
// error is always a *DecodeError.
func DecodeChartPayload(body string) (*ChartPayload, error) {
	var p ChartPayload
	if err := json.Unmarshal([]byte(body), &p); err != nil {
		return nil, &DecodeError{Reason: "invalid JSON", Err: err}
	}
	if p.Type == "" {
		return nil, &DecodeError{Reason: `missing required field "type"`}
	}
	if p.Data == nil {
		return nil, &DecodeError{Reason: `missing required field "data"`}
	}
	if p.Height <= 0 {
		p.Height = DefaultChartHeight
	}
	p.Options = mergeOptions(p.Options)
	return &p, nil
}

// baseChartOptions are the visual defaults every chart starts from.
func baseChartOptions() map[string]interface{} {
	return map[string]interface{}{
		"responsive":          true,
		"maintainAspectRatio": false,
		"legend": map[string]interface{}{
			"position": "top",
		},
	}
}

// mergeOptions lays payload-supplied options over the defaults, top-level
// key by key, payload values winning.
func mergeOptions(supplied map[string]interface{}) map[string]interface{} {
	merged := baseChartOptions()
	for k, v := range supplied {
		merged[k] = v
	}
	return merged
}
