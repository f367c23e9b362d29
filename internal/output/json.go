package output

import (
	"encoding/json"

	"github.com/symtalha14/notify"
	"github.com/symtalha14/notify/internal/stats"
)

// JSONBatchResult represents a batch result in JSON format.
type JSONBatchResult struct {
	Total       int            `json:"total"`
	Rendered    int            `json:"rendered"`
	Failed      int            `json:"failed"`
	SuccessRate float64        `json:"success_rate"`
	ByRole      map[string]int `json:"by_role"`
	TotalTime   int64          `json:"total_time_us"`
	Lines       []JSONLine     `json:"lines"`
}

// JSONLine represents a single rendered line in JSON format.
type JSONLine struct {
	Index    int    `json:"index"`
	Role     string `json:"role"`
	Message  string `json:"message"`
	Rendered string `json:"rendered,omitempty"`
	Success  bool   `json:"success"`
	Error    string `json:"error,omitempty"`
}

// JSONCodes represents resolved color codes in JSON format.
type JSONCodes struct {
	Spec  string `json:"spec"`
	Color string `json:"color"`
	Reset string `json:"reset"`
}

// FormatBatchResultJSON converts a batch summary to JSON format.
func FormatBatchResultJSON(summary *stats.BatchSummary) (string, error) {
	jsonResult := JSONBatchResult{
		Total:       summary.Total,
		Rendered:    summary.Rendered,
		Failed:      summary.Failed,
		SuccessRate: summary.SuccessRate(),
		ByRole:      make(map[string]int, len(summary.ByRole)),
		TotalTime:   summary.TotalTime.Microseconds(),
		Lines:       make([]JSONLine, len(summary.Results)),
	}

	for role, n := range summary.ByRole {
		jsonResult.ByRole[string(role)] = n
	}

	for i, result := range summary.Results {
		jsonResult.Lines[i] = lineJSON(result)
	}

	return marshal(jsonResult)
}

// FormatLineJSON converts a single rendered line to JSON format.
func FormatLineJSON(result stats.LineResult) (string, error) {
	return marshal(lineJSON(result))
}

// FormatCodesJSON converts resolved codes to JSON format.
func FormatCodesJSON(spec string, codes notify.Codes) (string, error) {
	return marshal(JSONCodes{Spec: spec, Color: codes.Color, Reset: codes.Reset})
}

func lineJSON(result stats.LineResult) JSONLine {
	line := JSONLine{
		Index:    result.Index,
		Role:     string(result.Role),
		Message:  result.Message,
		Rendered: result.Rendered,
		Success:  result.Success(),
	}
	if result.Err != nil {
		line.Error = result.Err.Error()
	}
	return line
}

func marshal(v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
