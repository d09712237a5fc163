package render

import (
	"encoding/json"

	"github.com/dkoosis/hostcolor/pkg/outercolor"
)

// JSON renders a report as structured JSON for scripts.
type JSON struct{}

// NewJSON creates a JSON renderer.
func NewJSON() *JSON {
	return &JSON{}
}

type jsonOutput struct {
	Foreground  *jsonColor `json:"foreground"`
	Background  *jsonColor `json:"background"`
	Effective   jsonPair   `json:"effective"`
	Dark        bool       `json:"dark"`
	Initialized bool       `json:"initialized"`
}

type jsonPair struct {
	Foreground jsonColor `json:"foreground"`
	Background jsonColor `json:"background"`
}

type jsonColor struct {
	Hex string `json:"hex"`
	R   uint8  `json:"r"`
	G   uint8  `json:"g"`
	B   uint8  `json:"b"`
}

func toJSONColor(c outercolor.RGB) jsonColor {
	return jsonColor{Hex: c.Hex(), R: c.R, G: c.G, B: c.B}
}

// Render formats r as indented JSON. Absent channels are null.
func (j *JSON) Render(r Report) string {
	out := jsonOutput{
		Effective: jsonPair{
			Foreground: toJSONColor(r.Foreground()),
			Background: toJSONColor(r.Background()),
		},
		Dark:        r.Dark(),
		Initialized: r.Initialized,
	}
	if r.Colors.HasForeground {
		c := toJSONColor(r.Colors.Foreground)
		out.Foreground = &c
	}
	if r.Colors.HasBackground {
		c := toJSONColor(r.Colors.Background)
		out.Background = &c
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		errJSON, _ := json.Marshal(map[string]string{"error": err.Error()})
		return string(errJSON)
	}
	return string(data) + "\n"
}
