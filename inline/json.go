package inline

import (
	"encoding/json"

	"github.com/vimeolb/vimeolb/selector"
)

// Embed is the rendered HTML snippet and the parameters it was rendered with.
type Embed struct {
	Framework string `json:"framework" jsonschema:"enum=bootstrap4,enum=bootstrap5"`
	Ratio     string `json:"ratio"`
	HTML      string `json:"html"`
}

// Output is the JSON document written by inline mode.
type Output struct {
	// Generator is the strategy used, e.g. "2", "static", "random" or "weekday".
	Generator string `json:"generator"`
	// VideoID is the selected Vimeo video id.
	VideoID string `json:"video_id"`
	// URL is the player URL of the selected video.
	URL      string `json:"url"`
	Autoplay bool   `json:"autoplay"`
	// Embed is present when a framework was requested.
	Embed *Embed `json:"embed,omitempty"`
}

func asJson(g selector.Generator, r *result, autoplay bool) ([]byte, error) {
	out := &Output{
		Generator: g.String(),
		VideoID:   r.id,
		URL:       r.url,
		Autoplay:  autoplay,
	}

	if r.html != "" {
		out.Embed = &Embed{
			Framework: string(r.framework),
			Ratio:     r.ratio,
			HTML:      r.html,
		}
	}

	return json.Marshal(out)
}
