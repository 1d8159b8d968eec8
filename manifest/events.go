package manifest

import (
	"encoding/json"
	"fmt"
)

func jsonString(v interface{}) string {
	b, _ := json.Marshal(map[string]interface{}{
		fmt.Sprintf("%T", v): v,
	})
	return string(b)
}

// EventBuildSuccess is emitted when a manifest's data archive is complete.
type EventBuildSuccess struct {
	Manifest string `json:"manifest,omitempty"`
	Package  string `json:"package,omitempty"`
	Assets   int    `json:"assets"`
	Size     int64  `json:"size"`
}

func (e EventBuildSuccess) String() string { return jsonString(e) }
