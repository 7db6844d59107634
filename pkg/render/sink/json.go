package sink

import "github.com/matzehuels/clemen/pkg/snapshot"

// RenderJSON renders s as pretty-printed snapshot JSON.
func RenderJSON(s snapshot.Snapshot) ([]byte, error) {
	return snapshot.Marshal(s)
}
