package cli

import (
	"strings"
	"testing"

	"github.com/matzehuels/clemen/pkg/scene"
)

func TestScenesTable(t *testing.T) {
	got, err := scenesTable()
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range scene.Builtins() {
		if !strings.Contains(got, name) {
			t.Errorf("table is missing scene %q", name)
		}
	}
	for _, header := range []string{"Scene", "Layout", "Boxes", "Steps", "Description"} {
		if !strings.Contains(got, header) {
			t.Errorf("table is missing header %q", header)
		}
	}
}

func TestListCommand(t *testing.T) {
	out, err := executeRoot(t, "list")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "flex_overflow") || !strings.Contains(out, appName+" run") {
		t.Errorf("list output = %q", out)
	}

	if _, err := executeRoot(t, "list", "extra"); err == nil {
		t.Error("list should reject arguments")
	}
}
