package modules

import "testing"

func TestDefaultModulesHaveUniqueIDs(t *testing.T) {
	t.Parallel()

	seen := map[string]bool{}
	for _, m := range DefaultModules() {
		if m == nil {
			t.Fatalf("registry returned nil module")
		}
		if seen[m.ID()] {
			t.Fatalf("duplicate module id %q", m.ID())
		}
		seen[m.ID()] = true
	}
	for _, id := range []string{"landing", "assets"} {
		if !seen[id] {
			t.Fatalf("registry missing module %q", id)
		}
	}
}
