package production

import (
	"errors"
	"testing"

	"github.com/comalice/fsmkit/internal/config"
)

func sampleDefinition(id string) *config.Definition {
	return &config.Definition{
		ID:         id,
		Start:      "a",
		Error:      "a",
		StopStates: []string{"a"},
		States:     []config.StateDef{{Name: "a"}, {Name: "b"}},
		Transitions: []config.TransitionDef{
			{From: "a", Event: "go", To: "b"},
		},
	}
}

func TestVersionRegistryRegisterAndFetch(t *testing.T) {
	r, err := NewVersionRegistry(t.TempDir())
	if err != nil {
		t.Fatalf("NewVersionRegistry() error = %v", err)
	}

	if err := r.Register("light", 1, sampleDefinition("light")); err != nil {
		t.Fatalf("Register(1) error = %v", err)
	}
	if err := r.Register("light", 2, sampleDefinition("light")); err != nil {
		t.Fatalf("Register(2) error = %v", err)
	}

	latest, err := r.Latest("light")
	if err != nil {
		t.Fatalf("Latest() error = %v", err)
	}
	if latest.Version != 2 {
		t.Fatalf("Latest().Version = %d, want 2", latest.Version)
	}

	v1, err := r.Version("light", 1)
	if err != nil {
		t.Fatalf("Version(1) error = %v", err)
	}
	if v1.Definition.ID != "light" {
		t.Fatalf("Version(1).Definition.ID = %q, want light", v1.Definition.ID)
	}

	versions, err := r.ListVersions("light")
	if err != nil {
		t.Fatalf("ListVersions() error = %v", err)
	}
	if len(versions) != 2 || versions[0] != 1 || versions[1] != 2 {
		t.Fatalf("ListVersions() = %v, want [1 2]", versions)
	}
}

func TestVersionRegistryRejectsDuplicateVersion(t *testing.T) {
	r, err := NewVersionRegistry(t.TempDir())
	if err != nil {
		t.Fatalf("NewVersionRegistry() error = %v", err)
	}
	if err := r.Register("light", 1, sampleDefinition("light")); err != nil {
		t.Fatalf("Register(1) error = %v", err)
	}
	if err := r.Register("light", 1, sampleDefinition("light")); !errors.Is(err, ErrExists) {
		t.Fatalf("Register(1) again error = %v, want ErrExists", err)
	}
}

func TestVersionRegistryUnknownReturnsNotFound(t *testing.T) {
	r, err := NewVersionRegistry(t.TempDir())
	if err != nil {
		t.Fatalf("NewVersionRegistry() error = %v", err)
	}
	if _, err := r.Latest("ghost"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Latest(ghost) error = %v, want ErrNotFound", err)
	}
	if _, err := r.Version("ghost", 1); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Version(ghost, 1) error = %v, want ErrNotFound", err)
	}
}
