package production

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/comalice/fsmkit/internal/config"
)

// Sentinel errors returned by VersionRegistry, mirroring the teacher's
// core.Registry error set.
var (
	ErrNotFound = errors.New("production: definition not found")
	ErrExists   = errors.New("production: definition version already exists")
)

// DefinitionVersion pairs a static engine Definition with the monotonic
// version number it was registered under. It carries only structural data
// — states, transitions, alphabet — never a running engine's current
// state or pending queue, so registering a version never touches live
// runtime state.
type DefinitionVersion struct {
	Version    int               `yaml:"version"`
	Definition *config.Definition `yaml:"definition"`
}

// VersionRegistry is a YAML-backed store of an engine's static definition
// revisions, one file per machine ID, used to diff deployed automaton
// revisions across releases. It is deliberately not wired into any
// Engine's runtime path.
type VersionRegistry struct {
	dir string
}

// NewVersionRegistry returns a VersionRegistry rooted at dir, creating it
// if necessary.
func NewVersionRegistry(dir string) (*VersionRegistry, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("production: mkdir %s: %w", dir, err)
	}
	return &VersionRegistry{dir: dir}, nil
}

func (r *VersionRegistry) path(machineID string) string {
	return filepath.Join(r.dir, machineID+".yaml")
}

type registryFile struct {
	Versions []DefinitionVersion `yaml:"versions"`
}

func (r *VersionRegistry) load(machineID string) (registryFile, error) {
	var rf registryFile
	data, err := os.ReadFile(r.path(machineID))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return rf, nil
		}
		return rf, fmt.Errorf("production: read %s: %w", machineID, err)
	}
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return rf, fmt.Errorf("production: unmarshal %s: %w", machineID, err)
	}
	return rf, nil
}

func (r *VersionRegistry) save(machineID string, rf registryFile) error {
	data, err := yaml.Marshal(rf)
	if err != nil {
		return fmt.Errorf("production: marshal %s: %w", machineID, err)
	}
	if err := os.WriteFile(r.path(machineID), data, 0o644); err != nil {
		return fmt.Errorf("production: write %s: %w", machineID, err)
	}
	return nil
}

// Register adds a new version of def under machineID. Versions are
// immutable once registered: registering the same version number twice
// returns ErrExists.
func (r *VersionRegistry) Register(machineID string, version int, def *config.Definition) error {
	rf, err := r.load(machineID)
	if err != nil {
		return err
	}
	for _, v := range rf.Versions {
		if v.Version == version {
			return ErrExists
		}
	}
	rf.Versions = append(rf.Versions, DefinitionVersion{Version: version, Definition: def})
	sort.Slice(rf.Versions, func(i, j int) bool { return rf.Versions[i].Version < rf.Versions[j].Version })
	return r.save(machineID, rf)
}

// Latest returns the highest-numbered registered version for machineID.
func (r *VersionRegistry) Latest(machineID string) (DefinitionVersion, error) {
	rf, err := r.load(machineID)
	if err != nil {
		return DefinitionVersion{}, err
	}
	if len(rf.Versions) == 0 {
		return DefinitionVersion{}, ErrNotFound
	}
	return rf.Versions[len(rf.Versions)-1], nil
}

// Version returns a specific registered version for machineID.
func (r *VersionRegistry) Version(machineID string, version int) (DefinitionVersion, error) {
	rf, err := r.load(machineID)
	if err != nil {
		return DefinitionVersion{}, err
	}
	for _, v := range rf.Versions {
		if v.Version == version {
			return v, nil
		}
	}
	return DefinitionVersion{}, ErrNotFound
}

// ListVersions returns every registered version number for machineID, in
// ascending order.
func (r *VersionRegistry) ListVersions(machineID string) ([]int, error) {
	rf, err := r.load(machineID)
	if err != nil {
		return nil, err
	}
	out := make([]int, 0, len(rf.Versions))
	for _, v := range rf.Versions {
		out = append(out, v.Version)
	}
	return out, nil
}
