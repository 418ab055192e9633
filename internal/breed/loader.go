package breed

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// Paths helper for the breed profile files.
type Paths struct {
	BaseDir string // base directory, e.g. /opt/app/configs
}

func (p Paths) DefaultPath() string {
	return filepath.Join(p.BaseDir, "breeds", "default.yaml")
}
func (p Paths) BreedPath(breed string) string {
	return filepath.Join(p.BaseDir, "breeds", breed+".yaml")
}
func (p Paths) BreedsDir() string {
	return filepath.Join(p.BaseDir, "breeds")
}

// Loader reads yaml profiles and merges default -> breed.
type Loader struct {
	paths Paths

	mu    sync.RWMutex
	cache map[string]RawProfile // key: breed name or "$default"
}

// NewLoader creates a profile loader rooted at baseDir.
func NewLoader(baseDir string) *Loader {
	return &Loader{
		paths: Paths{BaseDir: baseDir},
		cache: make(map[string]RawProfile),
	}
}

// LoadMerged loads default.yaml and the breed file and merges them, breed
// values over default values. The merged result is cached until Invalidate.
func (l *Loader) LoadMerged(breed string) (RawProfile, error) {
	l.mu.RLock()
	if cfg, ok := l.cache[breed]; ok {
		l.mu.RUnlock()
		return cfg, nil
	}
	l.mu.RUnlock()

	defCfg, err := readYAML(l.paths.DefaultPath())
	if err != nil {
		return RawProfile{}, fmt.Errorf("read default: %w", err)
	}
	breedCfg, err := readYAML(l.paths.BreedPath(breed))
	if err != nil {
		return RawProfile{}, fmt.Errorf("read breed %s: %w", breed, err)
	}

	merged := mergeRaw(defCfg, breedCfg)
	if merged.Breed == "" {
		merged.Breed = breed
	}

	l.mu.Lock()
	l.cache[breed] = merged
	l.cache["$default"] = defCfg
	l.mu.Unlock()

	return merged, nil
}

// Breeds lists the breed names with a profile file, default excluded.
func (l *Loader) Breeds() ([]string, error) {
	entries, err := os.ReadDir(l.paths.BreedsDir())
	if err != nil {
		return nil, fmt.Errorf("list breeds: %w", err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
			continue
		}
		name := strings.TrimSuffix(e.Name(), ".yaml")
		if name == "default" {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Invalidate clears the cache. Called when the watcher sees a file change.
func (l *Loader) Invalidate() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.cache = make(map[string]RawProfile)
}

// readYAML loads one file into RawProfile. Missing files return a zero
// profile with no error; default and breed files are both optional as long
// as the merge ends up complete.
func readYAML(path string) (RawProfile, error) {
	var cfg RawProfile
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return RawProfile{}, nil
		}
		return RawProfile{}, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return RawProfile{}, err
	}
	return cfg, nil
}

// mergeRaw deep-merges b over a: breed values win, tables merge per key.
func mergeRaw(a, b RawProfile) RawProfile {
	out := a

	if b.Breed != "" {
		out.Breed = b.Breed
	}
	if b.Notes != "" {
		out.Notes = b.Notes
	}

	// shade tables merge per color name; a breed's table for a color
	// replaces the default's table for that color wholesale
	if len(b.ShadeBias) > 0 {
		merged := make(map[string]map[string]float64, len(a.ShadeBias)+len(b.ShadeBias))
		for color, table := range a.ShadeBias {
			merged[color] = table
		}
		for color, table := range b.ShadeBias {
			merged[color] = cloneTable(table)
		}
		out.ShadeBias = merged
	}

	switch {
	case out.MarkingBias == nil && b.MarkingBias != nil:
		c := *b.MarkingBias
		out.MarkingBias = &c
	case out.MarkingBias != nil && b.MarkingBias != nil:
		mb := *out.MarkingBias
		if len(b.MarkingBias.Face) > 0 {
			mb.Face = cloneTable(b.MarkingBias.Face)
		}
		if b.MarkingBias.LegsGeneralProbability != nil {
			mb.LegsGeneralProbability = b.MarkingBias.LegsGeneralProbability
		}
		if b.MarkingBias.MaxLegsMarked != nil {
			mb.MaxLegsMarked = b.MarkingBias.MaxLegsMarked
		}
		if len(b.MarkingBias.LegSpecific) > 0 {
			mb.LegSpecific = cloneTable(b.MarkingBias.LegSpecific)
		}
		out.MarkingBias = &mb
	}

	if len(b.AdvancedBias) > 0 {
		merged := make(map[string]float64, len(a.AdvancedBias)+len(b.AdvancedBias))
		for k, v := range a.AdvancedBias {
			merged[k] = v
		}
		for k, v := range b.AdvancedBias {
			merged[k] = v
		}
		out.AdvancedBias = merged
	}

	if len(b.WhiteAlleles) > 0 {
		out.WhiteAlleles = append([]string(nil), b.WhiteAlleles...)
	}

	return out
}

func cloneTable(t map[string]float64) map[string]float64 {
	c := make(map[string]float64, len(t))
	for k, v := range t {
		c[k] = v
	}
	return c
}
