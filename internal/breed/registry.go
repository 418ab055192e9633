package breed

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/xtding233/equus-backend/internal/genetics"
)

// ErrUnknownBreed reports a breed with no profile file and no usable default.
var ErrUnknownBreed = errors.New("unknown breed")

// Registry is the breed-configuration collaborator: it hands out validated,
// normalized engine profiles and can hot-reload when files change.
type Registry struct {
	loader  *Loader
	watcher *FileWatcher
}

// NewRegistry creates a registry over baseDir.
func NewRegistry(baseDir string) *Registry {
	return &Registry{loader: NewLoader(baseDir)}
}

// Get loads, validates and normalizes the profile for breed.
func (r *Registry) Get(breed string) (*genetics.BreedProfile, error) {
	if _, err := os.Stat(r.loader.paths.BreedPath(breed)); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrUnknownBreed, breed)
		}
		return nil, err
	}
	raw, err := r.loader.LoadMerged(breed)
	if err != nil {
		return nil, err
	}
	if err := ValidateRaw(raw); err != nil {
		return nil, fmt.Errorf("breed %s: %w", breed, err)
	}
	return Normalize(raw), nil
}

// Breeds lists configured breed names.
func (r *Registry) Breeds() ([]string, error) {
	return r.loader.Breeds()
}

// Watch starts hot reload: any profile file change drops the merge cache so
// the next Get rereads from disk.
func (r *Registry) Watch(interval time.Duration) {
	if r.watcher != nil {
		return
	}
	r.watcher = NewFileWatcher(r.loader.paths.BreedsDir(), interval, func(path string) {
		log.Printf("breed profile changed: %s; reloading", path)
		r.loader.Invalidate()
	})
	r.watcher.Start()
}

// Close stops the watcher if running.
func (r *Registry) Close() {
	if r.watcher != nil {
		r.watcher.Stop()
		r.watcher = nil
	}
}
