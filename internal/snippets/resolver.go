package snippets

import "errors"

// Resolver combines a custom snippet directory with the embedded snippets.
// The custom directory is tried first; the embedded set is used only when
// the custom directory has no set for the language.
type Resolver struct {
	custom   *FilesystemLoader // nil if no directory configured
	embedded Loader
}

// NewResolver creates a Resolver. An empty dir uses embedded snippets only.
// Returns an error if dir is set but invalid.
func NewResolver(dir string) (*Resolver, error) {
	r := &Resolver{embedded: NewEmbeddedLoader()}

	if dir != "" {
		fsLoader, err := NewFilesystemLoader(dir)
		if err != nil {
			return nil, err
		}
		r.custom = fsLoader
	}

	return r, nil
}

// LoadSet loads the set for language, custom directory first.
func (r *Resolver) LoadSet(language string) (*Set, error) {
	if r.custom == nil {
		return r.embedded.LoadSet(language)
	}

	set, err := r.custom.LoadSet(language)
	if err == nil {
		return set, nil
	}

	// Only fall back when the set is absent from the custom directory.
	if !errors.Is(err, ErrSetNotFound) {
		return nil, err
	}

	return r.embedded.LoadSet(language)
}

// Dir returns the resolved custom snippet directory, or "" when only the
// embedded snippets are used.
func (r *Resolver) Dir() string {
	if r.custom == nil {
		return ""
	}
	return r.custom.Dir()
}

// Compile-time interface check.
var _ Loader = (*Resolver)(nil)
