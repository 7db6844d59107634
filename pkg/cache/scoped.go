package cache

// ScopedKeyer wraps a Keyer with a prefix so that several clients sharing
// one backend (for example preview servers on one Redis) keep separate
// namespaces.
//
//	keyer := cache.NewScopedKeyer(cache.NewDefaultKeyer(), "clemen:preview:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// Prefix returns the prefix prepended to every key.
func (k *ScopedKeyer) Prefix() string { return k.prefix }

// SceneKey generates a prefixed snapshot key.
func (k *ScopedKeyer) SceneKey(sceneHash string, opts SceneKeyOpts) string {
	return k.prefix + k.inner.SceneKey(sceneHash, opts)
}

// ArtifactKey generates a prefixed artifact key.
func (k *ScopedKeyer) ArtifactKey(sceneHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(sceneHash, opts)
}
