package cache

// Keyer generates cache keys for pipeline outputs.
type Keyer interface {
	// SceneKey is the key of a scene's computed snapshot.
	SceneKey(sceneHash string, opts SceneKeyOpts) string
	// ArtifactKey is the key of one rendered output of a scene.
	ArtifactKey(sceneHash string, opts ArtifactKeyOpts) string
}

// SceneKeyOpts holds the options that change a computed snapshot.
type SceneKeyOpts struct {
	Depth int `json:"depth"`
}

// ArtifactKeyOpts holds the options that change a rendered artifact.
type ArtifactKeyOpts struct {
	Format   string  `json:"format"`
	VizType  string  `json:"viz_type,omitempty"`
	Depth    int     `json:"depth"`
	Labels   bool    `json:"labels,omitempty"`
	Baseline bool    `json:"baseline,omitempty"`
	Scale    float64 `json:"scale,omitempty"`
}

// DefaultKeyer produces "kind:hash" keys.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// SceneKey hashes the scene hash together with opts.
func (DefaultKeyer) SceneKey(sceneHash string, opts SceneKeyOpts) string {
	return hashKey("snapshot", sceneHash, opts)
}

// ArtifactKey hashes the scene hash together with opts.
func (DefaultKeyer) ArtifactKey(sceneHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", sceneHash, opts)
}

var _ Keyer = DefaultKeyer{}
