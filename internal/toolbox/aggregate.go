package toolbox

// Aggregator accumulates per-name, per-version records into the toolbox
// manifest. Merging is last-write-wins on the (name, version) key: a
// later-scanned declaration silently replaces an earlier one with the same
// key. The aggregator is the only mutable state in a scan and is owned by a
// single control flow from creation to the final write.
type Aggregator struct {
	manifest *Manifest
}

// NewAggregator returns an empty aggregator seeded with the toolbox identity
// and the effective registry list from the top-level configuration.
func NewAggregator(cfg *Config) *Aggregator {
	return &Aggregator{
		manifest: &Manifest{
			Name:       cfg.Name,
			Registry:   cfg.Registry,
			Registries: cfg.EffectiveRegistries(),
			Pipelines:  make(map[string]map[string]PipelineRecord),
			Images:     make(map[string]map[string]ImageRecord),
		},
	}
}

// MergeImage inserts or overwrites the image record at (name, version).
func (a *Aggregator) MergeImage(name, version string, rec ImageRecord) {
	if a.manifest.Images[name] == nil {
		a.manifest.Images[name] = make(map[string]ImageRecord)
	}
	a.manifest.Images[name][version] = rec
}

// MergePipeline inserts or overwrites the pipeline record at (name, version).
func (a *Aggregator) MergePipeline(name, version string, rec PipelineRecord) {
	if a.manifest.Pipelines[name] == nil {
		a.manifest.Pipelines[name] = make(map[string]PipelineRecord)
	}
	a.manifest.Pipelines[name][version] = rec
}

// Manifest returns the aggregate built so far.
func (a *Aggregator) Manifest() *Manifest {
	return a.manifest
}
