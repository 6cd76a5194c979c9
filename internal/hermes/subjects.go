package hermes

const (
	SubjectScoreComputed  = "swarm.atlas.score.computed"
	SubjectDatasetLoaded  = "swarm.atlas.dataset.loaded"
	SubjectBoundaryFailed = "swarm.atlas.boundary.failed"

	StreamName   = "ATLAS_EVENTS"
	StreamMaxAge = "720h" // 30 days
)
