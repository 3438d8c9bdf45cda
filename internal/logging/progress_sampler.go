package logging

// ProgressSampler suppresses per-file progress logs, emitting only when a
// running count crosses into a new bucket of the configured size.
type ProgressSampler struct {
	bucketSize int
	lastBucket int
}

// NewProgressSampler constructs a sampler that emits every bucketSize items
// (default 500).
func NewProgressSampler(bucketSize int) *ProgressSampler {
	if bucketSize <= 0 {
		bucketSize = 500
	}
	return &ProgressSampler{bucketSize: bucketSize}
}

// ShouldLog reports whether count has reached a bucket boundary not yet
// reported. Counts below the first boundary never emit.
func (s *ProgressSampler) ShouldLog(count int) bool {
	if s == nil {
		return false
	}
	bucket := count / s.bucketSize
	if bucket > s.lastBucket {
		s.lastBucket = bucket
		return true
	}
	return false
}
