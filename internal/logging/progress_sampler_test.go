package logging

import "testing"

func TestProgressSamplerEmitsAtBoundaries(t *testing.T) {
	sampler := NewProgressSampler(500)
	var emitted []int
	for count := 1; count <= 1001; count++ {
		if sampler.ShouldLog(count) {
			emitted = append(emitted, count)
		}
	}
	if len(emitted) != 2 || emitted[0] != 500 || emitted[1] != 1000 {
		t.Fatalf("unexpected emissions: %v", emitted)
	}
}

func TestProgressSamplerDoesNotRepeatBucket(t *testing.T) {
	sampler := NewProgressSampler(10)
	if !sampler.ShouldLog(10) {
		t.Fatal("expected emission at 10")
	}
	if sampler.ShouldLog(10) || sampler.ShouldLog(15) {
		t.Fatal("expected no repeat within the same bucket")
	}
	if !sampler.ShouldLog(20) {
		t.Fatal("expected emission at the next boundary")
	}
}

func TestProgressSamplerDefaultsAndNil(t *testing.T) {
	if NewProgressSampler(0).bucketSize != 500 {
		t.Fatal("expected default bucket size of 500")
	}
	var sampler *ProgressSampler
	if sampler.ShouldLog(500) {
		t.Fatal("nil sampler should never emit")
	}
}
