package domain

import (
	"math/rand/v2"
	"sync"
)

// DefaultFailureProbability is the chance that a locally handled item is
// rejected with a synthetic failure.
const DefaultFailureProbability = 0.05

var defaultFailureReasons = []string{
	"Payment failed",
	"Address not serviceable",
	"Item lost in transit",
	"Item reserved for another customer",
	"Item not deliverable, due to personal grudge against customer",
}

// FailureFaker decides per item whether to simulate a failure and supplies a
// human-readable reason. Decisions are independent and drawn from a seeded
// source, so a fixed seed gives a reproducible failure sequence.
type FailureFaker struct {
	mu          sync.Mutex
	rand        *rand.Rand
	probability float64
	reasons     []string
}

func NewFailureFaker(seed uint64, probability float64, reasons []string) *FailureFaker {
	if len(reasons) == 0 {
		reasons = defaultFailureReasons
	}
	return &FailureFaker{
		rand:        rand.New(rand.NewPCG(seed, seed)),
		probability: probability,
		reasons:     reasons,
	}
}

// Generate returns a failure reason and true when the item should be
// rejected, or "" and false when it passes.
func (f *FailureFaker) Generate() (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.rand.Float64() >= f.probability {
		return "", false
	}
	return f.reasons[f.rand.IntN(len(f.reasons))], true
}
