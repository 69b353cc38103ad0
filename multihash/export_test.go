package multihash

// Exported helpers for testing internals from the
// multihash_test package.

// NewWithChunkSizeForTest exposes newAccumulator so tests can
// vary the read block size.
var NewWithChunkSizeForTest = newAccumulator

// StateAlgorithmsForTest returns the keys of the internal hash
// state map.
func (ac *Accumulator) StateAlgorithmsForTest() []Algorithm {
	ids := make([]Algorithm, 0, len(ac.states))
	for alg := range ac.states {
		ids = append(ids, alg)
	}

	return ids
}
