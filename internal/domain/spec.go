package domain

// WeightedSpec is a spec file together with its estimated execution cost.
type WeightedSpec struct {
	Path   string // Full path to the spec file
	Weight int    // Estimated cost, always >= the configured base weight
}

// Bucket is a fixed group of spec files assigned to one worker for a
// single combined runner invocation. Buckets are built once per run and
// never mutated afterwards.
type Bucket struct {
	Specs  []string
	Weight int
}

// Empty reports whether the bucket holds no spec files.
func (b Bucket) Empty() bool {
	return len(b.Specs) == 0
}
