package lhset

import "github.com/zeebo/errs/v2"

const (
	defaultBucketSize = 13
	maxGeneration     = 30
)

// Config controls the shape of a set. The zero Config is valid.
type Config struct {
	// BucketSize is the number of keys a bucket holds before an overflow
	// bucket is chained to it. Zero means 13.
	BucketSize int

	// Generation is the initial address exponent d.
	Generation uint

	// TableSize is the number of chains to create up front. It must be zero
	// or in [2^Generation, 2^(Generation+1)). When zero, chains are created
	// by the first insert.
	TableSize int
}

func (c Config) bucketSize() int {
	if c.BucketSize == 0 {
		return defaultBucketSize
	}
	return c.BucketSize
}

func (c Config) validate() error {
	if c.BucketSize < 0 {
		return errs.Errorf("invalid bucket size: %d", c.BucketSize)
	}
	if c.Generation > maxGeneration {
		return errs.Errorf("generation too large: %d > %d", c.Generation, maxGeneration)
	}
	lo, hi := 1<<c.Generation, 1<<(c.Generation+1)
	if c.TableSize < 0 || (c.TableSize != 0 && (c.TableSize < lo || c.TableSize >= hi)) {
		return errs.Errorf("table size %d out of range [%d, %d) for generation %d",
			c.TableSize, lo, hi, c.Generation)
	}
	return nil
}
