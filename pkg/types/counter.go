package types

// StatsCounter32 is a 32-bit statistics counter that wraps at 2^32.
type StatsCounter32 uint32

// StatsCounter64 is a 64-bit statistics counter that wraps at 2^64.
type StatsCounter64 uint64

// Delta returns the increase since prev, accounting for a single wrap.
func (c StatsCounter32) Delta(prev StatsCounter32) uint32 {
	return uint32(c - prev)
}

// Delta returns the increase since prev, accounting for a single wrap.
func (c StatsCounter64) Delta(prev StatsCounter64) uint64 {
	return uint64(c - prev)
}
