package service

const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// NormalizeLimit maps a requested row limit onto [1, MaxLimit], using
// DefaultLimit when none was given.
func NormalizeLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultLimit
	case limit > MaxLimit:
		return MaxLimit
	default:
		return limit
	}
}
