package motion

import "math"

// SnapToPage settles a released position onto the nearest page boundary,
// biased one page further when the release velocity indicates a deliberate
// fling. This is the behaviour of a paginated carousel.
type SnapToPage struct {
	target   float64
	pageSize float64
}

// NewSnapToPage returns a snapping behaviour with a page size of 1.
func NewSnapToPage() *SnapToPage {
	return &SnapToPage{pageSize: 1}
}

// SetPageSize sets the distance between page boundaries. Values <= 0 are
// ignored.
func (s *SnapToPage) SetPageSize(size float64) {
	if size > 0 {
		s.pageSize = size
	}
}

// PageSize returns the distance between page boundaries.
func (s *SnapToPage) PageSize() float64 {
	return s.pageSize
}

// Target returns the boundary the behaviour is currently settling toward.
func (s *SnapToPage) Target() float64 {
	return s.target
}

// ReleasedWithVelocity picks the boundary to settle on: the nearest one,
// or the adjacent one in the scroll direction when the fling is faster
// than one unit per second.
func (s *SnapToPage) ReleasedWithVelocity(position, velocity float64) {
	page := math.Floor(position/s.pageSize + 0.5)
	if velocity > 1.0 {
		page--
	} else if velocity < -1.0 {
		page++
	}
	s.target = page * s.pageSize
}

// NextPosition approaches the target at a speed proportional to the
// remaining distance, landing exactly on it once within tolerance.
func (s *SnapToPage) NextPosition(position, elapsed float64) float64 {
	if s.IsStopped(position) {
		return s.target
	}
	const approachRate = 10.0
	velocity := (s.target - position) * approachRate
	next := position + velocity*elapsed
	if s.IsStopped(next) {
		return s.target
	}
	return next
}

// IsStopped reports whether the position has effectively reached the
// target boundary.
func (s *SnapToPage) IsStopped(position float64) bool {
	return math.Abs(s.target-position) < 0.001*s.pageSize
}
