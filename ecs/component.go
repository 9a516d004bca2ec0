package ecs

// Position is the location of an entity in world units. For circular
// colliders it is the centre, for rectangles the top-left corner.
type Position struct {
	X, Y float64
}

// Velocity is the per-frame displacement applied by position integration.
type Velocity struct {
	DX, DY float64
}

// Gravity is a constant downward acceleration, in units per frame squared.
type Gravity struct {
	Value float64
}

// Collider is an axis-aligned extent. Avatars treat Width as the diameter of
// a circle.
type Collider struct {
	Width, Height float64
}

// Avatar tags the player controlled entity.
type Avatar struct{}

// Segment identifies which half of an obstacle pair an obstacle is.
type Segment uint8

const (
	SegmentTop Segment = iota
	SegmentBottom
)

func (s Segment) String() string {
	switch s {
	case SegmentTop:
		return "top"
	case SegmentBottom:
		return "bottom"
	default:
		return "unknown"
	}
}

// Obstacle tags a scrolling obstacle segment. Passed is set once the
// segment has been scored.
type Obstacle struct {
	Segment Segment
	Passed  bool
}
