// Package game implements the flapping avatar simulation: the per-frame
// systems, the session state they advance and the tick loop that drives them.
package game

const (
	ScreenWidth  = 800
	ScreenHeight = 600

	AvatarStartX   = 100
	AvatarStartY   = 250
	AvatarGravity  = 0.125
	AvatarDiameter = 20
	FlapImpulse    = -4

	ObstacleWidth  = 50
	ObstacleHeight = 400
	ScrollSpeed    = 2

	// SpawnInterval is the number of frames between obstacle pairs.
	SpawnInterval = 150
	GapSize       = 150
	GapMinOffset  = 50
)
