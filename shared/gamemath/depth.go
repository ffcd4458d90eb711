package gamemath

// Depth returns the draw order key for a sprite whose anchor is at worldY.
// offset is the distance from the anchor down to where the sprite touches
// the ground. Lower sprites get larger values and draw on top; every value
// sits around base so sprites stay above the tiles at depth 0.
func Depth(worldY, offset, scale, base float64) float64 {
	if scale == 0 {
		return base
	}
	return base - (worldY-offset)/scale
}
