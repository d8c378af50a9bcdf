package renderer

import "image"

// SplitIntoTiles partitions a width×height image into disjoint rectangular
// tiles of at most tileSize×tileSize pixels. Workers render tiles
// independently; together the tiles cover every pixel exactly once.
func SplitIntoTiles(width, height, tileSize int) []image.Rectangle {
	if tileSize <= 0 {
		tileSize = 64
	}

	var tiles []image.Rectangle
	for y := 0; y < height; y += tileSize {
		for x := 0; x < width; x += tileSize {
			tiles = append(tiles, image.Rect(
				x, y,
				min(x+tileSize, width),
				min(y+tileSize, height),
			))
		}
	}
	return tiles
}
