package viewer

import (
	"image"
	"image/color"
	"math"
)

// scanPoint is one intersection of a scanline with a triangle edge
type scanPoint struct {
	x, z float64
}

// fillTriangleDepth fills a projected triangle into img using a scanline
// sweep with per-pixel depth testing against zbuffer. Coordinates are
// screen-space, z is camera-space depth.
func fillTriangleDepth(img *image.RGBA, zbuffer []float64, x1, y1, z1, x2, y2, z2, x3, y3, z3 float64, col color.RGBA) {
	bounds := img.Bounds()
	width := bounds.Max.X

	minY := int(math.Max(0, math.Min(y1, math.Min(y2, y3))))
	maxY := int(math.Min(float64(bounds.Max.Y-1), math.Max(y1, math.Max(y2, y3))))

	edges := [3][6]float64{
		{x1, y1, z1, x2, y2, z2},
		{x2, y2, z2, x3, y3, z3},
		{x1, y1, z1, x3, y3, z3},
	}

	for y := minY; y <= maxY; y++ {
		fy := float64(y)

		var hits []scanPoint
		for _, e := range edges {
			ex1, ey1, ez1, ex2, ey2, ez2 := e[0], e[1], e[2], e[3], e[4], e[5]
			if ey1 > ey2 {
				ex1, ey1, ez1, ex2, ey2, ez2 = ex2, ey2, ez2, ex1, ey1, ez1
			}
			if ey1 == ey2 || fy < ey1 || fy > ey2 {
				continue
			}
			t := (fy - ey1) / (ey2 - ey1)
			hits = append(hits, scanPoint{
				x: ex1 + t*(ex2-ex1),
				z: ez1 + t*(ez2-ez1),
			})
		}

		if len(hits) < 2 {
			continue
		}

		start, end := hits[0], hits[1]
		if start.x > end.x {
			start, end = end, start
		}

		xStart := int(math.Max(0, start.x))
		xEnd := int(math.Min(float64(bounds.Max.X-1), end.x))

		for x := xStart; x <= xEnd; x++ {
			t := 0.0
			if end.x != start.x {
				t = (float64(x) - start.x) / (end.x - start.x)
			}
			z := start.z + t*(end.z-start.z)

			idx := y*width + x
			if idx >= 0 && idx < len(zbuffer) && z < zbuffer[idx] {
				zbuffer[idx] = z
				img.SetRGBA(x, y, col)
			}
		}
	}
}
