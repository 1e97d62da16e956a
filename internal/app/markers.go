package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/UcdVrLab/Visualisation-of-the-aqueducts-of-the-Greater-Iraklio-Area/pkg/geometry"
	"github.com/UcdVrLab/Visualisation-of-the-aqueducts-of-the-Greater-Iraklio-Area/pkg/measure"
)

var (
	measureColor   = rl.NewColor(80, 220, 100, 255)
	referenceColor = rl.NewColor(255, 180, 60, 255)
	hoverColor     = rl.NewColor(120, 200, 255, 200)
)

func roleColor(role measure.Role) rl.Color {
	if role == measure.RoleRefA || role == measure.RoleRefB {
		return referenceColor
	}
	return measureColor
}

func (app *App) toScreen(v geometry.Vector3) rl.Vector2 {
	pos := rl.Vector3{X: float32(v.X), Y: float32(v.Y), Z: float32(v.Z)}
	return rl.GetWorldToScreen(pos, app.Camera.camera)
}

// drawMarkers renders the measurement points and segments in screen space,
// after EndMode3D, so their size stays constant regardless of zoom.
func (app *App) drawMarkers() {
	for _, segment := range app.Measure.shapes.Segments {
		if !segment.Drawable() {
			continue
		}
		a := app.toScreen(segment.A.Position())
		b := app.toScreen(segment.B.Position())

		color := measureColor
		if point, ok := segment.A.(*measure.Point); ok {
			color = roleColor(point.Role())
		}
		rl.DrawLineEx(a, b, 2, color)
	}

	for _, point := range app.Measure.shapes.Points {
		if !point.Visible() {
			continue
		}
		screen := app.toScreen(point.Position())
		color := roleColor(point.Role())
		rl.DrawCircleV(screen, 6, color)
		rl.DrawCircleLines(int32(screen.X), int32(screen.Y), 6, rl.White)
	}

	// Hover highlight while the tool is armed
	if app.Measure.tool.Enabled() && app.Interaction.hasHoveredVertex {
		screen := app.toScreen(app.Interaction.hoveredVertex)
		rl.DrawCircleLines(int32(screen.X), int32(screen.Y), 8, hoverColor)
	}
}
