package app

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/UcdVrLab/Visualisation-of-the-aqueducts-of-the-Greater-Iraklio-Area/pkg/analysis"
	"github.com/UcdVrLab/Visualisation-of-the-aqueducts-of-the-Greater-Iraklio-Area/pkg/measure"
	"github.com/UcdVrLab/Visualisation-of-the-aqueducts-of-the-Greater-Iraklio-Area/version"
)

var (
	panelBackground = rl.NewColor(0, 0, 0, 180)
	okColor         = rl.NewColor(80, 220, 100, 255)
	errorColor      = rl.NewColor(255, 100, 100, 255)
)

// drawUI draws the info panel, the measurement overlay and the status line
func (app *App) drawUI() {
	y := int32(10)
	lineHeight := int32(20)

	rl.DrawText(fmt.Sprintf("Scan: %s", app.Model.model.Name), 10, y, 16, rl.Yellow)
	y += lineHeight
	rl.DrawText(fmt.Sprintf("Triangles: %d", app.stats.TriangleCount), 10, y, 14, rl.White)
	y += lineHeight
	if factor, ok := app.Measure.tool.Scale().Fixed(); ok {
		rl.DrawText(fmt.Sprintf("Size: %s", analysis.ScaledDimensions(app.stats, factor)), 10, y, 14, rl.White)
	} else {
		size := app.stats.Dimensions
		rl.DrawText(fmt.Sprintf("Size: %.2f x %.2f x %.2f units", size.X, size.Y, size.Z), 10, y, 14, rl.White)
	}
	y += lineHeight * 2

	if app.View.showHelp {
		y = app.drawHelp(y, lineHeight)
	} else {
		rl.DrawText("H: Help", 10, y, 14, rl.LightGray)
	}

	app.drawLoadingIndicator()
	app.drawMeasureUI()

	// Version and FPS in bottom-left corner
	bottomY := int32(rl.GetScreenHeight()) - 30
	versionText := fmt.Sprintf("v%s", version.GetVersion())
	rl.DrawText(versionText, 10, bottomY, 12, rl.Gray)
	versionWidth := rl.MeasureText(versionText, 12)
	rl.DrawText(fmt.Sprintf("FPS: %d", rl.GetFPS()), 10+versionWidth+15, bottomY, 12, rl.Lime)
}

func (app *App) drawHelp(y, lineHeight int32) int32 {
	rl.DrawText("Navigate:", 10, y, 16, rl.Yellow)
	y += lineHeight
	rl.DrawText("  Left Drag: Rotate | Shift+Drag: Pan", 10, y, 14, rl.LightGray)
	y += lineHeight
	rl.DrawText("  Mouse Wheel: Zoom | Middle: Pan", 10, y, 14, rl.LightGray)
	y += lineHeight
	rl.DrawText("  Home: Reset | T: Top | B: Bottom | 1-4: Sides", 10, y, 14, rl.LightGray)
	y += lineHeight
	rl.DrawText("  W: Wireframe | F: Fill | M: Measure", 10, y, 14, rl.LightGray)
	y += lineHeight * 2

	if app.Measure.tool.Enabled() {
		rl.DrawText("Measure:", 10, y, 16, rl.Yellow)
		y += lineHeight
		rl.DrawText("  Click: First point | Right Click: Second point", 10, y, 14, rl.LightGray)
		y += lineHeight
		rl.DrawText("  Ctrl+Click: Reference points of known length", 10, y, 14, rl.LightGray)
		y += lineHeight
		rl.DrawText("  ESC: Close measurement", 10, y, 14, rl.LightGray)
		y += lineHeight
	}
	return y
}

// drawLoadingIndicator shows reload progress in the top-right corner
func (app *App) drawLoadingIndicator() {
	if !app.FileWatch.isLoading {
		return
	}

	elapsed := time.Since(app.FileWatch.loadingStartTime).Seconds()
	spinnerChars := []string{"|", "/", "-", "\\"}
	spinnerIdx := int(elapsed*8) % len(spinnerChars)
	loadingText := fmt.Sprintf("%s Reloading... (%.1fs)", spinnerChars[spinnerIdx], elapsed)

	boxWidth := int32(250)
	boxHeight := int32(40)
	boxX := int32(rl.GetScreenWidth()) - boxWidth - 20
	boxY := int32(20)

	rl.DrawRectangle(boxX, boxY, boxWidth, boxHeight, panelBackground)
	rl.DrawRectangleLines(boxX, boxY, boxWidth, boxHeight, rl.Yellow)

	textWidth := rl.MeasureText(loadingText, 18)
	rl.DrawText(loadingText, boxX+(boxWidth-textWidth)/2, boxY+11, 18, rl.Yellow)
}

// drawMeasureUI draws the Measure button or the measurement overlay and
// refreshes the widget bounds used for hit testing.
func (app *App) drawMeasureUI() {
	ui := app.Measure
	screenWidth := float32(rl.GetScreenWidth())

	if ui.buttonVisible {
		ui.buttonBounds = rl.NewRectangle(screenWidth-120, 20, 100, 32)
		hovered := rl.CheckCollisionPointRec(rl.GetMousePosition(), ui.buttonBounds)

		background := rl.NewColor(40, 60, 90, 230)
		if hovered {
			background = rl.NewColor(60, 90, 130, 230)
		}
		rl.DrawRectangleRec(ui.buttonBounds, background)
		rl.DrawRectangleLinesEx(ui.buttonBounds, 1, rl.SkyBlue)
		rl.DrawText("Measure", int32(ui.buttonBounds.X)+18, int32(ui.buttonBounds.Y)+8, 16, rl.White)
	}

	if !ui.overlayVisible {
		return
	}

	panelWidth := float32(280)
	panelHeight := float32(120)
	if !ui.refVisible {
		panelHeight = 80
	}
	ui.panelBounds = rl.NewRectangle(screenWidth-panelWidth-20, 20, panelWidth, panelHeight)

	rl.DrawRectangleRec(ui.panelBounds, panelBackground)
	rl.DrawRectangleLinesEx(ui.panelBounds, 1, rl.SkyBlue)

	x := int32(ui.panelBounds.X) + 10
	y := int32(ui.panelBounds.Y) + 8

	rl.DrawText("Measure", x, y, 16, rl.SkyBlue)

	// Close button
	ui.closeBounds = rl.NewRectangle(ui.panelBounds.X+panelWidth-28, ui.panelBounds.Y+6, 20, 20)
	closeHovered := rl.CheckCollisionPointRec(rl.GetMousePosition(), ui.closeBounds)
	closeColor := rl.Gray
	if closeHovered {
		closeColor = rl.White
	}
	rl.DrawText("x", int32(ui.closeBounds.X)+6, int32(ui.closeBounds.Y)+2, 16, closeColor)

	y += 28

	if ui.refVisible {
		rl.DrawText("Reference length:", x, y, 14, rl.LightGray)
		y += 18

		ui.refBounds = rl.NewRectangle(float32(x), float32(y), panelWidth-20, 24)
		rl.DrawRectangleRec(ui.refBounds, rl.NewColor(25, 30, 40, 255))
		borderColor := rl.Gray
		if ui.refFocused {
			borderColor = rl.SkyBlue
		}
		rl.DrawRectangleLinesEx(ui.refBounds, 1, borderColor)

		text := ui.refText
		if ui.refFocused && int(time.Now().UnixMilli()/500)%2 == 0 {
			text += "_"
		}
		rl.DrawText(text, x+6, y+5, 14, rl.White)
		y += 32
	}

	statusColor := okColor
	if ui.resultStatus == measure.StatusError {
		statusColor = errorColor
	}
	rl.DrawText(ui.resultText, x, y, 14, statusColor)
}
