package app

import (
	"math"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/UcdVrLab/Visualisation-of-the-aqueducts-of-the-Greater-Iraklio-Area/pkg/geometry"
	"github.com/UcdVrLab/Visualisation-of-the-aqueducts-of-the-Greater-Iraklio-Area/pkg/measure"
)

// handleInput processes user input for one frame
func (app *App) handleInput() {
	if app.Measure.refFocused {
		app.handleReferenceTyping()
	} else {
		app.handleKeyboard()
	}

	app.handleMouse()
}

// handleKeyboard processes viewer shortcuts. Not called while the reference
// field has focus, so typing "1" does not switch the camera view.
func (app *App) handleKeyboard() {
	if rl.IsKeyPressed(rl.KeyHome) {
		app.resetCameraView()
	}
	if rl.IsKeyPressed(rl.KeyT) {
		app.setCameraTopView()
	}
	if rl.IsKeyPressed(rl.KeyB) {
		app.setCameraBottomView()
	}
	if rl.IsKeyPressed(rl.KeyOne) {
		app.setCameraFrontView()
	}
	if rl.IsKeyPressed(rl.KeyTwo) {
		app.setCameraBackView()
	}
	if rl.IsKeyPressed(rl.KeyThree) {
		app.setCameraLeftView()
	}
	if rl.IsKeyPressed(rl.KeyFour) {
		app.setCameraRightView()
	}

	if rl.IsKeyPressed(rl.KeyW) {
		app.View.showWireframe = !app.View.showWireframe
	}
	if rl.IsKeyPressed(rl.KeyF) {
		app.View.showFilled = !app.View.showFilled
	}
	if rl.IsKeyPressed(rl.KeyH) {
		app.View.showHelp = !app.View.showHelp
	}

	if rl.IsKeyPressed(rl.KeyM) {
		app.toggleMeasureTool()
	}
	if rl.IsKeyPressed(rl.KeyEscape) && app.Measure.tool.Enabled() {
		app.closeMeasureTool()
	}
}

// handleReferenceTyping edits the reference length text. The tool re-parses
// the string on every change, so the result updates while typing.
func (app *App) handleReferenceTyping() {
	changed := false

	for {
		char := rl.GetCharPressed()
		if char == 0 {
			break
		}
		if char >= 32 {
			app.Measure.refText += string(rune(char))
			changed = true
		}
	}

	if rl.IsKeyPressed(rl.KeyBackspace) && len(app.Measure.refText) > 0 {
		runes := []rune(app.Measure.refText)
		app.Measure.refText = string(runes[:len(runes)-1])
		changed = true
	}

	if rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyEscape) {
		app.Measure.refFocused = false
	}

	if changed {
		app.Measure.tool.Refresh()
	}
}

// handleMouse tracks presses per button and turns quick clicks into pick
// events. Drags rotate or pan the camera instead.
func (app *App) handleMouse() {
	mousePos := rl.GetMousePosition()
	shiftPressed := rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift)
	ctrlPressed := rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl)

	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		if app.handleUIPress(mousePos) {
			// Swallowed by a widget; no camera motion, no pick
		} else {
			app.beginPress(measure.ButtonPrimary, mousePos, ctrlPressed)
			app.Interaction.mouseMoved = false
			app.Interaction.isPanning = shiftPressed
		}
	}
	if rl.IsMouseButtonPressed(rl.MouseRightButton) && !app.overUI(mousePos) {
		app.beginPress(measure.ButtonSecondary, mousePos, ctrlPressed)
	}

	// Camera panning with Shift + drag or middle mouse button drag
	if (rl.IsMouseButtonDown(rl.MouseLeftButton) && app.Interaction.isPanning) || rl.IsMouseButtonDown(rl.MouseMiddleButton) {
		delta := rl.GetMouseDelta()
		if delta.X != 0 || delta.Y != 0 {
			app.Interaction.mouseMoved = true
			app.doPan(delta)
		}
	} else if rl.IsMouseButtonDown(rl.MouseLeftButton) && app.Interaction.presses[measure.ButtonPrimary].active {
		// Camera rotation with left drag
		delta := rl.GetMouseDelta()
		if math.Abs(float64(delta.X)) > 1.0 || math.Abs(float64(delta.Y)) > 1.0 {
			app.Interaction.mouseMoved = true
		}
		if delta.X != 0 || delta.Y != 0 {
			app.Camera.angleY += delta.X * 0.01
			app.Camera.angleX -= delta.Y * 0.01

			// Clamp vertical rotation
			if app.Camera.angleX > 1.5 {
				app.Camera.angleX = 1.5
			}
			if app.Camera.angleX < -1.5 {
				app.Camera.angleX = -1.5
			}
		}
	}

	if rl.IsMouseButtonReleased(rl.MouseLeftButton) {
		app.finishPress(measure.ButtonPrimary, mousePos)
		app.Interaction.isPanning = false
	}
	if rl.IsMouseButtonReleased(rl.MouseRightButton) {
		app.finishPress(measure.ButtonSecondary, mousePos)
	}

	// Zoom with mouse wheel
	wheel := rl.GetMouseWheelMove()
	if wheel != 0 {
		app.Camera.distance *= (1.0 - wheel*0.03)
		if app.Camera.distance < 1.0 {
			app.Camera.distance = 1.0
		}
	}

	// Hover highlight while the tool is armed and nothing is dragged
	if app.Measure.tool.Enabled() && !rl.IsMouseButtonDown(rl.MouseLeftButton) && !app.overUI(mousePos) {
		app.updateHoverVertex()
	} else {
		app.Interaction.hasHoveredVertex = false
	}
}

// handleUIPress routes a left press that landed on a widget. Returns true
// when the press was consumed.
func (app *App) handleUIPress(mousePos rl.Vector2) bool {
	ui := app.Measure

	if ui.buttonVisible && rl.CheckCollisionPointRec(mousePos, ui.buttonBounds) {
		ui.tool.Enable()
		ui.tool.Refresh()
		return true
	}

	if ui.overlayVisible {
		if rl.CheckCollisionPointRec(mousePos, ui.closeBounds) {
			app.closeMeasureTool()
			return true
		}
		if ui.refVisible && rl.CheckCollisionPointRec(mousePos, ui.refBounds) {
			ui.refFocused = true
			return true
		}
		if rl.CheckCollisionPointRec(mousePos, ui.panelBounds) {
			ui.refFocused = false
			return true
		}
	}

	ui.refFocused = false
	return false
}

// overUI reports whether a screen position lies on the measurement widgets
func (app *App) overUI(pos rl.Vector2) bool {
	ui := app.Measure
	if ui.buttonVisible && rl.CheckCollisionPointRec(pos, ui.buttonBounds) {
		return true
	}
	return ui.overlayVisible && rl.CheckCollisionPointRec(pos, ui.panelBounds)
}

func (app *App) toggleMeasureTool() {
	if app.Measure.tool.Enabled() {
		app.closeMeasureTool()
	} else {
		app.Measure.tool.Enable()
		app.Measure.tool.Refresh()
	}
}

func (app *App) closeMeasureTool() {
	app.Measure.tool.Disable()
	app.Measure.tool.ShowButton()
}

func (app *App) beginPress(button measure.Button, pos rl.Vector2, modifier bool) {
	app.Interaction.presses[button] = pressState{
		active:   true,
		pos:      pos,
		start:    time.Now(),
		modifier: modifier,
	}
}

// finishPress completes a press/release cycle and publishes the pick event.
// The ray cast runs only for quick stationary clicks; anything else is a
// camera gesture the tool would reject anyway.
func (app *App) finishPress(button measure.Button, releasePos rl.Vector2) {
	press := &app.Interaction.presses[button]
	if !press.active {
		return
	}
	press.active = false

	if !app.Measure.bus.active() {
		return
	}

	held := time.Since(press.start)

	var hit *geometry.Vector3
	if held <= measure.ClickThreshold && press.pos == releasePos {
		hit = app.pickVertex(releasePos)
	}

	app.Measure.bus.publish(measure.PickEvent{
		Press:    geometry.NewVector2(float64(press.pos.X), float64(press.pos.Y)),
		Release:  geometry.NewVector2(float64(releasePos.X), float64(releasePos.Y)),
		Held:     held,
		Button:   button,
		Modifier: press.modifier,
		Hit:      hit,
	})
}
