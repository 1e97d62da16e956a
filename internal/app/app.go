// Package app is the interactive raylib viewer: it renders the scanned
// aqueduct model, drives the camera and hosts the measurement overlay.
package app

import (
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/UcdVrLab/Visualisation-of-the-aqueducts-of-the-Greater-Iraklio-Area/pkg/analysis"
	"github.com/UcdVrLab/Visualisation-of-the-aqueducts-of-the-Greater-Iraklio-Area/pkg/mesh"
)

// Options configures a viewer session
type Options struct {
	File  string  // Scan file (.stl, .glb, .gltf)
	Scale float64 // Real-world meters per model unit; 0 means measure against a reference line
	Watch bool    // Reload the model when the file changes on disk
}

type App struct {
	Camera      CameraState
	Model       ModelData
	View        ViewSettings
	Interaction InteractionState
	FileWatch   FileWatchState
	Measure     *MeasureUI

	opts  Options
	stats *analysis.Stats
}

// Run starts the viewer and blocks until the window closes
func Run(opts Options) error {
	model, err := mesh.Load(opts.File)
	if err != nil {
		return fmt.Errorf("failed to load scan: %w", err)
	}

	screenWidth := int32(1400)
	screenHeight := int32(900)
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagWindowHighdpi | rl.FlagMsaa4xHint) // Must be before InitWindow
	rl.InitWindow(screenWidth, screenHeight, "Aqueduct Viewer")
	rl.SetTargetFPS(60)

	app := &App{
		Model: ModelData{model: model},
		View: ViewSettings{
			showWireframe: true,
			showFilled:    true,
		},
		FileWatch: FileWatchState{sourceFile: opts.File},
		Measure:   newMeasureUI(),
		opts:      opts,
	}

	app.applyScaleOption()
	app.Measure.tool.ShowButton()

	if opts.Watch {
		if err := app.setupFileWatcher(); err != nil {
			fmt.Printf("Warning: Failed to set up file watching: %v\n", err)
			fmt.Println("Auto-reload will not be available")
		} else {
			defer app.FileWatch.fileWatcher.Close()
		}
	}

	app.Model.raylibMesh = meshToRaylib(model)
	app.Model.material = rl.LoadMaterialDefault()

	app.setupModelInfo(model)
	app.setupCamera()

	for {
		// ESC is used to leave measurement mode, not to quit
		if rl.WindowShouldClose() && !rl.IsKeyPressed(rl.KeyEscape) {
			break
		}

		ctrlPressed := rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl)
		if ctrlPressed && rl.IsKeyPressed(rl.KeyC) {
			break
		}

		if app.FileWatch.needsReload && !app.FileWatch.isLoading {
			app.FileWatch.needsReload = false
			app.reloadModel()
		}

		// Apply loaded model if ready (must be on main thread)
		app.applyLoadedModel()

		app.handleInput()
		app.updateCamera()

		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(15, 18, 25, 255))

		rl.BeginMode3D(app.Camera.camera)
		if app.View.showFilled {
			rl.DrawMesh(app.Model.raylibMesh, app.Model.material, rl.MatrixIdentity())
		}
		if app.View.showWireframe {
			app.drawWireframe()
		}
		rl.EndMode3D()

		// Markers and segments are drawn in screen space so their size does
		// not depend on camera distance
		app.drawMarkers()

		app.drawUI()

		rl.EndDrawing()
	}

	rl.UnloadMesh(&app.Model.raylibMesh)
	rl.CloseWindow()
	return nil
}

// applyScaleOption installs the fixed scale from the command line, if any
func (app *App) applyScaleOption() {
	if app.opts.Scale > 0 {
		app.Measure.tool.SetScale(app.opts.Scale)
	} else {
		app.Measure.tool.ResetScale()
	}
}

// setupModelInfo derives the center, size and pick tolerance inputs
func (app *App) setupModelInfo(model *mesh.Model) {
	bbox := model.BoundingBox()
	center := bbox.Center()
	size := bbox.Size()
	maxDim := math.Max(size.X, math.Max(size.Y, size.Z))

	app.Model.center = rl.Vector3{X: float32(center.X), Y: float32(center.Y), Z: float32(center.Z)}
	app.Model.size = float32(maxDim)
	app.Model.avgVertexSpacing = float32(analysis.AverageVertexSpacing(model))
	app.stats = analysis.Describe(model)
}

// setupCamera places the camera at a distance where the whole model fits
func (app *App) setupCamera() {
	distance := app.Model.size * 2.0

	app.Camera.target = app.Model.center
	app.Camera.distance = distance
	app.Camera.angleX = 0.3
	app.Camera.angleY = 0.3

	app.Camera.defaultDist = distance
	app.Camera.defaultAngleX = 0.3
	app.Camera.defaultAngleY = 0.3

	app.Camera.camera = rl.Camera3D{
		Position:   rl.Vector3{X: 0, Y: 0, Z: distance},
		Target:     app.Camera.target,
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       45.0,
		Projection: rl.CameraPerspective,
	}
}
