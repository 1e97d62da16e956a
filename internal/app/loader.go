package app

import (
	"fmt"
	"math"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/UcdVrLab/Visualisation-of-the-aqueducts-of-the-Greater-Iraklio-Area/pkg/analysis"
	"github.com/UcdVrLab/Visualisation-of-the-aqueducts-of-the-Greater-Iraklio-Area/pkg/mesh"
	"github.com/UcdVrLab/Visualisation-of-the-aqueducts-of-the-Greater-Iraklio-Area/pkg/watcher"
)

// setupFileWatcher starts watching the scan file for changes
func (app *App) setupFileWatcher() error {
	// 500ms debounce; exporters write scans in several chunks
	fw, err := watcher.New(500*time.Millisecond, func(changedFile string) {
		fmt.Printf("\nFile changed: %s\n", changedFile)
		app.FileWatch.needsReload = true
	})
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}

	if err := fw.Add(app.FileWatch.sourceFile); err != nil {
		fw.Close()
		return fmt.Errorf("failed to watch file: %w", err)
	}

	fmt.Printf("Watching file for changes: %s\n", app.FileWatch.sourceFile)

	fw.Start()
	app.FileWatch.fileWatcher = fw
	return nil
}

// reloadModel reloads the model from the source file in the background
func (app *App) reloadModel() {
	if app.FileWatch.isLoading {
		return
	}

	app.FileWatch.isLoading = true
	app.FileWatch.loadingStartTime = time.Now()
	fmt.Println("Reloading scan...")

	// Load in background; mesh upload must happen on the main thread
	go func() {
		model, err := mesh.Load(app.FileWatch.sourceFile)
		if err != nil {
			fmt.Printf("Error reloading scan: %v\n", err)
			app.FileWatch.isLoading = false
			return
		}
		app.FileWatch.loadedModel = model
	}()
}

// applyLoadedModel applies a loaded model (must be called on main thread)
func (app *App) applyLoadedModel() {
	if app.FileWatch.loadedModel == nil {
		return
	}

	// Preserve current camera state
	savedDistance := app.Camera.distance
	savedAngleX := app.Camera.angleX
	savedAngleY := app.Camera.angleY
	savedTarget := app.Camera.target

	model := app.FileWatch.loadedModel
	newMesh := meshToRaylib(model)

	bbox := model.BoundingBox()
	center := bbox.Center()
	size := bbox.Size()
	maxDim := math.Max(size.X, math.Max(size.Y, size.Z))

	newCenter := rl.Vector3{X: float32(center.X), Y: float32(center.Y), Z: float32(center.Z)}

	// Keep the view steady by shifting the target with the model center
	centerDelta := rl.Vector3Subtract(newCenter, app.Model.center)
	adjustedTarget := rl.Vector3Add(savedTarget, centerDelta)

	oldMesh := app.Model.raylibMesh
	app.Model.raylibMesh = newMesh
	app.Model.model = model
	app.Model.center = newCenter
	app.Model.size = float32(maxDim)
	app.Model.avgVertexSpacing = float32(analysis.AverageVertexSpacing(model))
	app.stats = analysis.Describe(model)

	app.Camera.distance = savedDistance
	app.Camera.angleX = savedAngleX
	app.Camera.angleY = savedAngleY
	app.Camera.target = adjustedTarget

	rl.UnloadMesh(&oldMesh)

	// Marker positions refer to vertices of the old geometry, so the
	// measurement session does not survive a reload
	app.closeMeasureTool()
	app.applyScaleOption()

	elapsed := time.Since(app.FileWatch.loadingStartTime)
	fmt.Printf("Scan reloaded in %.2fs\n", elapsed.Seconds())

	app.FileWatch.loadedModel = nil
	app.FileWatch.isLoading = false
}
