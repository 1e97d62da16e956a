package app

import (
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/UcdVrLab/Visualisation-of-the-aqueducts-of-the-Greater-Iraklio-Area/pkg/geometry"
	"github.com/UcdVrLab/Visualisation-of-the-aqueducts-of-the-Greater-Iraklio-Area/pkg/measure"
	"github.com/UcdVrLab/Visualisation-of-the-aqueducts-of-the-Greater-Iraklio-Area/pkg/mesh"
	"github.com/UcdVrLab/Visualisation-of-the-aqueducts-of-the-Greater-Iraklio-Area/pkg/watcher"
)

// CameraState holds all camera-related state
type CameraState struct {
	camera        rl.Camera3D
	distance      float32
	angleX        float32
	angleY        float32
	target        rl.Vector3 // Current camera target (can be panned)
	defaultDist   float32    // Default camera distance (for reset)
	defaultAngleX float32    // Default camera angle X (for reset)
	defaultAngleY float32    // Default camera angle Y (for reset)
}

// ModelData holds all model-related data
type ModelData struct {
	model            *mesh.Model
	raylibMesh       rl.Mesh
	material         rl.Material
	center           rl.Vector3 // Model center
	size             float32    // Model size (max dimension)
	avgVertexSpacing float32    // Average distance between vertices
}

// ViewSettings holds display settings
type ViewSettings struct {
	showWireframe bool
	showFilled    bool
	showHelp      bool
}

// pressState tracks one mouse button between press and release
type pressState struct {
	active   bool
	pos      rl.Vector2
	start    time.Time
	modifier bool
}

// InteractionState holds mouse and interaction state
type InteractionState struct {
	mouseMoved       bool
	isPanning        bool
	presses          [2]pressState // indexed by measure.Button
	hoveredVertex    geometry.Vector3
	hasHoveredVertex bool
}

// FileWatchState holds file watching and reload state
type FileWatchState struct {
	sourceFile       string           // Scan file path (.stl, .glb or .gltf)
	fileWatcher      *watcher.Watcher // File watcher for auto-reload
	needsReload      bool             // Flag to indicate model needs reloading
	isLoading        bool             // Flag to indicate a reload is in progress
	loadingStartTime time.Time        // When loading started
	loadedModel      *mesh.Model      // Model loaded in background
}

// MeasureUI holds the measurement tool and its overlay widget state. The
// tool drives visibility and text through the adapters in adapters.go; the
// draw and input code only reads this struct.
type MeasureUI struct {
	tool   *measure.Tool
	shapes *measure.Shapes
	bus    *pickBus

	overlayVisible bool
	buttonVisible  bool

	refText    string
	refVisible bool
	refFocused bool

	resultText   string
	resultStatus measure.Status

	// Screen-space bounds, refreshed every frame by drawMeasureUI
	buttonBounds rl.Rectangle
	panelBounds  rl.Rectangle
	closeBounds  rl.Rectangle
	refBounds    rl.Rectangle
}
