// Package engine wires every subsystem into the verb surface the host UI
// drives: a single-threaded cooperative engine with no suspension points
// mid-stroke.
//
// The facade shape follows the usual top-level emulator struct, which
// owns every subsystem (CPU, PPU, APU, input) behind one facade with
// Step()/Reset()-style verbs; here the facade owns camera, document,
// synth, haptics, and the pointer-conditioning pipeline instead.
package engine

import (
	"github.com/sensoryink/core/internal/audio"
	"github.com/sensoryink/core/internal/camera"
	"github.com/sensoryink/core/internal/diag"
	"github.com/sensoryink/core/internal/document"
	"github.com/sensoryink/core/internal/friction"
	"github.com/sensoryink/core/internal/grid"
	"github.com/sensoryink/core/internal/haptic"
	"github.com/sensoryink/core/internal/point"
	"github.com/sensoryink/core/internal/smoothing"
)

// Tool is the current brush configuration new strokes are stamped with.
type Tool struct {
	Config point.RenderConfig
}

// DefaultTool mirrors a medium pencil-like brush.
func DefaultTool() Tool {
	return Tool{Config: point.RenderConfig{
		Color:             point.Color{R: 20, G: 20, B: 20},
		Opacity:           1,
		BaseStrokeWidth:   4,
		MinWidth:          1,
		MaxWidth:          10,
		Smoothness:        0.5,
		Streamline:        0.5,
		PressureInfluence: 0.6,
		VelocityInfluence: 0.4,
	}}
}

// Engine is the complete drawing surface: one document, one camera, one
// in-flight stroke-conditioning pipeline, and the multimodal feedback
// layer.
type Engine struct {
	Camera   *camera.Camera
	Document *document.Document
	GridType grid.Type
	Tool     Tool

	Voice   audio.Voice
	Haptics *haptic.Controller
	Logger  *diag.Logger

	rawMode        bool
	surfaceTexture float64
	frictionParams friction.Params

	viewportW, viewportH float64
	pendingResizeW       float64
	pendingResizeH       float64
	resizePending        bool

	// in-flight stroke state
	drawing      bool
	strokePoints []point.Point
	streamline   smoothing.Streamline
	predictor    smoothing.Predictor
	frictionF    friction.Filter

	// in-flight lasso/rect-select state
	selecting   bool
	lassoPoints []point.Point
	rectStart   point.Point
	rectCurr    point.Point
	usingLasso  bool

	// in-flight move-selected state
	moving      bool
	moveLastX   float64
	moveLastY   float64
	moveTotalDx float64
	moveTotalDy float64

	// in-flight resize-handle state
	resizing     bool
	resizeHandle int
	resizePivotX float64
	resizePivotY float64
	resizeStartX float64
	resizeStartY float64
	resizeSx     float64
	resizeSy     float64
}

// New builds an Engine with a Noop voice/haptics pair; callers wire Real
// backends (sdlvoice.Open, dbushaptic.Open) when available, falling back
// to these on diag.ErrAudioUnavailable / diag.ErrHapticUnavailable.
func New(logger *diag.Logger) *Engine {
	return &Engine{
		Camera:         camera.New(),
		Document:       document.New(),
		GridType:       grid.None,
		Tool:           DefaultTool(),
		Voice:          audio.Noop{},
		Haptics:        haptic.New(haptic.NoopPulser{}),
		Logger:         logger,
		frictionParams: friction.DefaultParams(),
		viewportW:      800,
		viewportH:      600,
	}
}

// SetRawMode implements setRawMode: bypasses both the friction filter and
// the streamline smoother. Audio/haptic feedback still fires regardless.
func (e *Engine) SetRawMode(raw bool) {
	e.rawMode = raw
	e.Voice.SetRawMode(raw)
}

// SetSurfaceTexture implements setSurfaceTexture, driving both the
// friction filter's grain strength and the synth's filter character.
func (e *Engine) SetSurfaceTexture(t float64) {
	e.surfaceTexture = point.Clamp(t, 0, 1)
	e.frictionParams.GrainStrength = 0.1 + e.surfaceTexture*0.4
	e.frictionParams.BaseResistance = 0.1 + e.surfaceTexture*0.2
	e.Voice.SetSurfaceTexture(e.surfaceTexture)
}

// SetSoundProfile implements setSoundProfile.
func (e *Engine) SetSoundProfile(name audio.SoundProfile) { e.Voice.SetProfile(name) }

// SetSoundVolume implements setSoundVolume.
func (e *Engine) SetSoundVolume(v float64) { e.Voice.SetVolume(v) }

// SetHapticEnabled implements setHapticEnabled.
func (e *Engine) SetHapticEnabled(enabled bool) { e.Haptics.SetEnabled(enabled) }

// SetGridType implements setGridType.
func (e *Engine) SetGridType(t grid.Type) { e.GridType = t }

// SetToolMode implements setToolMode(draw|select).
func (e *Engine) SetToolMode(mode document.ToolMode) { e.Document.ToolMode = mode }

// Pan implements pan(dxScreen, dyScreen).
func (e *Engine) Pan(dxScreen, dyScreen float64) { e.Camera.Pan(dxScreen, dyScreen) }

// Zoom implements zoom(factor, pivotX, pivotY).
func (e *Engine) Zoom(factor, pivotX, pivotY float64) { e.Camera.ZoomAt(factor, pivotX, pivotY) }

// Resize implements resize(): deferred to endStroke if a stroke is active.
// A deferred resize requested during a stroke executes when endStroke
// completes.
func (e *Engine) Resize(w, h float64) {
	if e.drawing {
		e.pendingResizeW, e.pendingResizeH = w, h
		e.resizePending = true
		return
	}
	e.viewportW, e.viewportH = w, h
}

// CanUndo implements canUndo.
func (e *Engine) CanUndo() bool { return e.Document.CanUndo() }

// CanRedo implements canRedo.
func (e *Engine) CanRedo() bool { return e.Document.CanRedo() }

// Undo implements undo.
func (e *Engine) Undo() { e.Document.Undo() }

// Redo implements redo.
func (e *Engine) Redo() { e.Document.Redo() }

// ClearAll implements clearAll.
func (e *Engine) ClearAll() { e.Document.ClearAll() }
