// Package debugui draws a Dear ImGui overlay over a running simulation: an
// entity browser, a component inspector, per-kind counts, a query tester,
// system timings and the current session.
//
// Panels only read the snapshot they are given. Call Overlay.Render between
// the backend's BeginFrame and EndFrame.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/flapecs/ecs"
)

// View is everything the overlay shows for one frame.
type View struct {
	Entities ecs.Entities
	Systems  *ecs.SchedulerStats
	Session  Session
}

// InputState reports whether ImGui wants the mouse or keyboard this frame.
// Drivers should ignore game input that ImGui is consuming.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// CaptureState reads the current capture flags from ImGui.
func CaptureState() InputState {
	io := imgui.CurrentIO()
	return InputState{
		WantCaptureMouse:    io.WantCaptureMouse(),
		WantCaptureKeyboard: io.WantCaptureKeyboard(),
	}
}

// Overlay owns the panel state that survives between frames.
type Overlay struct {
	browser   *EntityBrowser
	inspector *ComponentInspector
	kinds     *KindViewer
	query     *QueryDebugger
	perf      *PerformanceStats
	session   *SessionPanel
}

func NewOverlay() *Overlay {
	return &Overlay{
		browser:   NewEntityBrowser(100),
		inspector: NewComponentInspector(),
		kinds:     NewKindViewer(),
		query:     NewQueryDebugger(),
		perf:      NewPerformanceStats(120),
		session:   NewSessionPanel(),
	}
}

// Render draws every panel. deltaTime is the wall time since the previous
// frame in seconds.
func (o *Overlay) Render(view View, deltaTime float32) {
	o.session.Render(view.Session)
	o.browser.Render(view.Entities)
	o.inspector.Render(view.Entities, o.browser.Selected())
	if kinds := o.kinds.Render(view.Entities); kinds != nil {
		o.browser.FilterKinds(*kinds)
	}
	o.query.Render(view.Entities)
	o.perf.Render(view.Entities, view.Systems, deltaTime)
}
