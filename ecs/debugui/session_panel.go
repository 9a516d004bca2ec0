package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/google/uuid"
)

// Session describes the running session.
type Session struct {
	Id        uuid.UUID
	Frame     uint64
	Score     int
	BestScore int
	Sessions  int
	Seed      uint64
	// Flapping is set while a flap is buffered for the next tick.
	Flapping bool
}

const maxScoreHistory = 64

type SessionPanel struct {
	scoreHistory []float32
	lastFrame    uint64
	lastScore    int
}

func NewSessionPanel() *SessionPanel {
	return &SessionPanel{}
}

func (sp *SessionPanel) Render(s Session) {
	sp.record(s)

	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(280, 200), imgui.CondOnce)
	if !imgui.BeginV("Session", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("Session: %s", s.Id))
	imgui.Text(fmt.Sprintf("Sessions played: %d", s.Sessions))
	imgui.Text(fmt.Sprintf("Seed: %d", s.Seed))
	imgui.Separator()
	imgui.Text(fmt.Sprintf("Frame: %d", s.Frame))
	imgui.Text(fmt.Sprintf("Score: %d (best %d)", s.Score, s.BestScore))
	if s.Flapping {
		imgui.Text("Flap pending")
	}

	if len(sp.scoreHistory) > 0 {
		imgui.Separator()
		imgui.Text("Final scores")
		imgui.PlotLinesFloatPtr("##scores", &sp.scoreHistory[0], int32(len(sp.scoreHistory)))
	}

	imgui.End()
}

// record keeps the last seen score of every session that ended. A frame
// counter that goes backwards means the previous session is over.
func (sp *SessionPanel) record(s Session) {
	if s.Frame < sp.lastFrame {
		sp.scoreHistory = append(sp.scoreHistory, float32(sp.lastScore))
		if len(sp.scoreHistory) > maxScoreHistory {
			sp.scoreHistory = sp.scoreHistory[1:]
		}
	}
	sp.lastFrame = s.Frame
	sp.lastScore = s.Score
}
