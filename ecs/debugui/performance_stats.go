package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/flapecs/ecs"
)

type PerformanceStats struct {
	historyFrames int
	frameHistory  []float32
	frameIndex    int
}

func NewPerformanceStats(historyFrames int) *PerformanceStats {
	return &PerformanceStats{
		historyFrames: historyFrames,
		frameHistory:  make([]float32, historyFrames),
	}
}

func (ps *PerformanceStats) Render(entities ecs.Entities, systems *ecs.SchedulerStats, deltaTime float32) {
	if !imgui.BeginV("Performance Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	avgFrameTime := ps.record(deltaTime)
	stats := ecs.CollectStats(entities)

	imgui.Text(fmt.Sprintf("Total Entities: %d", stats.TotalEntityCount))
	imgui.Text(fmt.Sprintf("Component Sets: %d", stats.ArchetypeCount))
	if avgFrameTime > 0 {
		imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avgFrameTime, 1000.0/avgFrameTime))
	}

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &ps.frameHistory[0], int32(len(ps.frameHistory)))

	if systems != nil && imgui.TreeNodeStr("System Timings") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("SystemStatsTable", 5, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("System")
			imgui.TableSetupColumn("Runs")
			imgui.TableSetupColumn("Last")
			imgui.TableSetupColumn("Avg")
			imgui.TableSetupColumn("Max")
			imgui.TableHeadersRow()

			for _, system := range systems.Systems {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(system.Name)
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", system.ExecutionCount))
				imgui.TableNextColumn()
				imgui.Text(formatDuration(system.LastDuration))
				imgui.TableNextColumn()
				imgui.Text(formatDuration(system.AvgDuration))
				imgui.TableNextColumn()
				imgui.Text(formatDuration(system.MaxDuration))
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}

// record stores deltaTime in the ring buffer and returns the average frame
// time in milliseconds over the history.
func (ps *PerformanceStats) record(deltaTime float32) float32 {
	ps.frameHistory[ps.frameIndex] = deltaTime * 1000.0
	ps.frameIndex = (ps.frameIndex + 1) % ps.historyFrames

	var total float32
	for _, ft := range ps.frameHistory {
		total += ft
	}
	return total / float32(ps.historyFrames)
}

func formatDuration(d time.Duration) string {
	return fmt.Sprintf("%.1f µs", float64(d)/float64(time.Microsecond))
}

type FrameTimer struct {
	lastFrameTime time.Time
}

func NewFrameTimer() *FrameTimer {
	return &FrameTimer{
		lastFrameTime: time.Now(),
	}
}

func (ft *FrameTimer) GetDeltaTime() float32 {
	now := time.Now()
	delta := float32(now.Sub(ft.lastFrameTime).Seconds())
	ft.lastFrameTime = now
	return delta
}
