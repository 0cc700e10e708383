package game

import (
	"log/slog"
	"time"

	"github.com/pthm-cable/starfield/telemetry"
)

// recordGeneration logs and writes statistics for the active field.
func (g *Game) recordGeneration(took time.Duration) {
	pts, _, ok := g.scene.Active()
	if !ok {
		return
	}
	g.lastGeneration = pts.Generation

	stats := telemetry.ComputeGenerationStats(pts.Kind.String(), pts.Generation.String(), pts.Field, took)
	slog.Info("generated field", "stats", stats)

	if err := g.outputManager.WriteGeneration(stats); err != nil {
		slog.Error("failed to write generation", "error", err)
	}
}
