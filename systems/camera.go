package systems

import (
	"math"

	"github.com/automoto/balloon/components"
	"github.com/automoto/balloon/config"
	"github.com/automoto/balloon/shared/balloon"
	"github.com/automoto/balloon/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera follows the balloon, keeping the level filling the screen.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	// Process screen shake
	updateScreenShake(cameraEntry, camera)

	balloonEntry, ok := tags.Balloon.First(e.World)
	if !ok {
		return
	}
	targetX, targetY, ok := cameraTarget(e, balloonEntry)
	if !ok {
		return
	}

	// Center the camera on the constrained target position, with some smoothing.
	camera.Position.X += (targetX - camera.Position.X) * config.Camera.FollowSmoothing
	camera.Position.Y += (targetY - camera.Position.Y) * config.Camera.FollowSmoothing
}

// cameraTarget is the balloon centre clamped so the view stays inside the
// level. Levels smaller than the screen are centred.
func cameraTarget(e *ecs.ECS, balloonEntry *donburi.Entry) (float64, float64, bool) {
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return 0, 0, false
	}
	level := components.Level.Get(levelEntry)
	if level.Level == nil {
		return 0, 0, false
	}

	pos := components.Physics.Get(balloonEntry).Position
	half := float64(balloon.FrameSize) / 2
	targetX := float64(pos.X) + half
	targetY := float64(pos.Y) + half

	screenWidth := float64(config.C.Width)
	screenHeight := float64(config.C.Height)
	levelWidth := float64(level.Grid.PixelWidth())
	levelHeight := float64(level.Grid.PixelHeight())

	return clampAxis(targetX, screenWidth, levelWidth), clampAxis(targetY, screenHeight, levelHeight), true
}

func clampAxis(target, screen, level float64) float64 {
	if level <= screen {
		return level / 2
	}
	return math.Max(screen/2, math.Min(level-screen/2, target))
}

// centerCamera snaps the camera onto the balloon after a level load.
func centerCamera(e *ecs.ECS, balloonEntry *donburi.Entry) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	if x, y, ok := cameraTarget(e, balloonEntry); ok {
		camera := components.Camera.Get(cameraEntry)
		camera.Position.X = x
		camera.Position.Y = y
	}
}

// worldToScreen maps a world point (Y up) to screen pixels (Y down).
func worldToScreen(e *ecs.ECS, screen *ebiten.Image, x, y float64) (float64, float64) {
	var camX, camY float64
	if cameraEntry, ok := components.Camera.First(e.World); ok {
		camera := components.Camera.Get(cameraEntry)
		camX, camY = camera.Position.X, camera.Position.Y
	}
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	return x - camX + float64(width)/2, float64(height)/2 - (y - camY)
}

// updateScreenShake applies screen shake offset to camera and decrements duration
func updateScreenShake(cameraEntry *donburi.Entry, camera *components.CameraData) {
	if !cameraEntry.HasComponent(components.ScreenShake) {
		return
	}

	shake := components.ScreenShake.Get(cameraEntry)
	shake.Elapsed++

	// Calculate decaying intensity
	progress := float64(shake.Duration-shake.Elapsed) / float64(shake.Duration)
	if progress < 0 {
		progress = 0
	}
	currentIntensity := shake.Intensity * progress

	camera.Position.X += math.Sin(float64(shake.Elapsed)*1.1) * currentIntensity
	camera.Position.Y += math.Cos(float64(shake.Elapsed)*1.3) * currentIntensity

	if shake.Elapsed >= shake.Duration {
		cameraEntry.RemoveComponent(components.ScreenShake)
	}
}

// TriggerScreenShake starts a screen shake effect
func TriggerScreenShake(ecs *ecs.ECS, intensity float64, duration int) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok || duration <= 0 {
		return
	}

	if cameraEntry.HasComponent(components.ScreenShake) {
		shake := components.ScreenShake.Get(cameraEntry)
		// Only override if new shake is stronger
		if intensity > shake.Intensity {
			shake.Intensity = intensity
			shake.Duration = duration
			shake.Elapsed = 0
		}
		return
	}
	cameraEntry.AddComponent(components.ScreenShake)
	components.ScreenShake.Set(cameraEntry, &components.ScreenShakeData{
		Intensity: intensity,
		Duration:  duration,
	})
}
