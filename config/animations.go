package config

import "github.com/automoto/balloon/shared/balloon"

// TransitionClips maps each state to the clip that morphs the plain balloon
// into it. Sheets are laid out horizontally, one 32x32 frame per column.
var TransitionClips = balloon.ClipTable{
	balloon.Normal:  {Name: "balloon_to_balloon", Frames: 1, FrameDuration: 0.1, Texture: "balloon"},
	balloon.Lift:    {Name: "balloon_to_rocket", Frames: 5, FrameDuration: 0.05, Texture: "rocket"},
	balloon.Heavy:   {Name: "balloon_to_weight", Frames: 5, FrameDuration: 0.05, Texture: "weight"},
	balloon.Spinner: {Name: "balloon_to_torus", Frames: 5, FrameDuration: 0.05, Texture: "torus"},
	balloon.Magnet:  {Name: "balloon_to_magnet", Frames: 5, FrameDuration: 0.05, Texture: "magnet"},
	balloon.Buzzsaw: {Name: "balloon_to_buzzsaw", Frames: 5, FrameDuration: 0.05, Texture: "buzzsaw"},
	balloon.Pop:     {Name: "balloon_pop", Frames: 4, FrameDuration: 0.08, Texture: "popped"},
	balloon.Dead:    {Name: "balloon_pop", Frames: 4, FrameDuration: 0.08, Texture: "dead"},
}
