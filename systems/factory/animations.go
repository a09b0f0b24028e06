package factory

import (
	"fmt"

	"github.com/automoto/tilerun/assets"
	"github.com/automoto/tilerun/components"
	cfg "github.com/automoto/tilerun/config"
)

// GenerateAnimations creates an AnimationData component based on the character key
// (e.g., "player", "coin") which maps to a set of animation definitions in config.
// Every frame carries the silhouette used by the collision kernel.
func GenerateAnimations(key string, frameWidth, frameHeight int, threshold uint32) *components.AnimationData {
	if _, ok := cfg.CharacterAnimations[key]; !ok {
		panic(fmt.Sprintf("No animation definitions found for key: %s", key))
	}

	set := assets.LoadCharacter(key, frameWidth, frameHeight, threshold)
	animData := &components.AnimationData{
		SpriteSheets: set.Sheets,
		Animations:   set.Animations,
		CachedFrames: set.Frames,
		FrameWidth:   frameWidth,
		FrameHeight:  frameHeight,
		CurrentSheet: cfg.Idle,
	}
	animData.CurrentAnimation = animData.Animations[cfg.Idle]
	return animData
}
