package components

import (
	"github.com/automoto/tilerun/assets/animations"
	"github.com/automoto/tilerun/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

type AnimationData struct {
	CurrentAnimation *animations.Animation
	SpriteSheets     map[config.StateID]*ebiten.Image
	CachedFrames     map[config.StateID]map[int]*ebiten.Image // Pre-calculated subimages keyed by sheet index
	CurrentSheet     config.StateID
	FrameWidth       int
	FrameHeight      int
	Animations       map[config.StateID]*animations.Animation
}

// SetAnimation switches to the animation for state. It reports whether the
// current animation changed.
func (a *AnimationData) SetAnimation(state config.StateID) bool {
	if a.CurrentSheet == state && (a.CurrentAnimation != nil || a.Animations[state] == nil) {
		return false
	}

	anim, ok := a.Animations[state]
	if !ok {
		// No animation for this state, keep showing the current one
		return false
	}
	changed := a.CurrentAnimation != anim
	a.CurrentAnimation = anim
	a.CurrentSheet = state
	if changed {
		a.CurrentAnimation.Restart()
	}
	return changed
}

// CurrentFrame returns the image of the current frame, or nil.
func (a *AnimationData) CurrentFrame() *ebiten.Image {
	if a.CurrentAnimation == nil {
		return nil
	}
	frames := a.CachedFrames[a.CurrentSheet]
	return frames[a.CurrentAnimation.Frame()]
}

var Animation = donburi.NewComponentType[AnimationData]()
