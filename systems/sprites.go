package systems

import (
	"image"

	"github.com/automoto/balloon/assets"
	"github.com/automoto/balloon/shared/balloon"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// spriteCache holds decoded balloon sheets. A nil entry marks a sheet that
// failed to load so it is not retried every frame.
var spriteCache = make(map[string]*ebiten.Image)

func sprite(name string) *ebiten.Image {
	if img, ok := spriteCache[name]; ok {
		return img
	}
	src, err := assets.SpriteImage(name)
	if err != nil {
		log.Warn("sprite unavailable", zap.String("name", name), zap.Error(err))
		spriteCache[name] = nil
		return nil
	}
	img := ebiten.NewImageFromImage(src)
	spriteCache[name] = img
	return img
}

// spriteFrame returns one frame of a horizontal sheet, or the whole image
// when frame is negative.
func spriteFrame(name string, frame int) *ebiten.Image {
	img := sprite(name)
	if img == nil || frame < 0 {
		return img
	}
	sx := frame * balloon.FrameSize
	if sx+balloon.FrameSize > img.Bounds().Dx() {
		return nil
	}
	return img.SubImage(image.Rect(sx, 0, sx+balloon.FrameSize, balloon.FrameSize)).(*ebiten.Image)
}
