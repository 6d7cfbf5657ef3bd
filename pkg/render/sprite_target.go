package render

import "github.com/hajimehoshi/ebiten/v2"

// SpriteTarget 世界坐标精灵渲染目标
// 以 (X, Y) 为锚点（图片中心对齐），支持缩放和水平翻转。
type SpriteTarget struct {
	img *ebiten.Image

	X, Y   float64 // 世界坐标（锚点位置）
	ScaleX float64 // X 轴缩放，1.0 = 原始大小
	ScaleY float64 // Y 轴缩放
	FlipX  bool    // 是否水平翻转（朝向切换）
}

// NewSpriteTarget 创建精灵渲染目标，默认缩放 1.0
func NewSpriteTarget() *SpriteTarget {
	return &SpriteTarget{ScaleX: 1.0, ScaleY: 1.0}
}

// SetImage 实现 Target 接口
func (t *SpriteTarget) SetImage(img *ebiten.Image) {
	t.img = img
}

// Image 返回当前帧图片，未设置时为 nil
func (t *SpriteTarget) Image() *ebiten.Image {
	return t.img
}

// SetPosition 设置锚点位置
func (t *SpriteTarget) SetPosition(x, y float64) {
	t.X = x
	t.Y = y
}

// Draw 将当前帧绘制到屏幕
// 未设置图片时不绘制。
func (t *SpriteTarget) Draw(screen *ebiten.Image) {
	if t.img == nil {
		return
	}

	w, h := t.img.Bounds().Dx(), t.img.Bounds().Dy()

	op := &ebiten.DrawImageOptions{}

	// 以图片中心为锚点
	op.GeoM.Translate(-float64(w)/2, -float64(h)/2)

	sx := t.ScaleX
	if t.FlipX {
		sx = -sx
	}
	op.GeoM.Scale(sx, t.ScaleY)

	op.GeoM.Translate(t.X, t.Y)

	screen.DrawImage(t.img, op)
}
