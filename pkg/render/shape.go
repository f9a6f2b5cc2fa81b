package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Point is a 2D point in device pixels.
type Point struct {
	X, Y float64
}

// heartLocal is the heart outline for size 1: start point followed by the
// control and end points of two cubic segments that meet at the bottom cusp.
var heartLocal = [7]Point{
	{0, -0.30},
	{0.35, -0.70}, {0.95, -0.25}, {0, 0.55},
	{-0.95, -0.25}, {-0.35, -0.70}, {0, -0.30},
}

// HeartOutline returns the heart outline scaled by size, rotated by rot and
// centered at (cx, cy).
func HeartOutline(cx, cy, size, rot float64) [7]Point {
	sin, cos := math.Sincos(rot)
	var out [7]Point
	for i, p := range heartLocal {
		x, y := p.X*size, p.Y*size
		out[i] = Point{X: cx + x*cos - y*sin, Y: cy + x*sin + y*cos}
	}
	return out
}

// AppendHeart adds a closed heart subpath to path.
func AppendHeart(path *vector.Path, cx, cy, size, rot float64) {
	p := HeartOutline(cx, cy, size, rot)
	path.MoveTo(float32(p[0].X), float32(p[0].Y))
	path.CubicTo(float32(p[1].X), float32(p[1].Y), float32(p[2].X), float32(p[2].Y), float32(p[3].X), float32(p[3].Y))
	path.CubicTo(float32(p[4].X), float32(p[4].Y), float32(p[5].X), float32(p[5].Y), float32(p[6].X), float32(p[6].Y))
	path.Close()
}

// AppendSparkle adds a four-pointed star with outer radius r.
func AppendSparkle(path *vector.Path, cx, cy, r, rot float64) {
	for i := 0; i < 8; i++ {
		radius := r
		if i%2 == 1 {
			radius = r * 0.35
		}
		angle := rot + float64(i)*math.Pi/4 - math.Pi/2
		px := cx + radius*math.Cos(angle)
		py := cy + radius*math.Sin(angle)
		if i == 0 {
			path.MoveTo(float32(px), float32(py))
		} else {
			path.LineTo(float32(px), float32(py))
		}
	}
	path.Close()
}

// AppendRoundedRect adds a rectangle with rounded corners.
func AppendRoundedRect(path *vector.Path, x, y, w, h, radius float32) {
	if radius*2 > w {
		radius = w / 2
	}
	if radius*2 > h {
		radius = h / 2
	}
	path.MoveTo(x+radius, y)
	path.ArcTo(x+w, y, x+w, y+h, radius)
	path.ArcTo(x+w, y+h, x, y+h, radius)
	path.ArcTo(x, y+h, x, y, radius)
	path.ArcTo(x, y, x+w, y, radius)
	path.Close()
}

// Filler turns vector paths into triangles and draws them with a flat color.
// Vertex and index buffers are reused between calls.
type Filler struct {
	img *ebiten.Image
	vs  []ebiten.Vertex
	is  []uint16
}

// NewFiller creates a Filler. The 1x1 source image is allocated on first use.
func NewFiller() *Filler {
	return &Filler{
		vs: make([]ebiten.Vertex, 0, 64),
		is: make([]uint16, 0, 96),
	}
}

// Fill draws the interior of path onto dst.
func (f *Filler) Fill(dst *ebiten.Image, path *vector.Path, clr color.Color) {
	if dst == nil {
		return
	}
	f.vs, f.is = path.AppendVerticesAndIndicesForFilling(f.vs[:0], f.is[:0])
	f.draw(dst, clr)
}

// Stroke draws the outline of path onto dst.
func (f *Filler) Stroke(dst *ebiten.Image, path *vector.Path, width float32, clr color.Color) {
	if dst == nil {
		return
	}
	f.vs, f.is = path.AppendVerticesAndIndicesForStroke(f.vs[:0], f.is[:0], &vector.StrokeOptions{
		Width:    width,
		LineJoin: vector.LineJoinRound,
	})
	f.draw(dst, clr)
}

func (f *Filler) draw(dst *ebiten.Image, clr color.Color) {
	if len(f.is) == 0 {
		return
	}
	if f.img == nil {
		f.img = ebiten.NewImage(1, 1)
		f.img.Fill(color.White)
	}
	r, g, b, a := VertexColor(clr)
	for i := range f.vs {
		f.vs[i].SrcX = 0.5
		f.vs[i].SrcY = 0.5
		f.vs[i].ColorR = r
		f.vs[i].ColorG = g
		f.vs[i].ColorB = b
		f.vs[i].ColorA = a
	}
	dst.DrawTriangles(f.vs, f.is, f.img, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

// AppendRotatedRect adds a w×h rectangle centered at (cx, cy) and rotated by rot.
func AppendRotatedRect(path *vector.Path, cx, cy, w, h, rot float64) {
	sin, cos := math.Sincos(rot)
	corners := [4]Point{{-w / 2, -h / 2}, {w / 2, -h / 2}, {w / 2, h / 2}, {-w / 2, h / 2}}
	for i, c := range corners {
		x := float32(cx + c.X*cos - c.Y*sin)
		y := float32(cy + c.X*sin + c.Y*cos)
		if i == 0 {
			path.MoveTo(x, y)
		} else {
			path.LineTo(x, y)
		}
	}
	path.Close()
}
