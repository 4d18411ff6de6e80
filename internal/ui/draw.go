// internal/ui/draw.go
package ui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var fillImg *ebiten.Image

func whiteImage() *ebiten.Image {
	if fillImg == nil {
		fillImg = ebiten.NewImage(1, 1)
		fillImg.Fill(color.White)
	}
	return fillImg
}

// fillPolygon заливает многоугольник и обводит его рамкой.
func fillPolygon(screen *ebiten.Image, pts [][2]float32, fill color.RGBA, border color.RGBA, borderWidth float32) {
	path := vector.Path{}
	for i, p := range pts {
		if i == 0 {
			path.MoveTo(p[0], p[1])
		} else {
			path.LineTo(p[0], p[1])
		}
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	drawColored(screen, vs, is, fill)

	if borderWidth <= 0 {
		return
	}
	vs, is = path.AppendVerticesAndIndicesForStroke(vs[:0], is[:0], &vector.StrokeOptions{Width: borderWidth})
	drawColored(screen, vs, is, border)
}

func drawColored(screen *ebiten.Image, vs []ebiten.Vertex, is []uint16, c color.RGBA) {
	for i := range vs {
		vs[i].ColorR = float32(c.R) / 255
		vs[i].ColorG = float32(c.G) / 255
		vs[i].ColorB = float32(c.B) / 255
		vs[i].ColorA = float32(c.A) / 255
	}
	screen.DrawTriangles(vs, is, whiteImage(), &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// pulse: масштаб кнопки сразу после клика, затухает к 1.
func pulse(elapsedSec float64) float32 {
	return float32(1.0 + 0.3*math.Exp(-elapsedSec*8))
}
