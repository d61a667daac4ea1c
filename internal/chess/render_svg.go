package chess

import (
	"io"

	svg "github.com/ajstarks/svgo"
)

const (
	svgCell   = 48
	svgMargin = 20
)

// RenderSVG 输出 SVG 棋盘，方向与 Render 相同（第 8 行在上，a 列在左）。
func (p *Position) RenderSVG(w io.Writer) {
	size := Files*svgCell + 2*svgMargin
	canvas := svg.New(w)
	canvas.Start(size, size)
	canvas.Rect(0, 0, size, size, "fill:#ffffff")

	for rank := Ranks - 1; rank >= 0; rank-- {
		y := svgMargin + (Ranks-1-rank)*svgCell
		canvas.Text(svgMargin/2, y+svgCell/2+5, string(rune('1'+rank)),
			"font-size:12px;text-anchor:middle;fill:#444")
		for file := 0; file < Files; file++ {
			x := svgMargin + file*svgCell
			fill := "fill:#b58863"
			if (file+rank)%2 == 1 {
				fill = "fill:#f0d9b5"
			}
			canvas.Rect(x, y, svgCell, svgCell, fill)

			pc := p.squares[NewSquare(file, rank)]
			if pc.Kind == Empty {
				continue
			}
			canvas.Text(x+svgCell/2, y+svgCell*3/4, pc.Glyph(),
				"font-size:36px;text-anchor:middle;fill:#000")
		}
	}
	for file := 0; file < Files; file++ {
		x := svgMargin + file*svgCell + svgCell/2
		canvas.Text(x, size-svgMargin/4-1, string(rune('a'+file)),
			"font-size:12px;text-anchor:middle;fill:#444")
	}
	canvas.End()
}
