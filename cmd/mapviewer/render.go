package main

import (
	"fmt"
	"image"
	"image/color"
	"strings"
)

// renderFrame writes ANSI-styled half-block characters for img to w.
// Each terminal row represents two vertical pixels: the top pixel is
// the foreground color and the bottom pixel is the background color
// of a "▀" character, the same half-block technique a terminal video
// player uses to pack two rows of color into one line of text.
func renderFrame(img *image.RGBA, cols, rows int, w *strings.Builder) {
	pixH := img.Bounds().Dy()

	for row := range rows {
		topY := row * 2
		botY := topY + 1

		for x := range cols {
			top := img.RGBAAt(x, topY)

			var bot color.RGBA
			if botY < pixH {
				bot = img.RGBAAt(x, botY)
			}

			fmt.Fprintf(w, "\033[38;2;%d;%d;%dm\033[48;2;%d;%d;%dm▀", top.R, top.G, top.B, bot.R, bot.G, bot.B)
		}

		w.WriteString("\033[0m\n")
	}
}
