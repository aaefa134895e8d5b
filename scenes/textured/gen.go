//go:build ignore

// Generates the textures used by the textured sample scene.
//
//	go run scenes/textured/gen.go -out scenes/textured/textures
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
)

const texSize = 16

type pixelFn func(x, y int) color.NRGBA

// Deterministic per-texel offset in [-5, 5].
func noise(x, y, seed int) int {
	return (x*73+y*151+seed*29+x*y*7)%11 - 5
}

func channel(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

func speckle(r, g, b, step, seed int) pixelFn {
	return func(x, y int) color.NRGBA {
		n := noise(x, y, seed) * step
		return color.NRGBA{channel(r + n), channel(g + n), channel(b + n), 255}
	}
}

func flat(r, g, b int) pixelFn {
	return func(_, _ int) color.NRGBA {
		return color.NRGBA{channel(r), channel(g), channel(b), 255}
	}
}

func gradient(top, bottom [3]int) pixelFn {
	return func(_, y int) color.NRGBA {
		var c [3]uint8
		for i := range c {
			c[i] = channel(top[i] + (bottom[i]-top[i])*y/(texSize-1))
		}
		return color.NRGBA{c[0], c[1], c[2], 255}
	}
}

func main() {
	outDir := flag.String("out", "textures", "output folder")
	flag.Parse()

	grassTop := speckle(95, 159, 53, 4, 1)
	dirt := speckle(134, 96, 67, 5, 2)
	textures := map[string]pixelFn{
		"grass_top.png": grassTop,
		"dirt.png":      dirt,
		"grass_side.png": func(x, y int) color.NRGBA {
			if y < 4 || (y == 4 && noise(x, y, 3) > 0) {
				return grassTop(x, y)
			}
			return dirt(x, y)
		},
		"stone.png":      speckle(125, 125, 125, 5, 4),
		"sky_side.png":   gradient([3]int{110, 170, 235}, [3]int{200, 225, 245}),
		"sky_top.png":    flat(90, 150, 230),
		"sky_bottom.png": flat(70, 90, 60),
	}

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	for name, fn := range textures {
		img := image.NewNRGBA(image.Rect(0, 0, texSize, texSize))
		for y := 0; y < texSize; y++ {
			for x := 0; x < texSize; x++ {
				img.SetNRGBA(x, y, fn(x, y))
			}
		}
		if err := imaging.Save(img, filepath.Join(*outDir, name)); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
}
