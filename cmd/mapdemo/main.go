// mapdemo is a minimal host that loads a single room and lets a player
// sprite walk around it, demonstrating how a VM wires mapcore to a real
// Ebitengine window.
package main

import (
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/opengame/mapcore"
)

const (
	screenW = 640
	screenH = 480

	surfaceViewport mapcore.SurfaceID = iota
	surfaceStatusBar
)

type game struct {
	m       *mapcore.Map
	backend *mapcore.EbitenBackend
}

func (g *game) Update() error {
	if err := g.m.ExecSpritesAndRedraw(); err != nil {
		return err
	}
	g.m.Camera.Update(1.0 / 60.0)
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	opts := &ebiten.DrawImageOptions{}
	ox, oy := g.m.Camera.PixelOffset()
	opts.GeoM.Translate(float64(ox), float64(oy))
	screen.DrawImage(g.backend.Surface(surfaceViewport), opts)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenW, screenH
}

func loadAssets(dir string) (map[string][]byte, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	assets := make(map[string][]byte, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		data, err := os.ReadFile(dir + "/" + e.Name())
		if err != nil {
			return nil, err
		}
		assets[e.Name()] = data
	}
	return assets, nil
}

func main() {
	assetDir := "assets"
	if len(os.Args) > 1 {
		assetDir = os.Args[1]
	}

	assets, err := loadAssets(assetDir)
	if err != nil {
		log.Fatalf("load assets: %v", err)
	}

	backend := mapcore.NewEbitenBackend(assets)
	backend.DefineSurface(surfaceViewport, screenW, screenH)
	backend.DefineSurface(surfaceStatusBar, screenW, 32)

	m := mapcore.NewMap(mapcore.Config{}, backend, backend, backend, surfaceViewport, surfaceStatusBar)

	screenInfo, ok := backend.Load("room1.scr")
	if !ok {
		log.Fatal("missing room1.scr")
	}
	if err := m.LoadTilemap("room1.mpx", screenInfo.Data); err != nil {
		log.Fatalf("load tilemap: %v", err)
	}
	m.LoadEvents("room1.eve")
	m.LoadPalette("map.pal", 0)
	m.LoadPalette("cha.pal", 1)
	m.LoadBitmap("room1.bmp", 0, 0, 0)
	m.LoadBitmap("cha.bmp", 0, 0, 1)
	m.LoadSpriteScripts("room1.ccd")
	m.SpawnSprite(0, 0, 0)
	m.SetLocationMode(mapcore.LocationEnabled)

	m.LoadTiles()
	m.PlaceSprites()
	m.DrawTiles()

	ebiten.SetWindowSize(screenW*2, screenH*2)
	ebiten.SetWindowTitle("mapdemo")
	if err := ebiten.RunGame(&game{m: m, backend: backend}); err != nil {
		log.Fatal(err)
	}
}
