package main

import (
	"fmt"
	"log"
	"math"
	"os"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"arena3d/internal/assets"
	"arena3d/internal/game"
	"arena3d/internal/render"
)

const (
	packDir    = "assets"
	moveSpeed  = 10.0
	mouseSense = 0.2
)

func main() {
	// An asset pack URL can be supplied for deployed builds; local checkouts
	// already carry the assets directory.
	if src := os.Getenv("ARENA_ASSET_PACK"); src != "" {
		if err := assets.EnsurePack(src, packDir); err != nil {
			log.Fatalf("asset pack fetch failed: %v", err)
		}
	}

	rl.InitWindow(1280, 720, "arena3d")
	defer rl.CloseWindow()
	rl.SetTargetFPS(120)
	rl.DisableCursor()

	am := assets.NewManager()
	w := game.NewWorld(game.LoadConfig("assets/config/game.json"))
	debugLines := render.NewDebugLines()

	mobModel := am.LoadModel("assets/models/mob.glb")
	barrelMat := am.LoadMaterial("assets/materials/barrel.json")

	buildLevel(w)

	camera := rl.Camera3D{
		Position:   rl.Vector3{Y: 2, Z: 0},
		Target:     rl.Vector3{X: 1, Y: 2},
		Up:         rl.Vector3{Y: 1},
		Fovy:       75,
		Projection: rl.CameraPerspective,
	}

	showVolumes := false
	yaw := float32(0)

	for !rl.WindowShouldClose() {
		dt := rl.GetFrameTime()

		yaw -= rl.GetMouseDelta().X * mouseSense
		look := rl.Vector3{
			X: cosDeg(yaw),
			Z: -sinDeg(yaw),
		}

		in := game.Input{
			LookDir: look,
			Fire:    rl.IsMouseButtonDown(rl.MouseLeftButton),
			Reload:  rl.IsKeyPressed(rl.KeyR),
		}
		if rl.IsKeyDown(rl.KeyW) {
			in.Move = rl.Vector3Add(in.Move, rl.Vector3Scale(look, moveSpeed*dt))
		}
		if rl.IsKeyDown(rl.KeyS) {
			in.Move = rl.Vector3Add(in.Move, rl.Vector3Scale(look, -moveSpeed*dt))
		}
		if rl.IsKeyPressed(rl.KeyF1) {
			showVolumes = !showVolumes
		}

		w.Tick(dt, in)

		playerPos := w.Player.Actor.Position()
		camera.Position = rl.Vector3{X: playerPos.X, Y: playerPos.Y + 2, Z: playerPos.Z}
		camera.Target = rl.Vector3Add(camera.Position, look)

		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(18, 18, 24, 255))

		rl.BeginMode3D(camera)
		rl.DrawGrid(40, 2)
		drawWorld(w, am, mobModel, barrelMat)
		if showVolumes {
			w.Collision.DebugDraw(debugLines)
			debugLines.Flush()
		}
		rl.EndMode3D()

		gui.Label(rl.NewRectangle(10, 10, 200, 24), fmt.Sprintf("Score: %d", w.Score))
		gui.Label(rl.NewRectangle(10, 36, 200, 24),
			fmt.Sprintf("Ammo: %d [%s]", w.Player.Ammo(), w.Player.State()))
		showVolumes = gui.CheckBox(rl.NewRectangle(10, 66, 16, 16), "collision volumes", showVolumes)

		rl.EndDrawing()
	}
}

func buildLevel(w *game.World) {
	// Arena walls.
	w.SpawnWall(rl.Vector3{X: 40}, rl.Vector3{X: 1, Y: 6, Z: 40})
	w.SpawnWall(rl.Vector3{X: -40}, rl.Vector3{X: 1, Y: 6, Z: 40})
	w.SpawnWall(rl.Vector3{Z: 40}, rl.Vector3{X: 40, Y: 6, Z: 1})
	w.SpawnWall(rl.Vector3{Z: -40}, rl.Vector3{X: 40, Y: 6, Z: 1})

	w.SpawnProp(game.PropBarrel, rl.Vector3{X: 12, Y: 2, Z: 8})
	w.SpawnProp(game.PropSign, rl.Vector3{X: -6, Y: 2, Z: 14})
	w.SpawnProp(game.PropShotgun, rl.Vector3{X: 4, Y: 1, Z: -10})

	w.SpawnMob(rl.Vector3{X: 20, Y: 2, Z: 20})
	w.SpawnMob(rl.Vector3{X: -24, Y: 2, Z: 16})
}

func drawWorld(w *game.World, am *assets.Manager, mobModel assets.ModelHandle, barrelMat assets.MaterialHandle) {
	for _, m := range w.Mobs {
		if model, ok := am.Model(mobModel); ok {
			rl.DrawModel(model.Model, m.Actor.Position(), 1, rl.White)
		} else {
			rl.DrawCube(m.Actor.Position(), 4, 4, 4, rl.Red)
		}
	}

	for _, p := range w.Props {
		color := rl.Brown
		if p.Type == game.PropBarrel {
			if mat, ok := am.Material(barrelMat); ok {
				color = mat.Color
			}
		}
		rl.DrawCube(p.Actor.Position(), 2, 2, 2, color)
	}

	w.Particles.Each(func(inst game.ParticleInstance) {
		rl.DrawSphere(inst.Position, 0.2, inst.Color)
	})
}

func cosDeg(deg float32) float32 {
	return float32(math.Cos(float64(deg) * math.Pi / 180))
}

func sinDeg(deg float32) float32 {
	return float32(math.Sin(float64(deg) * math.Pi / 180))
}
