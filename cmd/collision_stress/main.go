// Stress test measuring closest-hit ray query throughput as the volume
// count grows.
package main

import (
	"fmt"
	"math/rand"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"arena3d/internal/collision"
)

const raysPerRun = 10000

func main() {
	testCounts := []int{50, 100, 250, 500, 1000, 2500, 5000}

	for _, count := range testCounts {
		testCastRay(count)
	}
}

func testCastRay(count int) {
	rng := rand.New(rand.NewSource(42)) // consistent results

	// Spawn in a cube, size scales with count to keep density reasonable.
	spawnSize := float32(50.0) + float32(count)/100.0

	m := collision.NewManager()
	for i := 0; i < count; i++ {
		pos := rl.Vector3{
			X: rng.Float32()*spawnSize - spawnSize/2,
			Y: rng.Float32()*spawnSize - spawnSize/2,
			Z: rng.Float32()*spawnSize - spawnSize/2,
		}
		extents := rl.Vector3{
			X: 0.5 + rng.Float32(),
			Y: 0.5 + rng.Float32(),
			Z: 0.5 + rng.Float32(),
		}
		m.AddCollision(collision.NewBox(pos, extents, rng.Float32() < 0.8))
	}

	// Pre-generate rays so the timed loop only measures the query.
	starts := make([]rl.Vector3, raysPerRun)
	dirs := make([]rl.Vector3, raysPerRun)
	for i := range starts {
		starts[i] = rl.Vector3{
			X: rng.Float32()*spawnSize - spawnSize/2,
			Y: rng.Float32()*spawnSize - spawnSize/2,
			Z: rng.Float32()*spawnSize - spawnSize/2,
		}
		dirs[i] = rl.Vector3{
			X: rng.Float32()*20 - 10,
			Y: rng.Float32()*20 - 10,
			Z: rng.Float32()*20 - 10,
		}
	}

	hits := 0
	start := time.Now()
	for i := 0; i < raysPerRun; i++ {
		if _, found := m.CastRay(starts[i], dirs[i]); found {
			hits++
		}
	}
	elapsed := time.Since(start)

	perRay := elapsed / raysPerRun
	fmt.Printf("%5d volumes: %d rays in %8v (%v/ray, %d hits)\n",
		count, raysPerRun, elapsed, perRay, hits)
}
