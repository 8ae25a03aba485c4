// Command ricochetdemo runs ComputeDualTrajectory and Propagate over a
// small built-in scene and prints a summary of the result. It exists as a
// thin CLI consumer of the core library, not a replacement for a host
// engine's input/rendering layer.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/arrowline/ricochet"
	"github.com/arrowline/ricochet/geom"
	"github.com/arrowline/ricochet/scene"
)

func main() {
	var (
		playerX, playerY = flag.Float64("player-x", 100, "player x"), flag.Float64("player-y", 300, "player y")
		cursorX, cursorY = flag.Float64("cursor-x", 650, "cursor x"), flag.Float64("cursor-y", 200, "cursor y")
	)
	flag.Parse()

	player := geom.V(*playerX, *playerY)
	cursor := geom.V(*cursorX, *cursorY)

	scn, err := scene.NewSceneBuilder().
		Wall("top", geom.V(0, 0), geom.V(800, 0)).
		Wall("bottom", geom.V(0, 600), geom.V(800, 600)).
		Ricochet("mirror", geom.V(450, 150), geom.V(450, 450)).
		Build()
	if err != nil {
		log.Fatalf("building demo scene: %v", err)
	}
	plan := scn[2:]

	dt := ricochet.ComputeDualTrajectory(player, cursor, plan, scn)
	fmt.Printf("cursor reachable: %v\n", dt.CursorReachable)
	fmt.Printf("planned path: %v\n", dt.Planned.Points)
	fmt.Printf("actual path:  %v (termination: %v)\n", dt.Actual.Points, dt.Actual.Termination)
	fmt.Printf("aligned segments: %d, fully aligned: %v\n", dt.Alignment.AlignedSegmentCount, dt.Alignment.FullyAligned)
	for _, b := range dt.Bypassed {
		fmt.Printf("bypassed %s: %v\n", b.SurfaceID, b.Reason)
	}

	bounds := geom.NewRect(geom.V(0, 0), geom.V(800, 600))
	pr, err := ricochet.Propagate(player, cursor, plan, scn, ricochet.WithScreenBounds(bounds))
	if err != nil {
		log.Fatalf("propagate: %v", err)
	}
	fmt.Printf("propagation valid: %v, stages: %d\n", pr.Valid, len(pr.Stages))
}
