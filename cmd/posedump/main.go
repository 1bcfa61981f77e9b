// Posedump - offline pose inspection tool.
//
// Ticks a chosen animation mode for a few seconds and prints the joint
// values per frame. Useful for eyeballing formulas without a viewer.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lumaworks/go-skinview/pkg/anim"
	"github.com/lumaworks/go-skinview/pkg/skeleton"
)

func main() {
	modeName := flag.String("mode", "walk", "animation mode to play")
	seconds := flag.Float64("seconds", 2.0, "how much animation time to dump")
	fps := flag.Float64("fps", 4, "frames per second of output")
	speed := flag.Float64("speed", 1.0, "playback speed multiplier")
	seed := flag.Int64("seed", 1, "rng seed for mixed-mode dwell draws")
	withCape := flag.Bool("cape", true, "animate a cape attachment")
	flag.Parse()

	mode, err := anim.ParseMode(*modeName)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	state := anim.NewSeededState(mode, *speed, *seed)
	pose := skeleton.New()
	var cape *skeleton.Cape
	if *withCape {
		cape = &skeleton.Cape{}
	}

	delta := 1.0 / *fps
	steps := int(*seconds / delta)

	fmt.Printf("mode=%s speed=%.2f delta=%.3fs\n\n", mode, *speed, delta)
	for i := 0; i <= steps; i++ {
		state.Tick(pose, cape, delta)
		printFrame(state, pose, cape)
	}
}

func printFrame(state *anim.State, pose *skeleton.Skeleton, cape *skeleton.Cape) {
	fmt.Printf("t=%6.3f", state.Time())
	if phase, ok := state.Phase(); ok {
		fmt.Printf(" phase=%-6s", phase)
	}
	fmt.Printf("  head=%s body=%s bodyY=%6.3f\n",
		fmtVec(pose.Head.Rotation), fmtVec(pose.Body.Rotation), pose.BodyY)
	fmt.Printf("         arms R=%s L=%s\n",
		fmtVec(pose.RightArm.Rotation), fmtVec(pose.LeftArm.Rotation))
	fmt.Printf("         legs R=%s L=%s",
		fmtVec(pose.RightLeg.Rotation), fmtVec(pose.LeftLeg.Rotation))
	if cape != nil {
		fmt.Printf(" cape.x=%6.3f", cape.Rotation.X)
	}
	fmt.Println()
}

func fmtVec(v skeleton.Vec3) string {
	return fmt.Sprintf("(%6.3f,%6.3f,%6.3f)", v.X, v.Y, v.Z)
}
