// Posewatch - tails the pose stream of a running skinviewd.
//
// Connects over websocket and prints one line per incoming frame until
// interrupted.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/lumaworks/go-skinview/pkg/stream"
)

func main() {
	addr := flag.String("addr", "localhost:8090", "skinviewd host:port")
	flag.Parse()

	client := stream.NewClient(*addr)
	if err := client.Connect(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer client.Close()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	fmt.Printf("watching %s (Ctrl+C to stop)\n", *addr)
	for {
		select {
		case <-sigChan:
			fmt.Println("\nbye")
			return
		case frame, ok := <-client.Frames():
			if !ok {
				fmt.Println("stream closed")
				return
			}
			line := fmt.Sprintf("#%-6d %-6s t=%7.3f bodyY=%6.3f rArm.x=%6.3f rLeg.x=%6.3f",
				frame.Seq, frame.Mode, frame.Time, frame.Skeleton.BodyY,
				frame.Skeleton.RightArm.Rotation.X, frame.Skeleton.RightLeg.Rotation.X)
			if frame.Phase != "" {
				line += " phase=" + frame.Phase
			}
			fmt.Println(line)
		}
	}
}
