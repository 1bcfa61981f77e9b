// Package web provides the preview server: a small REST surface for
// switching animation modes plus a websocket pose stream for browser
// viewers.
package web

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/websocket/v2"

	"github.com/lumaworks/go-skinview/internal/log"
	"github.com/lumaworks/go-skinview/pkg/hub"
	"github.com/lumaworks/go-skinview/pkg/player"
)

// Server exposes one Player over HTTP and websocket.
type Server struct {
	app    *fiber.App
	port   string
	player *player.Player

	// Hub for websocket pose broadcast (thread-safe!)
	poseHub *hub.Hub
}

// NewServer creates a preview server around an existing player.
// staticDir serves the browser-side viewer assets; empty disables it.
func NewServer(port, staticDir string, pl *player.Player) *Server {
	s := &Server{
		port:    port,
		player:  pl,
		poseHub: hub.New("pose"),
	}

	app := fiber.New(fiber.Config{
		AppName:               "go-skinview",
		DisableStartupMessage: true,
	})

	// CORS for local development
	app.Use(cors.New())

	if staticDir != "" {
		app.Static("/", staticDir)
	}

	// API routes
	api := app.Group("/api")
	api.Get("/modes", s.handleModes)
	api.Get("/state", s.handleState)
	api.Post("/mode", s.handleSetMode)
	api.Post("/speed", s.handleSetSpeed)

	// WebSocket upgrade middleware
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})

	// WebSocket routes
	app.Get("/ws/pose", websocket.New(s.handlePoseWS))

	s.app = app
	return s
}

// Start wires the player's frame sink into the pose hub and listens.
// Blocks until Shutdown is called.
func (s *Server) Start() error {
	go s.poseHub.Run()

	s.player.SetSink(func(f player.Frame) {
		if s.poseHub.ClientCount() == 0 {
			return
		}
		if err := s.poseHub.BroadcastJSON(f); err != nil {
			log.Error("encode frame", "err", err)
		}
	})

	log.Info("preview server listening", "addr", "http://localhost:"+s.port)
	return s.app.Listen(":" + s.port)
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// Viewers returns the number of connected pose stream clients.
func (s *Server) Viewers() int {
	return s.poseHub.ClientCount()
}
