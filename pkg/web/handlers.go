package web

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"

	"github.com/lumaworks/go-skinview/pkg/anim"
	"github.com/lumaworks/go-skinview/pkg/hub"
)

// ModeInfo describes one selectable animation mode.
type ModeInfo struct {
	Name string `json:"name"`
}

// StateInfo is the playback state reported by /api/state.
type StateInfo struct {
	Mode    string  `json:"mode"`
	Phase   string  `json:"phase,omitempty"`
	Speed   float64 `json:"speed"`
	Frames  uint64  `json:"frames"`
	Viewers int     `json:"viewers"`
}

// handleModes returns the selectable animation modes.
func (s *Server) handleModes(c *fiber.Ctx) error {
	modes := make([]ModeInfo, 0, len(anim.Modes()))
	for _, m := range anim.Modes() {
		modes = append(modes, ModeInfo{Name: m.String()})
	}
	return c.JSON(modes)
}

// handleState returns the current playback state.
func (s *Server) handleState(c *fiber.Ctx) error {
	snap := s.player.Snapshot()
	return c.JSON(StateInfo{
		Mode:    snap.Mode,
		Phase:   snap.Phase,
		Speed:   s.player.Speed(),
		Frames:  snap.Seq,
		Viewers: s.poseHub.ClientCount(),
	})
}

// SetModeRequest is the request body for switching modes.
type SetModeRequest struct {
	Mode string `json:"mode"`
}

// handleSetMode switches the animation mode. The switch is an abrupt pose
// change by design; there is no cross-fade.
func (s *Server) handleSetMode(c *fiber.Ctx) error {
	var req SetModeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	mode, err := anim.ParseMode(req.Mode)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	s.player.SetMode(mode)
	return c.JSON(fiber.Map{"mode": mode.String()})
}

// SetSpeedRequest is the request body for changing playback speed.
type SetSpeedRequest struct {
	Speed float64 `json:"speed"`
}

// handleSetSpeed sets the playback speed multiplier. Zero and negative
// values are legal: they freeze or reverse the animation.
func (s *Server) handleSetSpeed(c *fiber.Ctx) error {
	var req SetSpeedRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	s.player.SetSpeed(req.Speed)
	return c.JSON(fiber.Map{"speed": req.Speed})
}

// handlePoseWS registers a viewer connection on the pose hub and pumps
// frames until it disconnects.
func (s *Server) handlePoseWS(c *websocket.Conn) {
	client := hub.NewClient(s.poseHub, c)
	client.Run()
}
