package stream

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

func RegisterRoutes(r fiber.Router, hub *Hub) {
	r.Get("/ws/:shareId", websocket.New(func(c *websocket.Conn) {
		shareID := c.Params("shareId")
		viewer := hub.Register(shareID)

		done := make(chan struct{})
		go func() {
			for msg := range viewer.Send {
				if err := c.WriteMessage(websocket.TextMessage, msg); err != nil {
					break
				}
			}
			close(done)
		}()

		// Viewers are read-only; inbound frames are drained until the
		// connection drops.
		for {
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}

		hub.Unregister(viewer)
		<-done
	}))
}
