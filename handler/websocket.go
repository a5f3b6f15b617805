package handler

import (
	"context"
	"log"
	"sync"

	"wisata_booking/helper"

	"github.com/gofiber/contrib/websocket"
)

var (
	bookingClients = make(map[string]map[*websocket.Conn]bool)
	bookingMu      sync.Mutex
)

// BookingStatusWebsocket streams status changes for one booking. Each
// connection joins the booking's room and relays the redis pubsub channel
// the transition helpers publish to.
func BookingStatusWebsocket(c *websocket.Conn) {
	bookingNumber := c.Params("bookingNumber")
	if bookingNumber == "" {
		c.Close()
		return
	}

	bookingMu.Lock()
	if bookingClients[bookingNumber] == nil {
		bookingClients[bookingNumber] = make(map[*websocket.Conn]bool)
	}
	bookingClients[bookingNumber][c] = true
	bookingMu.Unlock()

	defer func() {
		bookingMu.Lock()
		delete(bookingClients[bookingNumber], c)
		if len(bookingClients[bookingNumber]) == 0 {
			delete(bookingClients, bookingNumber)
		}
		bookingMu.Unlock()
		c.Close()
	}()

	pubsub := helper.Redis.Subscribe(context.Background(), "booking:"+bookingNumber)
	defer pubsub.Close()

	channel := pubsub.Channel()
	for msg := range channel {
		payload := []byte(msg.Payload)

		bookingMu.Lock()
		for conn := range bookingClients[bookingNumber] {
			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				conn.Close()
				delete(bookingClients[bookingNumber], conn)
			}
		}
		empty := len(bookingClients[bookingNumber]) == 0
		bookingMu.Unlock()

		if empty {
			log.Printf("booking %s room drained", bookingNumber)
			return
		}
	}
}
