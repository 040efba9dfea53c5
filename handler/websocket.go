package handler

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"sync"

	"waitify/database"
	"waitify/helper"

	"github.com/gofiber/contrib/websocket"
)

var (
	queueClients = make(map[uint]map[*websocket.Conn]bool)
	queueMutex   sync.Mutex
)

// WaitlistLive streams queue snapshots for one waitlist. Each connection
// gets the current state immediately, then every update published to the
// waitlist's redis channel.
func WaitlistLive(c *websocket.Conn) {
	idStr := c.Params("waitlistId")
	id64, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		log.Printf("invalid waitlistId on websocket: %s", idStr)
		c.Close()
		return
	}
	waitlistId := uint(id64)

	queueMutex.Lock()
	if queueClients[waitlistId] == nil {
		queueClients[waitlistId] = make(map[*websocket.Conn]bool)
	}
	queueClients[waitlistId][c] = true
	queueMutex.Unlock()

	defer func() {
		queueMutex.Lock()
		delete(queueClients[waitlistId], c)
		if len(queueClients[waitlistId]) == 0 {
			delete(queueClients, waitlistId)
		}
		queueMutex.Unlock()
		c.Close()
	}()

	// Initial state so new clients do not wait for the next change.
	if snapshot, err := helper.BuildQueueSnapshot(database.DB, waitlistId); err == nil {
		c.WriteJSON(snapshot)
	}

	if helper.RedisClient == nil {
		// No redis: hold the connection open, but nothing to relay.
		for {
			if _, _, err := c.ReadMessage(); err != nil {
				return
			}
		}
	}

	pubsub := helper.RedisClient.Subscribe(
		context.Background(),
		fmt.Sprintf("waitlist:%d", waitlistId),
	)
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		payload := []byte(msg.Payload)

		queueMutex.Lock()
		for conn := range queueClients[waitlistId] {
			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				conn.Close()
				delete(queueClients[waitlistId], conn)
			}
		}
		queueMutex.Unlock()
	}
}
