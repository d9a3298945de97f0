package server

import (
	"context"
	"encoding/json"
	"net/http"

	"preferred-observer/src/metrics"
	"preferred-observer/src/models"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// -----------------------------------------------------------------------------
// Hub Pattern Implementation
// -----------------------------------------------------------------------------

func (s *APIServer) startHub() {
	s.hubOnce.Do(func() { go s.handleWebsockets() })
}

// handleWebsockets is the main Hub loop
func (s *APIServer) handleWebsockets() {
	for {
		select {
		case client := <-s.register:
			s.clients[client] = struct{}{}
			s.connections.Add(1)
			metrics.ActiveConnections.Inc()
			s.replayLatest(client)

		case client := <-s.unregister:
			s.drop(client)

		case client := <-s.replay:
			if _, ok := s.clients[client]; ok {
				s.replayLatest(client)
			}

		case event := <-s.broadcast:
			s.latestMutex.Lock()
			s.latest[event.Type] = event
			s.latestMutex.Unlock()

			for client := range s.clients {
				if !client.wants(event) {
					continue
				}
				select {
				case client.send <- event:
				default:
					// Slow consumer, disconnect so the hub never blocks
					s.drop(client)
				}
			}

		case <-s.done:
			for client := range s.clients {
				s.drop(client)
			}
			return
		}
	}
}

func (s *APIServer) drop(client *Client) {
	if _, ok := s.clients[client]; !ok {
		return
	}
	delete(s.clients, client)
	close(client.send)
	s.connections.Add(-1)
	metrics.ActiveConnections.Dec()
}

// replayLatest sends the most recent event of every type the client wants.
// Only the hub loop calls it, so client.send is still open.
func (s *APIServer) replayLatest(client *Client) {
	s.latestMutex.RLock()
	defer s.latestMutex.RUnlock()

	for _, event := range s.latest {
		if !client.wants(event) {
			continue
		}
		select {
		case client.send <- event:
		default:
		}
	}
}

// -----------------------------------------------------------------------------
// Event Publisher Implementation
// -----------------------------------------------------------------------------

// Publish queues an event for websocket clients without blocking.
func (s *APIServer) Publish(_ context.Context, event models.MEvent) error {
	select {
	case s.broadcast <- event:
		return nil
	default:
		return ErrEventQueueFull
	}
}

// -----------------------------------------------------------------------------
// WebSocket Handlers
// -----------------------------------------------------------------------------

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// -----------------------------------------------------------------------------

func (s *APIServer) handleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		s.Logger.Info("Failed to upgrade websocket: %v", err)
		return
	}

	client := newClient(s, conn)

	select {
	case s.register <- client:
	case <-s.done:
		conn.Close()
		return
	}

	go client.writePump()
	go client.readPump()
}

// -----------------------------------------------------------------------------
// Client Message Handling
// -----------------------------------------------------------------------------

// HandleClientMessage applies a subscribe command and replays the latest
// matching events. Malformed commands close the connection.
func (s *APIServer) HandleClientMessage(client *Client, message []byte) {
	var cmd models.MSubscribeCommand
	if err := json.Unmarshal(message, &cmd); err != nil {
		s.Logger.Info("Failed to parse client command: %v, disconnecting client", err)
		client.conn.Close()
		return
	}

	if cmd.Command != "subscribe" {
		return
	}

	client.subscribe(cmd.Types, cmd.Tickers)
	select {
	case s.replay <- client:
	case <-s.done:
	}
}
