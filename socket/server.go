package socket

import (
	"log"

	socketio "github.com/googollee/go-socket.io"
)

// Server wraps the Socket.IO server and knows how to reach a user's room
type Server struct {
	IO *socketio.Server
}

// NewServer initializes the Socket.IO server. Clients emit "join" with
// their user id after connecting and receive events in the "user:<id>" room.
func NewServer() *Server {
	io := socketio.NewServer(nil)

	io.OnConnect("/", func(c socketio.Conn) error {
		log.Println("Socket connected:", c.ID())
		return nil
	})

	io.OnEvent("/", "join", func(c socketio.Conn, userID string) {
		if userID == "" {
			log.Println("Invalid userId in join request")
			return
		}
		log.Printf("Socket %s joined room for user %s", c.ID(), userID)
		c.Join(userRoom(userID))
	})

	io.OnError("/", func(c socketio.Conn, err error) {
		log.Println("Socket error:", err)
	})

	io.OnDisconnect("/", func(c socketio.Conn, reason string) {
		log.Println("Socket disconnected:", c.ID(), reason)
	})

	return &Server{IO: io}
}

// EmitToUser broadcasts an event to every connection in the user's room
func (s *Server) EmitToUser(userID, event string, payload interface{}) {
	s.IO.BroadcastToRoom("/", userRoom(userID), event, payload)
}

func userRoom(userID string) string {
	return "user:" + userID
}
