package lib

import (
	"github.com/zishang520/socket.io/v2/socket"
)

var socketServer *socket.Server

func NewSocketServer(s *socket.Server) {
	socketServer = s
}

func GetSocketServer() *socket.Server {
	return socketServer
}

// SocketEmit broadcasts a dashboard event to every connected client.
// A no-op when no socket server was started (tests, workers).
func SocketEmit(event string, payload any) {
	if socketServer == nil {
		return
	}
	socketServer.Emit(event, payload)
}
