package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"thermaldesign/calculator"
	"thermaldesign/model"
)

type Server struct {
	addr     string
	upgrader websocket.Upgrader
	base     calculator.Config
}

// NewServer serves sweeps of base, which clients adjust with env messages.
func NewServer(addr string, upgrader websocket.Upgrader, base calculator.Config) *Server {
	return &Server{
		addr:     addr,
		upgrader: upgrader,
		base:     base,
	}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.serveWs)
	return mux
}

// serveWs handles websocket requests from the peer.
func (s *Server) serveWs(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.WithError(err).Warn("websocket upgrade failed")
		return
	}
	defer conn.Close()
	log.WithField("remote", r.RemoteAddr).Info("client connected")

	hub := NewHub(conn, s.base)
	go hub.handleRequest()
	go hub.handleResponse()
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.WithError(err).Warn("read from client failed")
			}
			break
		}
		var msg model.Msg
		if err := json.Unmarshal(data, &msg); err != nil {
			hub.replyError(fmt.Errorf("bad message: %w", err))
			continue
		}
		hub.msg <- msg
	}
	close(hub.msg)
	<-hub.done
	log.WithField("remote", r.RemoteAddr).Info("client disconnected")
}

func (s *Server) Serve() error {
	log.WithField("addr", s.addr).Info("listening")
	return http.ListenAndServe(s.addr, s.Handler())
}
