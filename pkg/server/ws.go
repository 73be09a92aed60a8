package server

import (
	"net/http"
	"strings"

	"github.com/gorilla/websocket"

	"github.com/matzehuels/pokedex/pkg/dex"
	"github.com/matzehuels/pokedex/pkg/errors"
)

// wsReply is one answer on /ws. Exactly one of View and Error is set.
type wsReply struct {
	Query string      `json:"query"`
	View  *dex.View   `json:"view,omitempty"`
	Error string      `json:"error,omitempty"`
	Code  errors.Code `json:"code,omitempty"`
}

func (s *Server) handleWebsocket(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := RequestID(ctx)

	// The upgrader writes its own handshake response and ignores w.Header().
	conn, err := s.upgrader.Upgrade(w, r, http.Header{RequestIDHeader: []string{id}})
	if err != nil {
		s.logger.Debug("websocket upgrade failed", "id", id, "err", err)
		return
	}
	defer conn.Close()

	s.logger.Debug("websocket connected", "id", id)

	for {
		kind, msg, err := conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.logger.Debug("websocket read", "id", id, "err", err)
			}
			return
		}
		if kind != websocket.TextMessage {
			continue
		}

		query := strings.TrimSpace(string(msg))
		reply := wsReply{Query: query}
		if v, err := s.dex.Lookup(ctx, query, false); err != nil {
			reply.Error = errors.UserMessage(err)
			reply.Code = errors.GetCode(err)
		} else {
			reply.View = v
		}
		if err := conn.WriteJSON(reply); err != nil {
			s.logger.Debug("websocket write", "id", id, "err", err)
			return
		}
	}
}
