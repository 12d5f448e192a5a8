package server

import (
	"time"

	"github.com/gorilla/websocket"

	"github.com/vango-dev/tabs/pkg/dom"
	"github.com/vango-dev/tabs/pkg/protocol"
)

// ReadLoop reads frames until the connection fails, answering control
// frames directly and queueing events for the event loop.
func (s *Session) ReadLoop() {
	defer s.Close()

	for {
		s.conn.SetReadDeadline(time.Now().Add(s.config.ReadTimeout))

		_, msg, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway,
				websocket.CloseAbnormalClosure,
				websocket.CloseNormalClosure) {
				s.logger.Error("read error", "error", err)
			}
			return
		}

		frame, err := protocol.DecodeFrame(msg)
		if err != nil {
			s.metrics.recordError(errKindInvalidFrame)
			s.logger.Warn("frame decode error", "error", err)
			s.sendErrorMessage(protocol.ErrInvalidFrame, "Invalid frame")
			continue
		}

		switch frame.Type {
		case protocol.FrameEvent:
			s.handleEventFrame(frame.Payload)
		case protocol.FrameControl:
			s.handleControlFrame(frame.Payload)
		default:
			s.logger.Warn("unexpected frame type", "type", frame.Type.String())
		}
	}
}

func (s *Session) handleEventFrame(payload []byte) {
	ev, err := protocol.DecodeEvent(payload)
	if err != nil {
		s.metrics.recordError(errKindInvalidEvent)
		s.logger.Warn("event decode error", "error", err)
		s.sendErrorMessage(protocol.ErrInvalidEvent, "Invalid event format")
		return
	}

	if err := s.QueueEvent(ev); err != nil {
		s.metrics.recordError(errKindQueueFull)
		s.sendErrorMessage(protocol.ErrRateLimited, "Event queue full")
	}
}

func (s *Session) handleControlFrame(payload []byte) {
	c, err := protocol.DecodeControl(payload)
	if err != nil {
		s.logger.Warn("control decode error", "error", err)
		return
	}

	switch c.Type {
	case protocol.ControlPing:
		s.writeFrame(protocol.Pong(c).Frame())
	case protocol.ControlPong:
		s.logger.Debug("received pong")
	case protocol.ControlClose:
		s.logger.Info("client closing", "reason", c.Reason.String(), "message", c.Message)
		s.Close()
	}
}

// EventLoop processes queued events one at a time.
func (s *Session) EventLoop() {
	for {
		select {
		case ev := <-s.events:
			s.handleEvent(ev)
		case <-s.done:
			return
		}
	}
}

// WriteLoop sends heartbeat pings until the session closes.
func (s *Session) WriteLoop() {
	ticker := time.NewTicker(s.config.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			ping := &protocol.Control{Type: protocol.ControlPing, Timestamp: uint64(time.Now().UnixMilli())}
			if err := s.writeFrame(ping.Frame()); err != nil {
				s.Close()
				return
			}
		case <-s.done:
			return
		}
	}
}

// Start starts all session loops.
func (s *Session) Start() {
	go s.ReadLoop()
	go s.WriteLoop()
	go s.EventLoop()
}

// SendPatches converts and sends document patches as one frame. An empty
// frame is still sent so the client sees every event answered.
func (s *Session) SendPatches(seq uint64, patches []dom.Patch) {
	pf := &protocol.PatchesFrame{Seq: seq, Patches: make([]protocol.Patch, len(patches))}
	for i, p := range patches {
		pf.Patches[i] = protocol.Patch{
			Op:    protocol.PatchOp(p.Op),
			HID:   p.HID,
			Key:   p.Key,
			Value: p.Value,
		}
	}

	if err := s.writeFrame(pf.Frame()); err != nil {
		return
	}
	s.patchCount.Add(uint64(len(patches)))
	s.metrics.recordPatches(len(patches))
}

// SendClose notifies the client that the session is ending.
func (s *Session) SendClose(reason protocol.CloseReason, message string) {
	c := &protocol.Control{Type: protocol.ControlClose, Reason: reason, Message: message}
	s.writeFrame(c.Frame())
}

func (s *Session) sendErrorMessage(code protocol.ErrorCode, message string) {
	s.writeFrame(protocol.NewError(code, message).Frame())
}

// writeFrame encodes and writes one frame under the write lock.
func (s *Session) writeFrame(f *protocol.Frame) error {
	data, err := f.Encode()
	if err != nil {
		s.logger.Error("frame encode error", "type", f.Type.String(), "error", err)
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed.Load() {
		return ErrSessionClosed
	}
	if s.conn == nil {
		return ErrNoConnection
	}

	s.conn.SetWriteDeadline(time.Now().Add(s.config.WriteTimeout))
	if err := s.conn.WriteMessage(websocket.BinaryMessage, data); err != nil {
		s.metrics.recordError(errKindWrite)
		s.logger.Error("write error", "type", f.Type.String(), "error", err)
		return &SessionError{SessionID: s.ID, Op: "write " + f.Type.String(), Err: err}
	}
	return nil
}
