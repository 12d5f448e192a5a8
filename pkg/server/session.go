package server

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/tabs/internal/errors"
	"github.com/vango-dev/tabs/pkg/dom"
	"github.com/vango-dev/tabs/pkg/protocol"
	"github.com/vango-dev/tabs/pkg/tabs"
)

// Session is one WebSocket connection with its own document and tab groups.
type Session struct {
	ID        string
	CreatedAt time.Time

	conn *websocket.Conn
	mu   sync.Mutex // serializes writes to conn

	// Owned by the event loop.
	doc        *dom.Document
	collection *tabs.Collection

	events  chan *protocol.Event
	done    chan struct{}
	closed  atomic.Bool
	onClose func(*Session)

	eventCount atomic.Uint64
	patchCount atomic.Uint64

	config  *SessionConfig
	metrics *Metrics
	tracer  trace.Tracer
	logger  *slog.Logger
}

// generateSessionID generates a cryptographically random session ID.
func generateSessionID() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		panic(fmt.Sprintf("crypto/rand failed: %v", err))
	}
	return hex.EncodeToString(b)
}

// newSession parses page and builds the session's tab groups. Patches made
// while building are discarded; the rendered page already shows that state.
func newSession(conn *websocket.Conn, page []byte, cfg *ServerConfig, metrics *Metrics, tracer trace.Tracer) (*Session, error) {
	id := generateSessionID()
	s := &Session{
		ID:        id,
		CreatedAt: time.Now(),
		conn:      conn,
		events:    make(chan *protocol.Event, cfg.Session.MaxEventQueue),
		done:      make(chan struct{}),
		config:    cfg.Session,
		metrics:   metrics,
		tracer:    tracer,
		logger:    cfg.Logger.With("session_id", id),
	}

	doc, err := dom.Parse(bytes.NewReader(page))
	if err != nil {
		return nil, errors.New("E132").Wrap(err)
	}

	opts := append([]tabs.Option{}, cfg.Tabs...)
	opts = append(opts, tabs.WithLogger(s.logger), tabs.OnChange(s.onChange))
	coll, err := tabs.NewCollection(doc, opts...)
	if coll == nil {
		return nil, err
	}
	if err != nil {
		s.logger.Debug("some tab groups skipped", "error", err)
	}
	doc.TakePatches()

	s.doc = doc
	s.collection = coll
	return s, nil
}

func (s *Session) onChange(c tabs.Change) {
	s.metrics.recordActivation(c)
	s.logger.Debug("tab changed",
		"root", c.Group.Root().HID,
		"from", c.From,
		"to", c.To,
		"source", c.Source.String())
}

// Groups returns the number of tab groups in the session's document.
func (s *Session) Groups() int {
	return s.collection.Len()
}

// handleEvent replays one client event into the document and sends the
// resulting patches. Must only run on the event loop.
func (s *Session) handleEvent(ev *protocol.Event) {
	start := time.Now()
	s.eventCount.Add(1)

	_, span := s.tracer.Start(context.Background(), "tabs."+ev.Type.String(),
		trace.WithAttributes(
			attribute.String("tabs.session_id", s.ID),
			attribute.String("tabs.hid", ev.HID),
			attribute.Int64("tabs.seq", int64(ev.Seq)),
		))
	defer span.End()
	defer func() { s.metrics.recordEvent(ev.Type.String(), time.Since(start)) }()

	target, ok := s.doc.ByHID(ev.HID)
	if !ok {
		s.metrics.recordError(errKindUnknownElement)
		span.SetStatus(codes.Error, "unknown element")
		s.logger.Warn("event for unknown element", "hid", ev.HID, "type", ev.Type.String())
		s.sendErrorMessage(protocol.ErrUnknownElement, "Unknown element: "+ev.HID)
		return
	}
	if g := s.collection.GroupFor(target); g != nil {
		span.SetAttributes(attribute.String("tabs.group", g.Root().HID))
	}

	domEvent := &dom.Event{
		Type:  ev.Type.DOMType(),
		Key:   ev.Key,
		Code:  ev.Code,
		Meta:  ev.Modifiers.Has(protocol.ModMeta),
		Ctrl:  ev.Modifiers.Has(protocol.ModCtrl),
		Shift: ev.Modifiers.Has(protocol.ModShift),
		Alt:   ev.Modifiers.Has(protocol.ModAlt),
	}
	if err := s.safeDispatch(target, domEvent); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "handler panic")
	}

	patches := s.doc.TakePatches()
	span.SetAttributes(attribute.Int("tabs.patches", len(patches)))
	s.SendPatches(ev.Seq, patches)
}

// safeDispatch runs listeners with panic recovery.
func (s *Session) safeDispatch(target *dom.Node, ev *dom.Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			stack := debug.Stack()
			s.logger.Error("handler panic",
				"panic", r,
				"hid", target.HID,
				"type", ev.Type,
				"stack", string(stack))
			s.metrics.recordError(errKindPanic)
			s.sendErrorMessage(protocol.ErrHandlerPanic, "Internal error")
			err = errors.New("E090").WithDetailf("%v", r)
		}
	}()

	s.doc.Dispatch(target, ev)
	return nil
}

// QueueEvent hands an event to the event loop without blocking.
func (s *Session) QueueEvent(ev *protocol.Event) error {
	select {
	case s.events <- ev:
		return nil
	default:
		s.logger.Warn("event queue full, dropping event", "hid", ev.HID)
		return ErrEventQueueFull
	}
}

// Close closes the session once.
func (s *Session) Close() {
	if s.closed.Swap(true) {
		return
	}
	close(s.done)

	s.mu.Lock()
	if s.conn != nil {
		s.conn.WriteControl(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(time.Second),
		)
		s.conn.Close()
	}
	s.mu.Unlock()

	if s.onClose != nil {
		s.onClose(s)
	}

	s.logger.Info("session closed",
		"events", s.eventCount.Load(),
		"patches", s.patchCount.Load(),
		"duration", time.Since(s.CreatedAt).Round(time.Millisecond))
}

// IsClosed returns whether the session is closed.
func (s *Session) IsClosed() bool {
	return s.closed.Load()
}

// Done returns a channel that's closed when the session is done.
func (s *Session) Done() <-chan struct{} {
	return s.done
}
