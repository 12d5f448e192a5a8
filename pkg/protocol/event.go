package protocol

import (
	"errors"
	"fmt"
)

// EventType identifies a client event.
type EventType uint8

const (
	EventClick   EventType = 0x01
	EventKeyDown EventType = 0x20
)

// String returns the string representation of the event type.
func (et EventType) String() string {
	switch et {
	case EventClick:
		return "Click"
	case EventKeyDown:
		return "KeyDown"
	default:
		return fmt.Sprintf("Unknown(0x%02x)", uint8(et))
	}
}

// DOMType returns the DOM event name ("click", "keydown").
func (et EventType) DOMType() string {
	switch et {
	case EventClick:
		return "click"
	case EventKeyDown:
		return "keydown"
	default:
		return ""
	}
}

// Modifiers is a bit set of held modifier keys.
type Modifiers uint8

const (
	ModCtrl  Modifiers = 0x01
	ModShift Modifiers = 0x02
	ModAlt   Modifiers = 0x04
	ModMeta  Modifiers = 0x08
)

// Has reports whether mod is set.
func (m Modifiers) Has(mod Modifiers) bool {
	return m&mod != 0
}

// ErrInvalidEventType is returned for event types the server does not handle.
var ErrInvalidEventType = errors.New("protocol: invalid event type")

// Event is a client input event addressed to an element by hydration ID.
//
// Payload:
//
//	seq:uvarint type:byte hid:string
//	KeyDown adds key:string code:string modifiers:byte
type Event struct {
	Seq       uint64
	Type      EventType
	HID       string
	Key       string
	Code      string
	Modifiers Modifiers
}

// EncodeEvent encodes an event payload.
func EncodeEvent(ev *Event) []byte {
	e := NewEncoder()
	EncodeEventTo(e, ev)
	return e.Bytes()
}

// EncodeEventTo encodes an event payload using the provided encoder.
func EncodeEventTo(e *Encoder, ev *Event) {
	e.WriteUvarint(ev.Seq)
	e.WriteUint8(byte(ev.Type))
	e.WriteString(ev.HID)
	if ev.Type == EventKeyDown {
		e.WriteString(ev.Key)
		e.WriteString(ev.Code)
		e.WriteUint8(byte(ev.Modifiers))
	}
}

// DecodeEvent decodes an event payload. The payload must be consumed
// exactly.
func DecodeEvent(data []byte) (*Event, error) {
	d := NewDecoder(data)
	ev, err := DecodeEventFrom(d)
	if err != nil {
		return nil, err
	}
	if !d.EOF() {
		return nil, ErrTrailingBytes
	}
	return ev, nil
}

// DecodeEventFrom decodes an event payload from a decoder.
func DecodeEventFrom(d *Decoder) (*Event, error) {
	seq, err := d.ReadUvarint()
	if err != nil {
		return nil, err
	}
	typ, err := d.ReadByte()
	if err != nil {
		return nil, err
	}
	ev := &Event{Seq: seq, Type: EventType(typ)}

	switch ev.Type {
	case EventClick, EventKeyDown:
	default:
		return nil, ErrInvalidEventType
	}

	if ev.HID, err = d.ReadString(); err != nil {
		return nil, err
	}
	if ev.Type == EventKeyDown {
		if ev.Key, err = d.ReadString(); err != nil {
			return nil, err
		}
		if ev.Code, err = d.ReadString(); err != nil {
			return nil, err
		}
		mods, err := d.ReadByte()
		if err != nil {
			return nil, err
		}
		ev.Modifiers = Modifiers(mods)
	}
	return ev, nil
}

// Frame wraps the event in an Event frame.
func (ev *Event) Frame() *Frame {
	return NewFrame(FrameEvent, EncodeEvent(ev))
}
