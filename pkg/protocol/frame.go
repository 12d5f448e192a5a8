package protocol

import "errors"

// Frame constants.
const (
	// FrameHeaderSize is the size of the frame header in bytes.
	FrameHeaderSize = 4

	// MaxPayloadSize is the maximum payload size (2^16 - 1 bytes).
	MaxPayloadSize = 65535
)

// FrameType identifies the type of frame.
type FrameType uint8

const (
	FrameEvent   FrameType = 0x01 // Client → Server events
	FramePatches FrameType = 0x02 // Server → Client patches
	FrameControl FrameType = 0x03 // Ping, pong, close
	FrameError   FrameType = 0x05 // Error message
)

// String returns the string representation of the frame type.
func (ft FrameType) String() string {
	switch ft {
	case FrameEvent:
		return "Event"
	case FramePatches:
		return "Patches"
	case FrameControl:
		return "Control"
	case FrameError:
		return "Error"
	default:
		return "Unknown"
	}
}

// Valid reports whether ft is a known frame type.
func (ft FrameType) Valid() bool {
	switch ft {
	case FrameEvent, FramePatches, FrameControl, FrameError:
		return true
	}
	return false
}

// FrameFlags is the header's flag byte. No flags are defined yet; unknown
// bits are carried through unchanged.
type FrameFlags uint8

// Frame errors.
var (
	ErrFrameTooLarge    = errors.New("protocol: frame payload too large")
	ErrInvalidFrameType = errors.New("protocol: invalid frame type")
	ErrTrailingBytes    = errors.New("protocol: trailing bytes after frame")
)

// Frame is a protocol frame with header and payload.
type Frame struct {
	Type    FrameType
	Flags   FrameFlags
	Payload []byte
}

// NewFrame creates a frame with no flags.
func NewFrame(ft FrameType, payload []byte) *Frame {
	return &Frame{Type: ft, Payload: payload}
}

// Encode returns the frame as bytes, header included.
func (f *Frame) Encode() ([]byte, error) {
	if len(f.Payload) > MaxPayloadSize {
		return nil, ErrFrameTooLarge
	}
	e := NewEncoderWithCap(FrameHeaderSize + len(f.Payload))
	e.WriteUint8(byte(f.Type))
	e.WriteUint8(byte(f.Flags))
	e.WriteUint16(uint16(len(f.Payload)))
	e.WriteBytes(f.Payload)
	return e.Bytes(), nil
}

// DecodeFrame decodes exactly one frame. A WebSocket message carries one
// frame, so bytes beyond the declared length are an error.
func DecodeFrame(data []byte) (*Frame, error) {
	d := NewDecoder(data)
	typ, err := d.ReadByte()
	if err != nil {
		return nil, err
	}
	ft := FrameType(typ)
	if !ft.Valid() {
		return nil, ErrInvalidFrameType
	}
	flags, err := d.ReadByte()
	if err != nil {
		return nil, err
	}
	length, err := d.ReadUint16()
	if err != nil {
		return nil, err
	}
	body, err := d.ReadBytes(int(length))
	if err != nil {
		return nil, err
	}
	if !d.EOF() {
		return nil, ErrTrailingBytes
	}

	payload := make([]byte, len(body))
	copy(payload, body)
	return &Frame{Type: ft, Flags: FrameFlags(flags), Payload: payload}, nil
}
