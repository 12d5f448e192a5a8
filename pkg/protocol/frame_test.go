package protocol

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

func TestFrameEncodeDecode(t *testing.T) {
	tests := []struct {
		name    string
		frame   Frame
		wantLen int
	}{
		{"empty_payload", Frame{Type: FrameEvent, Payload: []byte{}}, FrameHeaderSize},
		{"with_payload", Frame{Type: FramePatches, Payload: []byte{0x01, 0x02, 0x03}}, FrameHeaderSize + 3},
		{"with_flags", Frame{Type: FrameControl, Flags: FrameFlags(0x04), Payload: []byte("test")}, FrameHeaderSize + 4},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			encoded, err := tc.frame.Encode()
			if err != nil {
				t.Fatalf("Encode() error = %v", err)
			}
			if len(encoded) != tc.wantLen {
				t.Errorf("Encode() length = %d, want %d", len(encoded), tc.wantLen)
			}

			decoded, err := DecodeFrame(encoded)
			if err != nil {
				t.Fatalf("DecodeFrame() error = %v", err)
			}
			if decoded.Type != tc.frame.Type || decoded.Flags != tc.frame.Flags {
				t.Errorf("header = %v/%v, want %v/%v", decoded.Type, decoded.Flags, tc.frame.Type, tc.frame.Flags)
			}
			if !bytes.Equal(decoded.Payload, tc.frame.Payload) {
				t.Errorf("Payload = %v, want %v", decoded.Payload, tc.frame.Payload)
			}
		})
	}
}

func TestFrameHeaderLayout(t *testing.T) {
	f := NewFrame(FramePatches, make([]byte, 0x0102))
	encoded, err := f.Encode()
	if err != nil {
		t.Fatal(err)
	}
	if encoded[0] != 0x02 || encoded[1] != 0x00 || encoded[2] != 0x01 || encoded[3] != 0x02 {
		t.Errorf("header = % x", encoded[:4])
	}
}

func TestDecodeFrameErrors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"short_header", []byte{0x01, 0x00}, io.ErrUnexpectedEOF},
		{"short_payload", []byte{0x01, 0x00, 0x00, 0x05, 0xAA}, io.ErrUnexpectedEOF},
		{"unknown_type", []byte{0x09, 0x00, 0x00, 0x00}, ErrInvalidFrameType},
		{"trailing", []byte{0x01, 0x00, 0x00, 0x01, 0xAA, 0xBB}, ErrTrailingBytes},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := DecodeFrame(tc.data); !errors.Is(err, tc.want) {
				t.Errorf("DecodeFrame() error = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestFrameTooLarge(t *testing.T) {
	f := NewFrame(FramePatches, make([]byte, MaxPayloadSize+1))
	if _, err := f.Encode(); !errors.Is(err, ErrFrameTooLarge) {
		t.Errorf("Encode() error = %v, want ErrFrameTooLarge", err)
	}
}

func TestFrameTypeString(t *testing.T) {
	if FramePatches.String() != "Patches" || FrameType(0x77).String() != "Unknown" {
		t.Error("unexpected FrameType strings")
	}
}
