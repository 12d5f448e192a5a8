package protocol

import (
	"errors"
	"io"
	"reflect"
	"strings"
	"testing"
)

func TestEventRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		ev   Event
	}{
		{"click", Event{Seq: 1, Type: EventClick, HID: "h12"}},
		{"keydown", Event{Seq: 300, Type: EventKeyDown, HID: "h3", Key: "ArrowLeft", Code: "ArrowLeft", Modifiers: ModMeta | ModShift}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := DecodeEvent(EncodeEvent(&tc.ev))
			if err != nil {
				t.Fatalf("DecodeEvent() error = %v", err)
			}
			if !reflect.DeepEqual(*got, tc.ev) {
				t.Errorf("got %+v, want %+v", *got, tc.ev)
			}
		})
	}
}

func TestClickIgnoresKeyFields(t *testing.T) {
	data := EncodeEvent(&Event{Seq: 1, Type: EventClick, HID: "h1", Code: "Home"})
	got, err := DecodeEvent(data)
	if err != nil {
		t.Fatal(err)
	}
	if got.Code != "" {
		t.Errorf("click should not carry a code, got %q", got.Code)
	}
}

func TestDecodeEventErrors(t *testing.T) {
	valid := EncodeEvent(&Event{Seq: 7, Type: EventKeyDown, HID: "h2", Key: "End", Code: "End"})

	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"empty", nil, io.ErrUnexpectedEOF},
		{"truncated", valid[:len(valid)-1], io.ErrUnexpectedEOF},
		{"unknown_type", []byte{0x01, 0x99, 0x00}, ErrInvalidEventType},
		{"trailing", append(append([]byte{}, valid...), 0x00), ErrTrailingBytes},
		{"huge_string", []byte{0x01, 0x01, 0xFF, 0xFF, 0x03}, ErrAllocationTooLarge},
		{"varint_overflow", []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}, ErrVarintOverflow},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := DecodeEvent(tc.data); !errors.Is(err, tc.want) {
				t.Errorf("DecodeEvent() error = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestPatchesRoundTrip(t *testing.T) {
	pf := &PatchesFrame{
		Seq: 42,
		Patches: []Patch{
			{Op: PatchSetAttr, HID: "h3", Key: "class", Value: "tab is-active"},
			{Op: PatchSetAttr, HID: "h3", Key: "aria-selected", Value: "true"},
			{Op: PatchRemoveAttr, HID: "h4", Key: "class"},
			{Op: PatchFocus, HID: "h3"},
		},
	}
	got, err := DecodePatches(EncodePatches(pf))
	if err != nil {
		t.Fatalf("DecodePatches() error = %v", err)
	}
	if !reflect.DeepEqual(got, pf) {
		t.Errorf("got %+v, want %+v", got, pf)
	}
}

func TestPatchesEmpty(t *testing.T) {
	got, err := DecodePatches(EncodePatches(&PatchesFrame{Seq: 3}))
	if err != nil {
		t.Fatal(err)
	}
	if got.Seq != 3 || len(got.Patches) != 0 {
		t.Errorf("got %+v", got)
	}
}

func TestDecodePatchesErrors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"bad_op", []byte{0x01, 0x01, 0x7F, 0x00}, ErrInvalidPatchOp},
		{"count_exceeds_input", []byte{0x01, 0x05, 0x0B}, io.ErrUnexpectedEOF},
		{"count_over_limit", []byte{0x01, 0xFF, 0xFF, 0x03}, ErrCollectionTooLarge},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := DecodePatches(tc.data); !errors.Is(err, tc.want) {
				t.Errorf("DecodePatches() error = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestControlRoundTrip(t *testing.T) {
	ping := &Control{Type: ControlPing, Timestamp: 1_700_000_000_000}
	got, err := DecodeControl(EncodeControl(ping))
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, ping) {
		t.Errorf("got %+v, want %+v", got, ping)
	}

	pong := Pong(got)
	if pong.Type != ControlPong || pong.Timestamp != ping.Timestamp {
		t.Errorf("Pong() = %+v", pong)
	}

	closeMsg := &Control{Type: ControlClose, Reason: CloseServerShutdown, Message: "bye"}
	got, err = DecodeControl(EncodeControl(closeMsg))
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, closeMsg) {
		t.Errorf("got %+v, want %+v", got, closeMsg)
	}

	if _, err := DecodeControl([]byte{0x55}); !errors.Is(err, ErrInvalidFrameType) {
		t.Errorf("DecodeControl() error = %v", err)
	}
}

func TestErrorMessageRoundTrip(t *testing.T) {
	em := NewFatalError(ErrUnknownElement, "no element h99")
	got, err := DecodeErrorMessage(EncodeErrorMessage(em))
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, em) {
		t.Errorf("got %+v, want %+v", got, em)
	}
	if !strings.HasPrefix(got.Error(), "fatal: UnknownElement") {
		t.Errorf("Error() = %q", got.Error())
	}
	if NewError(ErrInvalidEvent, "x").Error() != "InvalidEvent: x" {
		t.Error("unexpected non-fatal message")
	}
}

func TestEncoderUint8(t *testing.T) {
	e := NewEncoder()
	e.WriteUint8(0x00)
	e.WriteUint8(0xFF)
	d := NewDecoder(e.Bytes())
	for _, want := range []byte{0x00, 0xFF} {
		if got, err := d.ReadByte(); err != nil || got != want {
			t.Fatalf("ReadByte() = %#x, %v, want %#x", got, err, want)
		}
	}
	if !d.EOF() {
		t.Error("expected decoder at EOF")
	}
}

func TestDecoderStrictBool(t *testing.T) {
	d := NewDecoder([]byte{0x01, 0x00, 0x02})
	if v, err := d.ReadBool(); err != nil || !v {
		t.Fatalf("ReadBool() = %v, %v", v, err)
	}
	if v, err := d.ReadBool(); err != nil || v {
		t.Fatalf("ReadBool() = %v, %v", v, err)
	}
	if _, err := d.ReadBool(); !errors.Is(err, ErrInvalidBool) {
		t.Errorf("ReadBool() error = %v, want ErrInvalidBool", err)
	}
}

func TestFrameWrappers(t *testing.T) {
	if f := (&Event{Type: EventClick, HID: "h1"}).Frame(); f.Type != FrameEvent {
		t.Errorf("event frame type = %v", f.Type)
	}
	if f := (&PatchesFrame{}).Frame(); f.Type != FramePatches {
		t.Errorf("patches frame type = %v", f.Type)
	}
	if f := (&Control{Type: ControlPong}).Frame(); f.Type != FrameControl {
		t.Errorf("control frame type = %v", f.Type)
	}
	if f := NewError(ErrRateLimited, "").Frame(); f.Type != FrameError {
		t.Errorf("error frame type = %v", f.Type)
	}
}
