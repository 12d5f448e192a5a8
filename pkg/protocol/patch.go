package protocol

import "errors"

// PatchOp is a patch operation. Values match dom.PatchOp.
type PatchOp uint8

const (
	PatchSetAttr    PatchOp = 0x02 // Set attribute
	PatchRemoveAttr PatchOp = 0x03 // Remove attribute
	PatchFocus      PatchOp = 0x0B // Focus element
)

// String returns the string representation of the patch operation.
func (op PatchOp) String() string {
	switch op {
	case PatchSetAttr:
		return "SetAttr"
	case PatchRemoveAttr:
		return "RemoveAttr"
	case PatchFocus:
		return "Focus"
	default:
		return "Unknown"
	}
}

// Patch is one DOM change addressed by hydration ID.
type Patch struct {
	Op    PatchOp
	HID   string
	Key   string // SetAttr, RemoveAttr
	Value string // SetAttr
}

// PatchesFrame is the payload of a Patches frame. Seq echoes the event that
// produced the patches.
//
// Payload:
//
//	seq:uvarint count:uvarint (op:byte hid:string [key:string [value:string]])*
type PatchesFrame struct {
	Seq     uint64
	Patches []Patch
}

// ErrInvalidPatchOp is returned for unknown patch operations.
var ErrInvalidPatchOp = errors.New("protocol: invalid patch op")

// EncodePatches encodes a patches payload.
func EncodePatches(pf *PatchesFrame) []byte {
	e := NewEncoderWithCap(16 + 24*len(pf.Patches))
	EncodePatchesTo(e, pf)
	return e.Bytes()
}

// EncodePatchesTo encodes a patches payload using the provided encoder.
func EncodePatchesTo(e *Encoder, pf *PatchesFrame) {
	e.WriteUvarint(pf.Seq)
	e.WriteUvarint(uint64(len(pf.Patches)))
	for i := range pf.Patches {
		encodePatch(e, &pf.Patches[i])
	}
}

func encodePatch(e *Encoder, p *Patch) {
	e.WriteUint8(byte(p.Op))
	e.WriteString(p.HID)
	switch p.Op {
	case PatchSetAttr:
		e.WriteString(p.Key)
		e.WriteString(p.Value)
	case PatchRemoveAttr:
		e.WriteString(p.Key)
	}
}

// DecodePatches decodes a patches payload.
func DecodePatches(data []byte) (*PatchesFrame, error) {
	d := NewDecoder(data)
	seq, err := d.ReadUvarint()
	if err != nil {
		return nil, err
	}
	count, err := d.ReadCollectionCount()
	if err != nil {
		return nil, err
	}
	pf := &PatchesFrame{Seq: seq, Patches: make([]Patch, count)}
	for i := range pf.Patches {
		if err := decodePatch(d, &pf.Patches[i]); err != nil {
			return nil, err
		}
	}
	if !d.EOF() {
		return nil, ErrTrailingBytes
	}
	return pf, nil
}

func decodePatch(d *Decoder, p *Patch) error {
	op, err := d.ReadByte()
	if err != nil {
		return err
	}
	p.Op = PatchOp(op)
	if p.HID, err = d.ReadString(); err != nil {
		return err
	}
	switch p.Op {
	case PatchSetAttr:
		if p.Key, err = d.ReadString(); err != nil {
			return err
		}
		p.Value, err = d.ReadString()
		return err
	case PatchRemoveAttr:
		p.Key, err = d.ReadString()
		return err
	case PatchFocus:
		return nil
	default:
		return ErrInvalidPatchOp
	}
}

// Frame wraps the payload in a Patches frame.
func (pf *PatchesFrame) Frame() *Frame {
	return NewFrame(FramePatches, EncodePatches(pf))
}
