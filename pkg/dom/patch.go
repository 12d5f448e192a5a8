package dom

// PatchOp is the type of patch operation.
type PatchOp uint8

// Values match the protocol's patch opcodes.
const (
	PatchSetAttr    PatchOp = 0x02 // Set/update attribute
	PatchRemoveAttr PatchOp = 0x03 // Remove attribute
	PatchFocus      PatchOp = 0x0B // Focus element
)

// String returns the string representation of the PatchOp.
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

// Patch represents a single DOM operation to apply on the client.
type Patch struct {
	Op    PatchOp // Operation type
	HID   string  // Target element's hydration ID
	Key   string  // Attribute key (for SetAttr/RemoveAttr)
	Value string  // New value (for SetAttr)
}
