package errors

import "sort"

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Markup Contract Errors (E001-E019)
	// ============================================

	"E001": {
		Category: CategoryConfig,
		Message:  "Tab group has no buttons",
		Detail:   "A tab group root must contain at least one button marker; an empty group has no valid active index.",
	},
	"E002": {
		Category: CategoryConfig,
		Message:  "Tab group button and panel counts differ",
		Detail:   "Every button activates the panel at the same index, so a group needs exactly one panel per button.",
	},
	"E003": {
		Category: CategoryConfig,
		Message:  "Invalid marker configuration",
		Detail:   "Root, button and panel markers must be non-empty and distinct attribute names.",
	},
	"E004": {
		Category: CategoryConfig,
		Message:  "Tab group root is not attached to a document",
		Detail:   "Groups move focus through the owning document, so the root must belong to one.",
	},

	// ============================================
	// Protocol Errors (E060-E079)
	// ============================================

	"E060": {
		Category: CategoryProtocol,
		Message:  "Invalid frame",
		Detail:   "The client sent a frame that could not be decoded.",
	},
	"E061": {
		Category: CategoryProtocol,
		Message:  "Invalid event",
		Detail:   "The event payload could not be decoded or has an unsupported type.",
	},
	"E062": {
		Category: CategoryProtocol,
		Message:  "Unknown element",
		Detail:   "The event targets a hydration ID that does not exist in the session's document.",
	},
	"E063": {
		Category: CategoryProtocol,
		Message:  "Event queue full",
		Detail:   "The session is receiving events faster than it can handle them.",
	},

	// ============================================
	// Runtime Errors (E090-E099)
	// ============================================

	"E090": {
		Category: CategoryRuntime,
		Message:  "Event handler panicked",
		Detail:   "A listener panicked while handling an event. The session keeps running.",
	},

	// ============================================
	// Config Errors (E120-E139)
	// ============================================

	"E120": {
		Category: CategoryConfig,
		Message:  "Invalid configuration",
		Detail:   "The tabs.json file could not be read or parsed.",
	},
	"E121": {
		Category: CategoryConfig,
		Message:  "Configuration not found",
		Detail:   "No tabs.json was found.",
	},
	"E122": {
		Category: CategoryConfig,
		Message:  "Invalid port",
		Detail:   "The port must be between 0 and 65535.",
	},

	// ============================================
	// Source Errors (E130-E139)
	// ============================================

	"E130": {
		Category: CategorySource,
		Message:  "Page source unreadable",
		Detail:   "The page markup could not be loaded from the configured location.",
	},
	"E131": {
		Category: CategorySource,
		Message:  "Invalid page location",
		Detail:   "Page locations are file paths or s3://bucket/key URLs.",
	},
	"E132": {
		Category: CategorySource,
		Message:  "Page markup invalid",
		Detail:   "The page markup could not be parsed as HTML.",
	},
}

// GetAllCodes returns all registered error codes, sorted.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}
