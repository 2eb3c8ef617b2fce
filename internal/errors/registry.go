package errors

// Template defines a registered error type.
type Template struct {
	Category Category
	Message  string
	Detail   string
}

// registry maps error codes to their templates.
var registry = map[string]Template{
	// ============================================
	// Builder Errors (G001-G019)
	// ============================================

	"G001": {
		Category: CategoryBuilder,
		Message:  "Invalid descriptor",
		Detail:   "The element descriptor must be a string of the form \"[.tag] [#id] [class ...]\".",
	},
	"G002": {
		Category: CategoryBuilder,
		Message:  "Style property could not be applied",
		Detail:   "The element factory rejected a style property. Lenient builders skip it; strict builders fail.",
	},
	"G003": {
		Category: CategoryBuilder,
		Message:  "Unrecognized content item",
		Detail:   "A content item is neither a string, an element, a [name, element] pair nor an [element] singleton.",
	},
	"G004": {
		Category: CategoryBuilder,
		Message:  "Property could not be applied",
		Detail:   "The element factory rejected a property assignment.",
	},

	// ============================================
	// Document Errors (G020-G039)
	// ============================================

	"G020": {
		Category: CategoryDocument,
		Message:  "Document could not be read",
	},
	"G021": {
		Category: CategoryDocument,
		Message:  "Document could not be parsed",
		Detail:   "Documents are YAML or JSON trees of {el, attrs, content} mappings.",
	},
	"G022": {
		Category: CategoryDocument,
		Message:  "Malformed document node",
		Detail:   "A node must be a mapping with an \"el\" descriptor and optional \"attrs\" and \"content\".",
	},

	// ============================================
	// Config Errors (G040-G059)
	// ============================================

	"G040": {
		Category: CategoryConfig,
		Message:  "Configuration could not be loaded",
	},
	"G041": {
		Category: CategoryConfig,
		Message:  "Invalid configuration value",
	},

	// ============================================
	// Output Errors (G060-G079)
	// ============================================

	"G060": {
		Category: CategoryOutput,
		Message:  "Output could not be written",
	},
	"G061": {
		Category: CategoryOutput,
		Message:  "S3 upload failed",
	},

	// ============================================
	// CLI Errors (G080-G099)
	// ============================================

	"G080": {
		Category: CategoryCLI,
		Message:  "Preview server failed",
	},
}

// Lookup returns the template for code.
func Lookup(code string) (Template, bool) {
	t, ok := registry[code]
	return t, ok
}

// Codes returns all registered codes.
func Codes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	return codes
}
