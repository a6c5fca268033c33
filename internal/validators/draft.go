package validators

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	// FieldDraftID targets the caller-supplied draft identifier.
	FieldDraftID = "draft_id"

	// FieldPayload targets the document content; it must be a JSON object.
	FieldPayload = "payload"

	// FieldVersion targets the optimistic concurrency version; when present
	// it must be positive.
	FieldVersion = "version"
)

// MaxDraftIDLength bounds the draft identifier.
const MaxDraftIDLength = 256
