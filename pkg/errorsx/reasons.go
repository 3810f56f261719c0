package errorsx

// ReasonCode is a short machine-readable error reason.
type ReasonCode string

const (
	ReasonUnknown ReasonCode = "unknown"

	ReasonNotFound     ReasonCode = "not_found"
	ReasonInvalidInput ReasonCode = "invalid_input"

	ReasonRecognize ReasonCode = "recognize"
	ReasonClassify  ReasonCode = "classify"
	ReasonNotify    ReasonCode = "notify"
	ReasonExport    ReasonCode = "export"
)
