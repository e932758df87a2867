package metagen

// ProgressEvent is one unit of the server-to-client progress protocol.
// A batch emits one initial event, one event before each URL is processed,
// one event after each URL completes or fails (carrying the result), and a
// final event with Progress == 100.
type ProgressEvent struct {
	Message string `json:"message"`

	// Progress is a percentage in [0, 100], monotonically non-decreasing
	// across one batch.
	Progress int `json:"progress"`

	// Result is set on events reporting a completed or failed URL.
	Result *MetadataResult `json:"result,omitempty"`
}

// ProgressFunc is called as batch processing proceeds. Implementations must
// not block for long: the pipeline calls it inline between URLs.
type ProgressFunc func(event ProgressEvent)
