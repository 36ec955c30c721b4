package domain

// Envelope is the response wrapper every data endpoint returns.
// Exactly one of Data/Error is non-nil.
type Envelope struct {
	OK    bool    `json:"ok"`
	Data  any     `json:"data"`
	Error *string `json:"error"`
}

// Success wraps a normalized payload.
func Success(data any) Envelope {
	return Envelope{OK: true, Data: data}
}

// Failure wraps an error message; data is always null.
func Failure(err error) Envelope {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	return FailureMessage(msg)
}

// FailureMessage builds a failure envelope from a plain message.
func FailureMessage(msg string) Envelope {
	return Envelope{OK: false, Data: nil, Error: &msg}
}
