package handler

// Alert is a blocking error shown to the operator, carried together with the
// screen state it left in place so the client can redraw it unchanged.
type Alert struct {
	Err   error
	State any
}

func (a *Alert) Error() string { return a.Err.Error() }

func (a *Alert) Unwrap() error { return a.Err }
