package alder

// Signal is a request the engine emits toward the platform shell. The shell
// drains signals after each entry point and acts on them: scheduling frames,
// managing native windows, driving the IME.
type Signal interface {
	signal()
}

// RequestRedraw asks the shell to schedule a render pass for the window.
// Emitted at most once per window between frames.
type RequestRedraw struct {
	Window WindowID
}

// RequestAnimate asks the shell to keep frames coming for the window.
// Emitted at most once per window between frames.
type RequestAnimate struct {
	Window WindowID
}

// CreateWindow asks the shell to open a native window.
type CreateWindow struct {
	Window WindowID
}

// RemoveWindow asks the shell to close a native window. The engine has
// already dropped its side of the window when this is emitted.
type RemoveWindow struct {
	Window WindowID
}

// UpdateWindow asks the shell to apply a property change to a native window.
type UpdateWindow struct {
	Window WindowID
	Update WindowUpdate
}

// Ime asks the shell to drive the platform input method.
type Ime struct {
	Window WindowID
	Update ImeUpdate
}

func (RequestRedraw) signal()  {}
func (RequestAnimate) signal() {}
func (CreateWindow) signal()   {}
func (RemoveWindow) signal()   {}
func (UpdateWindow) signal()   {}
func (Ime) signal()            {}

// --- Window updates ---

// WindowUpdate is one native window property change.
type WindowUpdate interface {
	windowUpdate()
}

// SetTitle changes the window title.
type SetTitle struct{ Title string }

// SetSizing changes how the window tracks its content.
type SetSizing struct{ Sizing WindowSizing }

// SetSize asks the shell to resize the native window. Emitted by
// fit-content windows after layout.
type SetSize struct{ Size Size }

// SetVisible shows or hides the window.
type SetVisible struct{ Visible bool }

// SetDecorated toggles the native frame.
type SetDecorated struct{ Decorated bool }

// SetCursor changes the pointer cursor shown over the window.
type SetCursor struct{ Cursor CursorIcon }

func (SetTitle) windowUpdate()     {}
func (SetSizing) windowUpdate()    {}
func (SetSize) windowUpdate()      {}
func (SetVisible) windowUpdate()   {}
func (SetDecorated) windowUpdate() {}
func (SetCursor) windowUpdate()    {}

// --- IME updates ---

// ImeUpdate is one input-method request.
type ImeUpdate interface {
	imeUpdate()
}

// ImeStart opens an IME session for a newly focused text widget.
type ImeStart struct{}

// ImeEnd closes the IME session.
type ImeEnd struct{}

// ImeArea reports where the candidate window should appear, in window
// coordinates.
type ImeArea struct{ Rect Rect }

func (ImeStart) imeUpdate() {}
func (ImeEnd) imeUpdate()   {}
func (ImeArea) imeUpdate()  {}

// --- Signal sink ---

// SignalSink receives engine signals. The shell installs one on the World.
type SignalSink func(Signal)

// signalQueue buffers signals when no sink is installed so early setup code
// does not lose window-management requests.
type signalQueue struct {
	sink    SignalSink
	pending []Signal
}

func (q *signalQueue) emit(s Signal) {
	if q.sink != nil {
		q.sink(s)
		return
	}
	q.pending = append(q.pending, s)
}

// install sets the sink and flushes anything buffered before it existed.
func (q *signalQueue) install(sink SignalSink) {
	q.sink = sink
	if sink == nil {
		return
	}
	for _, s := range q.pending {
		sink(s)
	}
	q.pending = nil
}
