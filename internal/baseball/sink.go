package baseball

// RenderSink receives every state change and status message. Calls are made
// from the goroutine running the Machine and should return promptly.
type RenderSink interface {
	Render(s Snapshot)
	Message(text string)
}

// NopSink discards everything.
type NopSink struct{}

// Render does nothing.
func (NopSink) Render(Snapshot) {}

// Message does nothing.
func (NopSink) Message(string) {}

// Recorder keeps every snapshot and message it receives. Tests use it to
// check what the machine announced.
type Recorder struct {
	Snapshots []Snapshot
	Messages  []string
}

// Render stores the snapshot.
func (r *Recorder) Render(s Snapshot) {
	r.Snapshots = append(r.Snapshots, s)
}

// Message stores the text.
func (r *Recorder) Message(text string) {
	r.Messages = append(r.Messages, text)
}

// Last returns the most recent snapshot, or a zero Snapshot.
func (r *Recorder) Last() Snapshot {
	if len(r.Snapshots) == 0 {
		return Snapshot{}
	}
	return r.Snapshots[len(r.Snapshots)-1]
}

// MultiSink fans out to several sinks in order.
type MultiSink []RenderSink

// Render forwards to every sink.
func (m MultiSink) Render(s Snapshot) {
	for _, sink := range m {
		sink.Render(s)
	}
}

// Message forwards to every sink.
func (m MultiSink) Message(text string) {
	for _, sink := range m {
		sink.Message(text)
	}
}
