package platform

import (
	"encoding/json"
	"sync"
)

// BridgeCall is one native method invocation captured by RecordingBridge.
type BridgeCall struct {
	Channel string
	Method  string
	// Args is the JSON-decoded argument value.
	Args any
}

// RecordingBridge is a NativeBridge that records every call and accepts it.
type RecordingBridge struct {
	mu      sync.Mutex
	calls   []BridgeCall
	streams map[string]bool
	starts  map[string]int
	stops   map[string]int
}

func (b *RecordingBridge) InvokeMethod(channel, method string, argsData []byte) ([]byte, error) {
	var args any
	if len(argsData) > 0 {
		json.Unmarshal(argsData, &args)
	}
	b.mu.Lock()
	b.calls = append(b.calls, BridgeCall{Channel: channel, Method: method, Args: args})
	b.mu.Unlock()
	return DefaultCodec.Encode(nil)
}

func (b *RecordingBridge) StartEventStream(channel string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.streams == nil {
		b.streams = make(map[string]bool)
		b.starts = make(map[string]int)
	}
	b.streams[channel] = true
	b.starts[channel]++
	return nil
}

func (b *RecordingBridge) StopEventStream(channel string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.streams, channel)
	if b.stops == nil {
		b.stops = make(map[string]int)
	}
	b.stops[channel]++
	return nil
}

// Calls returns the calls made with method, or all calls when method is empty.
func (b *RecordingBridge) Calls(method string) []BridgeCall {
	b.mu.Lock()
	defer b.mu.Unlock()
	var out []BridgeCall
	for _, c := range b.calls {
		if method == "" || c.Method == method {
			out = append(out, c)
		}
	}
	return out
}

// StreamActive reports whether the event stream for channel is running.
func (b *RecordingBridge) StreamActive(channel string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.streams[channel]
}

// SetupTestBridge installs a RecordingBridge and a synchronous dispatch
// function for testing. The cleanup function should be testing.T.Cleanup or
// equivalent; it registers a teardown that calls ResetForTest.
//
//	bridge := platform.SetupTestBridge(t.Cleanup)
func SetupTestBridge(cleanup func(func())) *RecordingBridge {
	bridge := &RecordingBridge{}
	SetNativeBridge(bridge)
	RegisterDispatch(func(cb func()) { cb() })
	cleanup(ResetForTest)
	return bridge
}

// StreamStarts returns how many times the stream for channel was started.
func (b *RecordingBridge) StreamStarts(channel string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.starts[channel]
}

// StreamStops returns how many times the stream for channel was stopped.
func (b *RecordingBridge) StreamStops(channel string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.stops[channel]
}
