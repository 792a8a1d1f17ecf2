package events

import (
	"encoding/json"
	"testing"
)

func TestHubPublishSubscribe(t *testing.T) {
	h := NewHub()
	ch := h.Subscribe()
	defer h.Unsubscribe(ch)

	h.Publish("one")
	h.Publish("two")

	if got := <-ch; got != "one" {
		t.Fatalf("first = %q", got)
	}
	if got := <-ch; got != "two" {
		t.Fatalf("second = %q", got)
	}
}

func TestHubDropsWhenSlow(t *testing.T) {
	h := NewHub()
	ch := h.Subscribe()
	defer h.Unsubscribe(ch)

	// fill the buffer and keep going; publishers must never block
	for i := 0; i < cap(ch)+10; i++ {
		h.Publish("evt")
	}
	if len(ch) != cap(ch) {
		t.Fatalf("buffered = %d, want %d", len(ch), cap(ch))
	}
}

func TestMakeEventEnvelope(t *testing.T) {
	s := MakeEvent("req-1", TypeJobSaved, 1, map[string]any{"url": "https://x.test/1"})

	var e Event
	if err := json.Unmarshal([]byte(s), &e); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if e.Type != TypeJobSaved || e.Version != 1 || e.RequestID != "req-1" {
		t.Fatalf("envelope = %+v", e)
	}
	if e.At.IsZero() {
		t.Fatal("At not set")
	}
	var data map[string]string
	if err := json.Unmarshal(e.Data, &data); err != nil || data["url"] != "https://x.test/1" {
		t.Fatalf("data = %s err=%v", e.Data, err)
	}
}
