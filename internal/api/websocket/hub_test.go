package websocket

import "testing"

func TestClientSubscriptionFilter(t *testing.T) {
	c := NewClient("c1", nil, nil)

	if !c.WantsDynasty("any") {
		t.Error("unsubscribed client should receive everything")
	}

	c.setFilter([]string{"d1", "d2"})
	if !c.WantsDynasty("d1") || !c.WantsDynasty("d2") {
		t.Error("subscribed dynasties should match")
	}
	if c.WantsDynasty("d3") {
		t.Error("unsubscribed dynasty should not match")
	}

	c.setFilter(nil)
	if !c.WantsDynasty("d3") {
		t.Error("clearing the filter should mean everything again")
	}
}

func TestClientTrySend(t *testing.T) {
	c := NewClient("c1", nil, nil)

	for i := 0; i < sendBufferSize; i++ {
		if !c.TrySend(Event{DynastyID: "d1"}) {
			t.Fatalf("send %d rejected before the buffer filled", i)
		}
	}
	if c.TrySend(Event{DynastyID: "d1"}) {
		t.Error("send on a full buffer should be rejected, not block")
	}
}

func TestHubBroadcastRespectsFilters(t *testing.T) {
	h := NewHub()

	subscribed := NewClient("sub", nil, h)
	subscribed.setFilter([]string{"d1"})
	other := NewClient("other", nil, h)
	other.setFilter([]string{"d2"})

	h.registerClient(subscribed)
	h.registerClient(other)

	h.broadcastEvent(Event{Type: EventTypeLeaderboardUpdate, DynastyID: "d1", Mode: "career"})

	select {
	case event := <-subscribed.Send:
		if event.DynastyID != "d1" {
			t.Errorf("event DynastyID = %q, want d1", event.DynastyID)
		}
	default:
		t.Error("subscribed client received nothing")
	}

	select {
	case <-other.Send:
		t.Error("client subscribed to a different dynasty received the event")
	default:
	}
}
