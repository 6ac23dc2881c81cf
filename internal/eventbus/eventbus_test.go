package eventbus

import "testing"

func TestBusPublishSubscribe(t *testing.T) {
	bus := New[string]()
	sub := bus.Subscribe(4)
	bus.Publish("ranked")
	if v := <-sub.C; v != "ranked" {
		t.Fatalf("expected ranked got %v", v)
	}
	bus.Unsubscribe(sub)
}

func TestBusDropsWhenSubscriberFull(t *testing.T) {
	bus := New[int]()
	_ = bus.Subscribe(1)
	bus.Publish(1)
	bus.Publish(2)
	if got := bus.Dropped(); got != 1 {
		t.Fatalf("expected 1 dropped event, got %d", got)
	}
}

func TestBusClose(t *testing.T) {
	bus := New[int]()
	s1 := bus.Subscribe(1)
	s2 := bus.Subscribe(1)
	bus.Close()
	if _, ok := <-s1.C; ok {
		t.Fatalf("expected s1 closed")
	}
	if _, ok := <-s2.C; ok {
		t.Fatalf("expected s2 closed")
	}
}

func TestBusUnsubscribeAfterClose(t *testing.T) {
	bus := New[float64]()
	sub := bus.Subscribe(1)
	bus.Close()
	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("panic on Unsubscribe after Close: %v", r)
		}
	}()
	bus.Unsubscribe(sub)
}

func TestBusSubscribeAfterClose(t *testing.T) {
	bus := New[int]()
	bus.Close()
	sub := bus.Subscribe(1)
	if _, ok := <-sub.C; ok {
		t.Fatalf("expected immediately closed channel")
	}
}
