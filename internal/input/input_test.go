package input

import (
	"testing"

	"github.com/eiannone/keyboard"
)

var mapTests = map[keyboard.KeyEvent]Action{
	{Key: keyboard.KeySpace}:      Hit,
	{Rune: 'j'}:                   Hit,
	{Key: keyboard.KeyEnter}:      Confirm,
	{Key: keyboard.KeyEsc}:        Back,
	{Key: keyboard.KeyArrowLeft}:  Left,
	{Key: keyboard.KeyArrowRight}: Right,
	{Key: keyboard.KeyCtrlC}:      Quit,
	{Rune: '['}:                   OffsetDown,
	{Rune: ']'}:                   OffsetUp,
	{Rune: 'y'}:                   Hazard,
	{Rune: 'g'}:                   Bestiary,
	{Rune: 'x'}:                   None,
}

func TestMap(t *testing.T) {
	for key, expected := range mapTests {
		if action := Map(key); action != expected {
			t.Log("key     ", key)
			t.Log("action  ", action)
			t.Log("expected", expected)
			t.Fail()
		}
	}
}

func TestQueueDrainOrder(t *testing.T) {
	var q Queue
	if q.Drain() != nil {
		t.Fatal("empty queue drained something")
	}
	q.Push(Hit, Confirm)
	q.Push(Hit)
	actions := q.Drain()
	if len(actions) != 3 || actions[0] != Hit || actions[1] != Confirm || actions[2] != Hit {
		t.Errorf("drained %v", actions)
	}
	if q.Len() != 0 {
		t.Errorf("queue not empty after drain")
	}
	q.Push(Back)
	if actions[0] != Hit {
		t.Error("drained slice aliased the queue")
	}
}
