package input

import (
	"fmt"
	"log"

	"github.com/eiannone/keyboard"
)

type DefaultInput struct {
	keys <-chan keyboard.KeyEvent
}

func Open(buffer int) (*DefaultInput, error) {
	keys, err := keyboard.GetKeys(buffer)
	if nil != err {
		return nil, fmt.Errorf("unable to open keyboard: %w", err)
	}
	return &DefaultInput{keys: keys}, nil
}

func (d *DefaultInput) Close() error {
	return keyboard.Close()
}

// Poll takes the key events that arrived so far without blocking.
func (d *DefaultInput) Poll() []Action {
	var actions []Action
	for i := len(d.keys); i > 0; i-- {
		key := <-d.keys
		if nil != key.Err {
			log.Println("keyboard error", key.Err)
			continue
		}
		if action := Map(key); action != None {
			actions = append(actions, action)
		}
	}
	return actions
}

func Map(key keyboard.KeyEvent) Action {
	switch key.Key {
	case keyboard.KeySpace:
		return Hit
	case keyboard.KeyEnter:
		return Confirm
	case keyboard.KeyEsc:
		return Back
	case keyboard.KeyArrowLeft:
		return Left
	case keyboard.KeyArrowRight:
		return Right
	case keyboard.KeyCtrlC:
		return Quit
	}
	switch key.Rune {
	case ' ', 'j', 'f':
		return Hit
	case 's':
		return Settings
	case 'g':
		return Bestiary
	case 't':
		return Title
	case '[':
		return OffsetDown
	case ']':
		return OffsetUp
	case 'y':
		return Hazard
	case 'q':
		return Quit
	}
	return None
}
