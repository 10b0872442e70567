package game

import (
	"fmt"
	"math"
	"strings"
	"time"
)

type Difficulty uint8

const (
	Easy Difficulty = iota
	Normal
	Hard
)

var difficulties = [...]struct {
	Name      string
	Window    float64 // judgement window multiplier, wider is easier
	MissLimit int
}{
	Easy:   {Name: "easy", Window: 1.4, MissLimit: 12},
	Normal: {Name: "normal", Window: 1.0, MissLimit: 6},
	Hard:   {Name: "hard", Window: 0.6, MissLimit: 1},
}

var DifficultyNames = []string{"easy", "normal", "hard"}

func ParseDifficulty(name string) (Difficulty, error) {
	for i, d := range difficulties {
		if strings.EqualFold(d.Name, name) {
			return Difficulty(i), nil
		}
	}
	return Normal, fmt.Errorf("unknown difficulty %q", name)
}

func (d Difficulty) String() string {
	if int(d) >= len(difficulties) {
		return "unknown"
	}
	return difficulties[d].Name
}

func (d Difficulty) Window() float64 {
	return difficulties[d].Window
}

func (d Difficulty) MissLimit() int {
	return difficulties[d].MissLimit
}

// Scale widens or narrows a base judgement window.
func (d Difficulty) Scale(window time.Duration) time.Duration {
	return time.Duration(math.Round(float64(window) * d.Window()))
}

func (d Difficulty) Easier() Difficulty {
	if d == Easy {
		return Easy
	}
	return d - 1
}

func (d Difficulty) Harder() Difficulty {
	if d == Hard {
		return Hard
	}
	return d + 1
}
