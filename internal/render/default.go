package render

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"git.lost.host/meutraa/mokugyo/internal/game"
	"git.lost.host/meutraa/mokugyo/internal/gimmick"
	"git.lost.host/meutraa/mokugyo/internal/session"
	"git.lost.host/meutraa/mokugyo/internal/theme"
	"golang.org/x/term"
)

const splashFrames = 12

type DefaultRenderer struct {
	Theme theme.Theme

	out         io.Writer
	fd          int
	buffer      strings.Builder
	layout      Layout
	decorations []*decoration
	lastJudged  time.Duration
}

type decoration struct {
	X, Y    int
	Content string
	Frames  int // remaining frames until removed
}

func NewRenderer(th theme.Theme) *DefaultRenderer {
	return &DefaultRenderer{
		Theme:  th,
		out:    os.Stdout,
		fd:     int(os.Stdout.Fd()),
		layout: NewLayout(80, 24),
	}
}

// NewBufferRenderer draws a fixed size screen into w.
func NewBufferRenderer(th theme.Theme, w io.Writer, width, height int) *DefaultRenderer {
	return &DefaultRenderer{
		Theme:  th,
		out:    w,
		fd:     -1,
		layout: NewLayout(width, height),
	}
}

func (r *DefaultRenderer) Init() error {
	if !term.IsTerminal(r.fd) {
		return fmt.Errorf("stdout is not a terminal")
	}
	r.resize()
	fmt.Fprintf(r.out, "%s%s%s",
		"\033[?1049h", // Enable alternate buffer
		"\033[?25l",   // Make the cursor invisible
		"\033[J",      // Clear the screen
	)
	return nil
}

func (r *DefaultRenderer) Deinit() error {
	_, err := fmt.Fprintf(r.out, "%s%s%s",
		"\033[0m",
		"\033[?1049l", // Disable alternate buffer
		"\033[?25h",   // Make the cursor visible
	)
	return err
}

func (r *DefaultRenderer) resize() {
	if r.fd < 0 {
		return
	}
	columns, rows, err := term.GetSize(r.fd)
	if nil != err {
		return
	}
	if columns != r.layout.Width || rows != r.layout.Height {
		r.layout = NewLayout(columns, rows)
	}
}

func (r *DefaultRenderer) AddDecoration(col, row int, content string, frames int) {
	r.decorations = append(r.decorations, &decoration{
		X:       col,
		Y:       row,
		Content: content,
		Frames:  frames,
	})
}

func (r *DefaultRenderer) tickDecorations() {
	nd := make([]*decoration, 0, len(r.decorations))
	for _, d := range r.decorations {
		if d.Frames == 0 {
			continue
		}
		r.Fill(d.Y, d.X, d.Content)
		nd = append(nd, d)
		d.Frames--
	}
	r.decorations = nd
}

func (r *DefaultRenderer) RenderLoop(period time.Duration, frame func() bool) {
	cont := true
	for cont {
		now := time.Now()
		deadline := now.Add(period)

		cont = frame()

		remainingTime := deadline.Sub(time.Now())
		time.Sleep(remainingTime)
	}
}

func (r *DefaultRenderer) Fill(row, column int, message string) {
	if row < 1 || row > r.layout.Height || column < 1 || column > r.layout.Width {
		return
	}
	r.buffer.WriteString("\033[")
	r.buffer.WriteString(strconv.FormatInt(int64(row), 10))
	r.buffer.WriteString(";")
	r.buffer.WriteString(strconv.FormatInt(int64(column), 10))
	r.buffer.WriteString("H")
	r.buffer.WriteString(message)
	r.buffer.WriteString("\033[0m")
}

func (r *DefaultRenderer) center(row int, message string, visible int) {
	r.Fill(row, (r.layout.Width-visible)/2+1, message)
}

func (r *DefaultRenderer) flush() {
	io.WriteString(r.out, r.buffer.String())
	r.buffer.Reset()
}

func (r *DefaultRenderer) Draw(snap session.Snapshot) {
	r.resize()
	r.buffer.WriteString("\033[0m\033[H\033[2J")

	switch snap.Scene {
	case session.Start:
		r.drawStart(snap)
	case session.SettingsScene:
		r.drawSettings(snap)
	case session.Playing:
		r.drawGame(snap)
	case session.GameOver:
		r.drawEnd("GAME OVER", "\033[1;31m", snap)
	case session.Cleared:
		r.drawEnd("CLEAR!", "\033[1;36m", snap)
	}

	r.tickDecorations()
	r.flush()
}

func (r *DefaultRenderer) drawStart(snap session.Snapshot) {
	l := r.layout
	r.center(l.Height/2-4, "\033[1mM O K U G Y O\033[0m", 13)
	r.center(l.Height/2-1, "[Enter] Start   [s] Settings   [q] Quit", 39)
}

// drawBestiary lists the gimmicks seen since the last visit to the title.
func (r *DefaultRenderer) drawBestiary(row, column int, kinds []gimmick.Kind) {
	r.Fill(row, column, "\033[1mGimmicks seen")
	if len(kinds) == 0 {
		r.Fill(row+1, column, "Nothing has happened yet")
		return
	}
	for i, k := range kinds {
		r.Fill(row+1+i, column, fmt.Sprintf("- %-12v %v", k, k.Description()))
	}
}

func (r *DefaultRenderer) drawSettings(snap session.Snapshot) {
	l := r.layout
	row := l.Height/2 - 4
	hazard := "[ ]"
	if snap.Settings.Hazard {
		hazard = "[x]"
	}
	r.center(row, "\033[1mSettings\033[0m", 8)
	r.Fill(row+2, l.Width/2-20, fmt.Sprintf("Difficulty: %-8v (←/→)", snap.Settings.Difficulty))
	r.Fill(row+3, l.Width/2-20, fmt.Sprintf("Offset:     %+6.3fs  ([ / ])", snap.Settings.Offset.Seconds()))
	r.Fill(row+4, l.Width/2-20, fmt.Sprintf("Hazard:     %v gimmick every %v notes (y)", hazard, session.HazardEvery))
	r.Fill(row+6, l.Width/2-20, "[Enter] Done")
}

func (r *DefaultRenderer) drawEnd(title, style string, snap session.Snapshot) {
	l := r.layout
	r.center(l.Height/2-3, style+title+"\033[0m", len(title))
	r.center(l.Height/2-1, fmt.Sprintf("Misses %v/%v", snap.Misses, snap.MissLimit), 12)
	r.center(l.Height/2+1, "[Enter] Restart   [s] Settings   [g] Gimmicks   [t] Title", 56)
	if snap.Bestiary {
		r.drawBestiary(l.Height/2+3, l.Width/2-20, snap.Log)
	}
}

func (r *DefaultRenderer) drawGame(snap session.Snapshot) {
	l := r.layout
	o := snap.Overlay

	style := ""
	if o.Invert > 0 {
		style = "\033[7m"
	}
	border := "│"
	if o.Flash > 0 {
		border = "\033[41m│"
	}

	dark := o.Blackout >= 0.5
	if !dark {
		for row := l.Top; row <= l.Bottom; row++ {
			shift := o.ShakeX + l.TiltShift(row, o.Tilt)
			r.Fill(row+o.ShakeY, l.Left+shift, style+border)
			r.Fill(row+o.ShakeY, l.Right+shift, style+border)
		}
		hit := strings.Repeat(r.Theme.RenderHitField(), l.Right-l.Left-1)
		r.Fill(l.HitRow+o.ShakeY, l.Left+1+o.ShakeX, style+hit)

		for _, n := range snap.Notes {
			row := l.NoteRow(n.Y)
			col := l.Lane + o.ShakeX + l.TiltShift(row, o.Tilt) + o.NoteOffset(n.Spawn, n.Y)
			r.Fill(row+o.ShakeY, col, style+r.Theme.RenderNote(n.Decoy, o.Ghost))
		}
	}

	if snap.Judgement != nil {
		if snap.JudgementLeft > r.lastJudged {
			r.AddDecoration(l.Lane-1, l.HitRow+1, "\033[1m\\|/", splashFrames)
		}
		r.Fill(l.HitRow-2+o.ShakeY, l.Lane-len(snap.Judgement.Name)/2+o.ShakeX, r.Theme.RenderJudgement(*snap.Judgement))
		r.lastJudged = snap.JudgementLeft
	} else {
		r.lastJudged = 0
	}

	r.center(1, fmt.Sprintf("\033[1;33mCOMBO %v", snap.Combo), 6+len(strconv.Itoa(snap.Combo)))
	r.center(2, fmt.Sprintf("\033[31mMISS %v/%v", snap.Misses, snap.MissLimit), 8)

	if snap.Specter.Shown() {
		lines := r.Theme.RenderSpecter(snap.Specter.Scale())
		for i, line := range lines {
			r.Fill(l.SpecterRow-len(lines)/2+i, l.SpecterCol-4, line)
		}
	}

	r.drawStats(snap)

	if snap.Countdown > 0 {
		r.center(l.Height/2, fmt.Sprintf("\033[1mStart in %v", int(math.Ceil(snap.Countdown.Seconds()))), 10)
	}
	if snap.Bestiary {
		r.drawBestiary(l.Bottom-len(snap.Log)-1, l.Side, snap.Log)
	}
	if snap.NewGimmick {
		notice := " New gimmick appeared "
		r.Fill(l.Height, l.Width-len(notice), "\033[1;31;47m"+notice)
	}
}

func (r *DefaultRenderer) drawStats(snap session.Snapshot) {
	l := r.layout
	row := l.Top + 1
	r.Fill(row, l.Side, fmt.Sprintf("Mean:  %6.2f ms", float64(snap.Mean)/float64(time.Millisecond)))
	r.Fill(row+1, l.Side, fmt.Sprintf("Stdev: %6.2f ms", float64(snap.Stdev)/float64(time.Millisecond)))
	for i, j := range game.Judgements {
		r.Fill(row+3+i, l.Side, r.Theme.RenderJudgement(j)+fmt.Sprintf(" %v", snap.Counts[i]))
	}
	row += 4 + len(game.Judgements)
	for i, e := range snap.Effects {
		r.Fill(row+i, l.Side, effectLine(e))
	}
}

func effectLine(e gimmick.Status) string {
	return fmt.Sprintf("\033[2m%-12v %4.1fs", e.Kind, e.Remaining.Seconds())
}

// Finale holds the frame loop for the closing sequence.
func (r *DefaultRenderer) Finale() {
	l := r.layout
	steps := []struct {
		screen string
		delay  time.Duration
	}{
		{"\033[41m\033[2J", 140 * time.Millisecond},
		{"\033[0m\033[2J", 140 * time.Millisecond},
		{"\033[?5h", 260 * time.Millisecond},
		{"\033[?5l", 220 * time.Millisecond},
	}
	lines := r.Theme.RenderSpecter(2)
	for _, step := range steps {
		r.buffer.WriteString(step.screen)
		for i, line := range lines {
			r.Fill(l.Height/2-len(lines)/2+i, l.Width/2-8, line)
		}
		r.flush()
		time.Sleep(step.delay)
	}
}
