package main

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/san-kum/inttrig/trig"
)

var (
	waveCyan  = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	waveWhite = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	waveDim   = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
)

func newWaveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "wave",
		Short: "live terminal view of a rotating unit vector driven by the integer kernel",
		RunE:  runWave,
	}
}

func runWave(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig("wave")
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("n") {
		cfg.N = tableN
	}
	k, err := kernelForN(cfg.N)
	if err != nil {
		return err
	}

	step := uint16(cfg.SweepStep)
	if step == 0 {
		step = 64
	}

	p := tea.NewProgram(newWaveModel(k, step), tea.WithAltScreen())
	_, err = p.Run()
	return err
}

type waveTickMsg time.Time

func waveTick() tea.Cmd {
	return tea.Tick(33*time.Millisecond, func(t time.Time) tea.Msg { return waveTickMsg(t) })
}

type waveModel struct {
	k      *trig.Kernel
	angle  uint16
	step   uint16
	paused bool
	width  int
	height int

	sinHistory []int16
}

func newWaveModel(k *trig.Kernel, step uint16) waveModel {
	return waveModel{
		k:          k,
		step:       step,
		width:      80,
		height:     24,
		sinHistory: make([]int16, 0, 80),
	}
}

func (m waveModel) Init() tea.Cmd { return waveTick() }

func (m waveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ", "p":
			m.paused = !m.paused
		case "+", "=":
			m.step *= 2
			if m.step == 0 {
				m.step = 1
			}
		case "-", "_":
			if m.step > 1 {
				m.step /= 2
			}
		}
		return m, nil
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case waveTickMsg:
		if !m.paused {
			m.angle += m.step
			m.sinHistory = append(m.sinHistory, m.k.Sin(m.angle))
			if len(m.sinHistory) > 80 {
				m.sinHistory = m.sinHistory[1:]
			}
		}
		return m, waveTick()
	}
	return m, nil
}

func (m waveModel) View() string {
	cw := m.width - 6
	ch := m.height - 10
	if cw < 40 {
		cw = 40
	}
	if ch < 12 {
		ch = 12
	}

	canvas := make([][]rune, ch)
	for i := range canvas {
		canvas[i] = make([]rune, cw)
		for j := range canvas[i] {
			canvas[i][j] = ' '
		}
	}

	sin, cos := m.k.SinCos(m.angle)
	cx, cy := cw/2, ch/2
	radius := float64(minInt(cw, 2*ch)) * 0.42
	vx := cx + int(radius*float64(cos)/16384)
	vy := cy - int(radius*float64(sin)/16384*0.5)

	waveDrawCircle(canvas, m.k, cx, cy, radius, cw, ch)
	waveDrawLine(canvas, cw, ch, cx, cy, vx, vy)
	waveSet(canvas, vx, vy, '●', cw, ch)
	waveSet(canvas, cx, cy, '+', cw, ch)

	var b strings.Builder
	b.WriteString("\n   " + waveCyan.Render(fmt.Sprintf("inttrig wave  (N=%d)", m.k.N())) + "\n\n")

	for _, row := range canvas {
		b.WriteString("   " + string(row) + "\n")
	}

	b.WriteString(fmt.Sprintf("\n   angle=%d  sin=%d  cos=%d  step=%d\n",
		m.angle&0x3FFF, sin, cos, m.step))

	if len(m.sinHistory) > 1 {
		b.WriteString("   " + waveDim.Render("sin ") + waveCyan.Render(waveSparkline(m.sinHistory)) + "\n")
	}

	status := "running"
	if m.paused {
		status = "paused"
	}
	b.WriteString("\n" + waveDim.Render(fmt.Sprintf("   %s   space pause  ±speed  q quit", status)) + "\n")

	return b.String()
}

// waveDrawCircle traces the display circle's outline using the kernel's
// own SinCos at evenly spaced angles, the same integer path that drives
// the rotating vector — no floating trig anywhere in this view.
func waveDrawCircle(canvas [][]rune, k *trig.Kernel, cx, cy int, radius float64, w, h int) {
	const steps = 96
	const stepAngle = 16384 / steps
	for i := 0; i < steps; i++ {
		sin, cos := k.SinCos(uint16(i * stepAngle))
		x := cx + int(radius*float64(cos)/16384)
		y := cy - int(radius*float64(sin)/16384*0.5)
		waveSet(canvas, x, y, '·', w, h)
	}
}

func waveDrawLine(canvas [][]rune, w, h, x1, y1, x2, y2 int) {
	dx := waveAbs(x2 - x1)
	dy := waveAbs(y2 - y1)
	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}
	err := dx - dy
	for {
		waveSet(canvas, x1, y1, '─', w, h)
		if x1 == x2 && y1 == y2 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

func waveSet(canvas [][]rune, x, y int, c rune, w, h int) {
	if x >= 0 && x < w && y >= 0 && y < h {
		canvas[y][x] = c
	}
}

func waveAbs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func waveSparkline(data []int16) string {
	chars := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}
	var sb strings.Builder
	for _, v := range data {
		idx := int((int32(v) + 16384) * 7 / 32768)
		if idx < 0 {
			idx = 0
		}
		if idx > 7 {
			idx = 7
		}
		sb.WriteRune(chars[idx])
	}
	return sb.String()
}
