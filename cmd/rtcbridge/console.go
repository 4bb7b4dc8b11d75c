package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/wippyai/rtc-bridge/codec"
	"github.com/wippyai/rtc-bridge/errors"
	"github.com/wippyai/rtc-bridge/host"
	"github.com/wippyai/rtc-bridge/plugin"
	"github.com/wippyai/rtc-bridge/rtc/simengine"
)

const (
	callTimeout = 5 * time.Second
	maxLogLines = 500
	logHeight   = 10
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	channelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	methodStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	logStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(lipgloss.Color("#444444"))
)

func consoleCmd() *cobra.Command {
	var logFile string
	cmd := &cobra.Command{
		Use:   "console",
		Short: "Drive the bridge interactively",
		Long: `Start the bridge with the simulated engine behind an in-memory transport
and call its channels from a terminal UI. Arguments are typed as a JSON
object; events appear in the log pane as they are published.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !term.IsTerminal(int(os.Stdout.Fd())) {
				return fmt.Errorf("console needs a terminal")
			}
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if logFile != "" {
				log, err := newLogger(cfg.Log, logFile)
				if err != nil {
					return err
				}
				defer log.Sync()
				installLogger(log)
			}

			mem := host.NewMemory()
			ctrl := plugin.New(simengine.NewFactory(), mem, cfg.Plugin())
			if _, err := ctrl.Attach(cmd.Context()); err != nil {
				return err
			}
			defer ctrl.Detach(context.Background())

			m := newConsoleModel(ctrl, mem, cfg.Server.TickInterval.Duration)
			defer m.unsubscribe()
			_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
			return err
		},
	}
	cmd.Flags().StringVar(&logFile, "log-file", "", "write logs to this file (logging is off otherwise)")
	return cmd
}

type consoleState int

const (
	stateSelectChannel consoleState = iota
	stateSelectMethod
	stateInputArgs
	stateShowResult
)

type eventMsg host.Event

type tickMsg time.Time

type callResultMsg struct {
	err    error
	result string
}

type consoleModel struct {
	ctrl        *plugin.Controller
	mem         *host.Memory
	events      chan host.Event
	unsubscribe func()
	tickEvery   time.Duration

	channels []string
	methods  []string
	selected int
	channel  string
	method   string

	input  textinput.Model
	log    viewport.Model
	lines  []string
	result string
	err    error
	state  consoleState
}

func newConsoleModel(ctrl *plugin.Controller, mem *host.Memory, tickEvery time.Duration) *consoleModel {
	events := make(chan host.Event, 256)
	unsubscribe := mem.Subscribe(func(ev host.Event) {
		select {
		case events <- ev:
		default:
		}
	})

	ti := textinput.New()
	ti.Placeholder = `{"key": "value"}`
	ti.Prompt = "args: "
	ti.Width = 60

	m := &consoleModel{
		ctrl:        ctrl,
		mem:         mem,
		events:      events,
		unsubscribe: unsubscribe,
		tickEvery:   tickEvery,
		input:       ti,
		log:         viewport.New(80, logHeight),
		state:       stateSelectChannel,
	}
	m.refreshChannels()
	return m
}

func (m *consoleModel) Init() tea.Cmd {
	cmds := []tea.Cmd{m.waitForEvent}
	if m.tickEvery > 0 {
		cmds = append(cmds, m.scheduleTick())
	}
	return tea.Batch(cmds...)
}

func (m *consoleModel) waitForEvent() tea.Msg {
	ev, ok := <-m.events
	if !ok {
		return nil
	}
	return eventMsg(ev)
}

func (m *consoleModel) scheduleTick() tea.Cmd {
	return tea.Tick(m.tickEvery, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m *consoleModel) refreshChannels() {
	m.channels = m.mem.Channels()
	if m.selected >= len(m.channels) {
		m.selected = 0
	}
}

func (m *consoleModel) options() []string {
	if m.state == stateSelectMethod {
		return m.methods
	}
	return m.channels
}

func (m *consoleModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.state == stateInputArgs {
			return m.updateInput(msg)
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.selected < len(m.options())-1 {
				m.selected++
			}

		case "pgup", "pgdown":
			var cmd tea.Cmd
			m.log, cmd = m.log.Update(msg)
			return m, cmd

		case "enter":
			switch m.state {
			case stateSelectChannel:
				if len(m.channels) == 0 {
					break
				}
				m.channel = m.channels[m.selected]
				m.methods = m.ctrl.Methods(m.channel)
				m.selected = 0
				m.state = stateSelectMethod

			case stateSelectMethod:
				if len(m.methods) == 0 {
					break
				}
				m.method = m.methods[m.selected]
				m.input.SetValue("")
				m.input.Focus()
				m.state = stateInputArgs

			case stateShowResult:
				m.backToChannels()
			}

		case "esc":
			switch m.state {
			case stateSelectMethod, stateShowResult:
				m.backToChannels()
			}
		}

	case eventMsg:
		m.appendLog(formatEvent(host.Event(msg)))
		return m, m.waitForEvent

	case tickMsg:
		tickNatives(m.ctrl)
		return m, m.scheduleTick()

	case callResultMsg:
		m.result = msg.result
		m.err = msg.err
		m.state = stateShowResult

	case tea.WindowSizeMsg:
		m.log.Width = msg.Width
	}

	return m, nil
}

func (m *consoleModel) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.input.Blur()
		m.state = stateSelectMethod
		return m, nil
	case "enter":
		m.input.Blur()
		return m, m.call(m.channel, m.method, m.input.Value())
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *consoleModel) backToChannels() {
	m.state = stateSelectChannel
	m.result = ""
	m.err = nil
	m.selected = 0
	m.refreshChannels()
}

func (m *consoleModel) appendLog(line string) {
	m.lines = append(m.lines, line)
	if len(m.lines) > maxLogLines {
		m.lines = m.lines[len(m.lines)-maxLogLines:]
	}
	m.log.SetContent(strings.Join(m.lines, "\n"))
	m.log.GotoBottom()
}

func (m *consoleModel) call(channel, method, raw string) tea.Cmd {
	mem := m.mem
	return func() tea.Msg {
		args, err := parseArgs(raw)
		if err != nil {
			return callResultMsg{err: err}
		}
		ctx, cancel := context.WithTimeout(context.Background(), callTimeout)
		defer cancel()

		r, err := mem.Invoke(ctx, channel, method, args)
		if err != nil {
			return callResultMsg{err: err}
		}
		if !r.OK() {
			return callResultMsg{err: fmt.Errorf("%s (%d): %s", r.Err.Kind, r.Err.Code, r.Err.Message)}
		}
		return callResultMsg{result: formatValue(r.Result, true)}
	}
}

// parseArgs reads a JSON object into call arguments. Empty input is an
// empty argument map.
func parseArgs(raw string) (*codec.Map, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return codec.NewMap(), nil
	}
	var plain map[string]any
	if err := json.Unmarshal([]byte(raw), &plain); err != nil {
		return nil, errors.Wrap(errors.PhaseDecode, errors.KindInvalidInput, err, "arguments must be a JSON object")
	}
	return codec.FromPlain(plain)
}

func formatValue(v any, indent bool) string {
	plain := codec.PlainValue(v)
	var (
		data []byte
		err  error
	)
	if indent {
		data, err = json.MarshalIndent(plain, "", "  ")
	} else {
		data, err = json.Marshal(plain)
	}
	if err != nil {
		return fmt.Sprintf("%v", plain)
	}
	return string(data)
}

func formatEvent(ev host.Event) string {
	return fmt.Sprintf("%s %s.%s %s",
		time.Now().Format("15:04:05.000"),
		channelStyle.Render(ev.Channel),
		methodStyle.Render(ev.Method),
		formatValue(ev.Payload, false))
}

func (m *consoleModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("RTC Bridge"))
	b.WriteString(" ")
	b.WriteString(simengine.DefaultVersion)
	b.WriteString("\n\n")

	switch m.state {
	case stateSelectChannel:
		b.WriteString("Select a channel:\n\n")
		m.writeList(&b, m.channels, channelStyle)
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter open • pgup/pgdown scroll log • q quit"))

	case stateSelectMethod:
		b.WriteString(fmt.Sprintf("Operations on %s:\n\n", channelStyle.Render(m.channel)))
		m.writeList(&b, m.methods, methodStyle)
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter choose • esc back • q quit"))

	case stateInputArgs:
		b.WriteString(fmt.Sprintf("Calling %s.%s\n\n", channelStyle.Render(m.channel), methodStyle.Render(m.method)))
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter call • esc back"))

	case stateShowResult:
		b.WriteString(fmt.Sprintf("Result of %s.%s:\n\n", channelStyle.Render(m.channel), methodStyle.Render(m.method)))
		if m.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		} else {
			b.WriteString(resultStyle.Render(m.result))
		}
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter continue • q quit"))
	}

	b.WriteString("\n")
	b.WriteString(logStyle.Render(m.log.View()))
	return b.String()
}

func (m *consoleModel) writeList(b *strings.Builder, items []string, style lipgloss.Style) {
	for i, item := range items {
		if i == m.selected {
			b.WriteString(selectedStyle.Render("> " + item))
		} else {
			b.WriteString("  " + style.Render(item))
		}
		b.WriteString("\n")
	}
}
