package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"govchat/internal/domain"
)

// ChatPort is the TUI-facing subset of the chatbot pipeline.
type ChatPort interface {
	Answer(ctx context.Context, conversationID, text string) (domain.Response, error)
}

// Model is the Bubble Tea model for the chat session.
type Model struct {
	bot            ChatPort
	conversationID string
	input          textinput.Model
	viewport       viewport.Model
	transcript     []string
	status         string
	ready          bool
}

// New creates a new chat TUI bound to one conversation.
func New(bot ChatPort, conversationID string) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Ask about a government service (Tamil or English)"
	ti.Focus()
	ti.CharLimit = 0
	vp := viewport.New(0, 0)
	return Model{
		bot:            bot,
		conversationID: conversationID,
		input:          ti,
		viewport:       vp,
		status:         "Ready. Type a question and press Enter.",
	}
}

// Init initializes the model (text input cursor blink).
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update handles key and window events and updates the view state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		_, th := transcriptBoxStyle.GetFrameSize()
		_, qh := queryBoxStyle.GetFrameSize()
		reserved := 1 + 1 + qh + 1 // header, status, input frame, spacer
		vh := msg.Height - reserved
		if vh < 3 {
			vh = 3
		}
		m.viewport.Width = max(20, msg.Width)
		m.viewport.Height = max(3, vh-th)
		m.viewport.SetContent(m.renderTranscript())
		return m, nil
	case tea.KeyMsg:
		// Global quits
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyCtrlD {
			return m, tea.Quit
		}
		switch msg.String() {
		case "enter":
			q := strings.TrimSpace(m.input.Value())
			if q != "" {
				resp, err := m.bot.Answer(context.Background(), m.conversationID, q)
				if err != nil {
					m.status = "Error: " + err.Error()
				} else {
					m.transcript = append(m.transcript,
						userStyle.Render("You: ")+q,
						botStyle.Render("Bot: ")+resp.Text,
						"",
					)
					m.status = "Reply type: " + string(resp.Type)
					m.input.SetValue("")
				}
				m.viewport.SetContent(m.renderTranscript())
				m.viewport.GotoBottom()
				return m, nil
			}
		case "up":
			m.viewport.LineUp(3)
			return m, nil
		case "down":
			m.viewport.LineDown(3)
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the TUI layout and the conversation transcript.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := lipgloss.NewStyle().Bold(true).Render("Government Services Assistant")
	transcript := transcriptBoxStyle.Render(m.viewport.View())
	input := queryBoxStyle.Render(m.input.View())
	status := lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Render(m.status)
	return header + "\n" + transcript + "\n" + input + "\n" + status
}

func (m Model) renderTranscript() string {
	if len(m.transcript) == 0 {
		return "No messages yet. வணக்கம்!"
	}
	return strings.Join(m.transcript, "\n")
}

var (
	transcriptBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	queryBoxStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	userStyle          = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	botStyle           = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)
)

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
