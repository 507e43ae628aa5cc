package main

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fury1991/my-sport-challenge/challenge"
	"github.com/fury1991/my-sport-challenge/scoring"
)

type state int

const (
	stateLoadingChallenges state = iota
	statePickChallenge
	stateLoadingSnapshot
	stateLeaderboard
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#2dd4bf"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#3498db"))
	errStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#e74c3c"))
)

type challengesLoadedMsg struct {
	infos      []challenge.Info
	currentKey string
}

type snapshotLoadedMsg struct {
	snap *challenge.Snapshot
}

type errMsg struct {
	err error
}

type model struct {
	srvc *challenge.Service

	state   state
	err     error
	spinner spinner.Model

	challenges []challenge.Info
	cursor     int

	snap  *challenge.Snapshot
	board table.Model
}

func initialModel(srvc *challenge.Service) model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#3498db"))

	return model{
		srvc:    srvc,
		state:   stateLoadingChallenges,
		spinner: s,
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, loadChallenges(m.srvc))
}

func loadChallenges(srvc *challenge.Service) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		infos, err := srvc.Challenges(ctx)
		if err != nil {
			return errMsg{err}
		}
		currentKey, err := srvc.CurrentChallenge(ctx)
		if err != nil {
			return errMsg{err}
		}
		return challengesLoadedMsg{infos: infos, currentKey: currentKey}
	}
}

func loadSnapshot(srvc *challenge.Service, key string) tea.Cmd {
	return func() tea.Msg {
		snap, err := srvc.Switch(context.Background(), key)
		if err != nil {
			return errMsg{err}
		}
		return snapshotLoadedMsg{snap: snap}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		}
	case errMsg:
		m.err = msg.err
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case challengesLoadedMsg:
		m.challenges = msg.infos
		m.cursor = 0
		for i, info := range msg.infos {
			if info.Key == msg.currentKey {
				m.cursor = i
			}
		}
		m.state = statePickChallenge
		return m, nil
	case snapshotLoadedMsg:
		m.snap = msg.snap
		m.board = leaderboardTable(msg.snap)
		m.state = stateLeaderboard
		return m, nil
	}

	switch m.state {
	case statePickChallenge:
		return m.updatePicker(msg)
	case stateLeaderboard:
		return m.updateLeaderboard(msg)
	}
	return m, nil
}

func (m model) updatePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.challenges)-1 {
				m.cursor++
			}
		case "enter":
			if len(m.challenges) == 0 {
				return m, nil
			}
			m.state = stateLoadingSnapshot
			return m, tea.Batch(
				m.spinner.Tick,
				loadSnapshot(m.srvc, m.challenges[m.cursor].Key),
			)
		}
	}
	return m, nil
}

func (m model) updateLeaderboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "b":
			m.state = statePickChallenge
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.board, cmd = m.board.Update(msg)
	return m, cmd
}

func leaderboardTable(snap *challenge.Snapshot) table.Model {
	rows := []table.Row{}
	for i, row := range snap.Standings.Leaderboard() {
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			row.Name,
			scoring.FormatPoints(row.TotalPoints),
		})
	}

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "#", Width: 4},
			{Title: "Name", Width: 24},
			{Title: "Punkte", Width: 10},
		}),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(len(rows)+1),
	)
	return t
}

func (m model) View() string {
	if m.err != nil {
		return errStyle.Render(fmt.Sprintf("Error: %v", m.err)) + "\n\nPress q to quit.\n"
	}

	switch m.state {
	case stateLoadingChallenges:
		return fmt.Sprintf("%s Loading challenges...\n", m.spinner.View())
	case statePickChallenge:
		s := titleStyle.Render("Sport Challenge") + "\n\nSelect a challenge:\n\n"
		for i, info := range m.challenges {
			line := fmt.Sprintf("  %s", info.Label)
			if i == m.cursor {
				line = selectedStyle.Render(fmt.Sprintf("> %s", info.Label))
			}
			s += line + "\n"
		}
		s += "\nenter: open, q: quit\n"
		return s
	case stateLoadingSnapshot:
		return fmt.Sprintf("%s Loading leaderboard...\n", m.spinner.View())
	case stateLeaderboard:
		s := titleStyle.Render(m.snap.Challenge.Label) + "\n\n"
		s += m.board.View() + "\n"
		s += "\nb: back, q: quit\n"
		return s
	default:
		return ""
	}
}
