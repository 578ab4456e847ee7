package view

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/hjkwon/stockroom/internal/ledger"
)

type movementsState int

const (
	movementsStateBrowse movementsState = iota
	movementsStateEdit
)

type MovementsModel struct {
	CommonModel
	ledgerService *ledger.Service

	state movementsState
	table table.Model
	txs   []*ledger.Transaction
	form  *huh.Form

	// Filter cycling
	typeFilterIdx int

	filter  ledger.ListFilter
	loading bool
	err     error
	status  string

	// Form bindings
	formQty  string
	formDesc string
}

func NewMovementsModel(ledgerSvc *ledger.Service) MovementsModel {
	columns := []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Item", Width: 28},
		{Title: "Type", Width: 5},
		{Title: "Qty", Width: 8},
		{Title: "Description", Width: 35},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return MovementsModel{
		ledgerService: ledgerSvc,
		table:         t,
		filter:        ledger.ListFilter{},
		loading:       true,
	}
}

func (m MovementsModel) Title() string { return "Movement History" }
func (m MovementsModel) ShortHelp() string {
	if m.state == movementsStateEdit {
		return "Navigate form | Esc: cancel"
	}
	return "Esc: back | e: edit | x: delete | t: type filter | r: refresh"
}

func (m MovementsModel) Init() tea.Cmd {
	return m.loadTxsCmd()
}

func (m MovementsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadMovementsMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.txs = msg.txs
		m.refreshTable()
		return m, nil

	case movementSavedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
		} else {
			m.status = ""
		}
		m.state = movementsStateBrowse
		m.form = nil
		m.table.Focus()
		return m, m.loadTxsCmd()

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	switch m.state {
	case movementsStateBrowse:
		return m.updateBrowse(msg)
	case movementsStateEdit:
		return m.updateEdit(msg)
	}

	return m, nil
}

func (m MovementsModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadTxsCmd()
		case "e":
			return m.enterEditMode()
		case "x":
			return m, m.deleteCmd()
		case "t":
			m.typeFilterIdx = (m.typeFilterIdx + 1) % 3
			m.applyFilter()
			return m, m.loadTxsCmd()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m MovementsModel) enterEditMode() (tea.Model, tea.Cmd) {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.txs) {
		return m, nil
	}

	tx := m.txs[idx]
	m.formQty = strconv.FormatInt(tx.Quantity, 10)
	m.formDesc = tx.Description

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("quantity").
				Title("Quantity").
				Value(&m.formQty).
				Validate(func(s string) error {
					n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
					if err != nil || n <= 0 {
						return fmt.Errorf("quantity must be a positive number")
					}
					return nil
				}),

			huh.NewInput().
				Key("description").
				Title("Description").
				Value(&m.formDesc),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = movementsStateEdit
	m.table.Blur()
	return m, m.form.Init()
}

func (m MovementsModel) updateEdit(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = movementsStateBrowse
			m.form = nil
			m.table.Focus()
			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	return m, m.saveCmd()
}

func (m MovementsModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading movements...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	typeLabels := []string{"All", "IN", "OUT"}

	header := fmt.Sprintf("Filter: [t] Type: %s", activeStyle(typeLabels[m.typeFilterIdx]))

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		tableView,
	)

	if m.state == movementsStateEdit && m.form != nil {
		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(48).
			Render("Edit Movement\n\n" + m.form.View())

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func activeStyle(s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Render(s)
}

func (m *MovementsModel) applyFilter() {
	switch m.typeFilterIdx {
	case 1:
		m.filter.Type = new(ledger.TypeIn)
	case 2:
		m.filter.Type = new(ledger.TypeOut)
	default:
		m.filter.Type = nil
	}
}

func (m *MovementsModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.txs))
	for _, tx := range m.txs {
		name, unit := "", ""
		if tx.Item != nil {
			name = tx.Item.Name
			unit = tx.Item.Unit
		}
		rows = append(rows, table.Row{
			FormatDate(tx.CreatedAt),
			name,
			string(tx.Type),
			FormatQuantity(tx.Quantity, unit),
			tx.Description,
		})
	}
	m.table.SetRows(rows)
}

// Messages

type loadMovementsMsg struct {
	txs []*ledger.Transaction
	err error
}

func (m MovementsModel) loadTxsCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		txs, err := m.ledgerService.List(ctx, m.filter)
		return loadMovementsMsg{txs: txs, err: err}
	}
}

type movementSavedMsg struct {
	err error
}

func (m MovementsModel) saveCmd() tea.Cmd {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.txs) {
		return nil
	}

	tx := m.txs[idx]

	qty, err := strconv.ParseInt(strings.TrimSpace(m.formQty), 10, 64)
	if err != nil {
		return func() tea.Msg { return movementSavedMsg{err: err} }
	}

	desc := m.formDesc

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		_, err := m.ledgerService.Edit(ctx, tx.ID, ledger.EditParams{
			Quantity:    qty,
			Description: desc,
		})

		return movementSavedMsg{err: err}
	}
}

func (m MovementsModel) deleteCmd() tea.Cmd {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.txs) {
		return nil
	}

	tx := m.txs[idx]

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		return movementSavedMsg{err: m.ledgerService.Delete(ctx, tx.ID)}
	}
}
