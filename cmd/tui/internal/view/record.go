package view

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/hjkwon/stockroom/internal/item"
	"github.com/hjkwon/stockroom/internal/ledger"
	"github.com/hjkwon/stockroom/internal/suggest"
)

type recordState int

const (
	recordStateLoading recordState = iota
	recordStateForm
	recordStateDone
)

type RecordModel struct {
	CommonModel
	itemService    *item.Service
	ledgerService  *ledger.Service
	suggestService *suggest.Service

	state recordState
	items []*item.Item
	form  *huh.Form
	err   error

	status string

	// Form bindings
	formItemID string
	formType   string
	formQty    string
	formDesc   string
}

func NewRecordModel(itemSvc *item.Service, ledgerSvc *ledger.Service, suggestSvc *suggest.Service) RecordModel {
	return RecordModel{
		itemService:    itemSvc,
		ledgerService:  ledgerSvc,
		suggestService: suggestSvc,
		state:          recordStateLoading,
		formType:       string(ledger.TypeOut),
	}
}

func (m RecordModel) Title() string     { return "Record Movement" }
func (m RecordModel) ShortHelp() string { return "Navigate form | Esc: back" }

func (m RecordModel) Init() tea.Cmd {
	return m.loadItemsCmd()
}

func (m RecordModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case recordItemsMsg:
		if msg.err != nil {
			m.err = msg.err
			m.state = recordStateDone

			return m, nil
		}

		m.items = msg.items
		m.buildForm()
		m.state = recordStateForm

		return m, m.form.Init()

	case recordSavedMsg:
		m.state = recordStateDone
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
		} else {
			m.status = fmt.Sprintf("Recorded %s of %s", msg.tx.Type, FormatQuantity(msg.tx.Quantity, unitFor(m.items, msg.tx.ItemID)))
		}

		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc || m.state == recordStateDone {
			return m, Back
		}
	}

	if m.state != recordStateForm {
		return m, nil
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

func (m RecordModel) View() string {
	switch m.state {
	case recordStateLoading:
		return lipgloss.NewStyle().Padding(2).Render("Loading items...")
	case recordStateDone:
		msg := m.status
		if m.err != nil {
			msg = fmt.Sprintf("Error: %v", m.err)
		}

		return lipgloss.NewStyle().Padding(2).Render(msg + "\n\nPress any key to return")
	}

	panel := lipgloss.NewStyle().
		Padding(1, 2).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("63")).
		Render("Record Movement\n\n" + m.form.View())

	return lipgloss.NewStyle().Padding(1).Render(panel)
}

func (m *RecordModel) buildForm() {
	itemOptions := make([]huh.Option[string], 0, len(m.items))
	for _, it := range m.items {
		label := fmt.Sprintf("%s (%s)", it.Name, FormatQuantity(it.CurrentStock, it.Unit))
		itemOptions = append(itemOptions, huh.NewOption(label, it.ID.String()))
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("item").
				Title("Item").
				Options(itemOptions...).
				Value(&m.formItemID),

			huh.NewSelect[string]().
				Key("type").
				Title("Type").
				Options(
					huh.NewOption("OUT (stock out)", string(ledger.TypeOut)),
					huh.NewOption("IN (stock in)", string(ledger.TypeIn)),
				).
				Value(&m.formType),

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
				Placeholder("who or what this goes to").
				SuggestionsFunc(func() []string {
					id, err := uuid.Parse(m.formItemID)
					if err != nil {
						return nil
					}

					ctx, cancel := DbCtx()
					defer cancel()

					suggestions, err := m.suggestService.ForItem(ctx, id)
					if err != nil {
						return nil
					}

					return suggestions
				}, &m.formItemID).
				Value(&m.formDesc),
		),
	).WithWidth(60).WithShowHelp(false)
}

type recordItemsMsg struct {
	items []*item.Item
	err   error
}

func (m RecordModel) loadItemsCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		items, err := m.itemService.List(ctx, item.ListFilter{})
		return recordItemsMsg{items: items, err: err}
	}
}

type recordSavedMsg struct {
	tx  *ledger.Transaction
	err error
}

func (m RecordModel) saveCmd() tea.Cmd {
	itemID, err := uuid.Parse(m.formItemID)
	if err != nil {
		return func() tea.Msg { return recordSavedMsg{err: err} }
	}

	qty, err := strconv.ParseInt(strings.TrimSpace(m.formQty), 10, 64)
	if err != nil {
		return func() tea.Msg { return recordSavedMsg{err: err} }
	}

	params := ledger.RecordParams{
		ItemID:      itemID,
		Type:        ledger.Type(m.formType),
		Quantity:    qty,
		Description: strings.TrimSpace(m.formDesc),
	}

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		tx, err := m.ledgerService.Record(ctx, params)
		return recordSavedMsg{tx: tx, err: err}
	}
}

func unitFor(items []*item.Item, id uuid.UUID) string {
	for _, it := range items {
		if it.ID == id {
			return it.Unit
		}
	}

	return ""
}
