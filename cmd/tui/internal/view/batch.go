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
)

type batchState int

const (
	batchStateLoading batchState = iota
	batchStateForm
	batchStateDone
)

// BatchModel records the same outbound quantity against a list of
// recipients in one shot, one transaction per recipient.
type BatchModel struct {
	CommonModel
	itemService   *item.Service
	ledgerService *ledger.Service

	state batchState
	items []*item.Item
	form  *huh.Form
	err   error

	status string

	// Form bindings
	formItemID     string
	formQty        string
	formRecipients string
}

func NewBatchModel(itemSvc *item.Service, ledgerSvc *ledger.Service) BatchModel {
	return BatchModel{
		itemService:   itemSvc,
		ledgerService: ledgerSvc,
		state:         batchStateLoading,
	}
}

func (m BatchModel) Title() string     { return "Batch Stock Out" }
func (m BatchModel) ShortHelp() string { return "Navigate form | Esc: back" }

func (m BatchModel) Init() tea.Cmd {
	return m.loadItemsCmd()
}

func (m BatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case batchItemsMsg:
		if msg.err != nil {
			m.err = msg.err
			m.state = batchStateDone

			return m, nil
		}

		m.items = msg.items
		m.buildForm()
		m.state = batchStateForm

		return m, m.form.Init()

	case batchSavedMsg:
		m.state = batchStateDone
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
		} else {
			m.status = fmt.Sprintf("Recorded %d outbound movements", len(msg.txs))
		}

		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc || m.state == batchStateDone {
			return m, Back
		}
	}

	if m.state != batchStateForm {
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

func (m BatchModel) View() string {
	switch m.state {
	case batchStateLoading:
		return lipgloss.NewStyle().Padding(2).Render("Loading items...")
	case batchStateDone:
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
		Render("Batch Stock Out\n\n" + m.form.View())

	return lipgloss.NewStyle().Padding(1).Render(panel)
}

func (m *BatchModel) buildForm() {
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

			huh.NewInput().
				Key("quantity").
				Title("Quantity per recipient").
				Value(&m.formQty).
				Validate(func(s string) error {
					n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
					if err != nil || n <= 0 {
						return fmt.Errorf("quantity must be a positive number")
					}
					return nil
				}),

			huh.NewText().
				Key("recipients").
				Title("Recipients").
				Placeholder("one per line").
				Value(&m.formRecipients).
				Validate(func(s string) error {
					if len(splitRecipients(s)) == 0 {
						return fmt.Errorf("at least one recipient is required")
					}
					return nil
				}),
		),
	).WithWidth(60).WithShowHelp(false)
}

func splitRecipients(s string) []string {
	var out []string

	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}

	return out
}

type batchItemsMsg struct {
	items []*item.Item
	err   error
}

func (m BatchModel) loadItemsCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		items, err := m.itemService.List(ctx, item.ListFilter{})
		return batchItemsMsg{items: items, err: err}
	}
}

type batchSavedMsg struct {
	txs []*ledger.Transaction
	err error
}

func (m BatchModel) saveCmd() tea.Cmd {
	itemID, err := uuid.Parse(m.formItemID)
	if err != nil {
		return func() tea.Msg { return batchSavedMsg{err: err} }
	}

	qty, err := strconv.ParseInt(strings.TrimSpace(m.formQty), 10, 64)
	if err != nil {
		return func() tea.Msg { return batchSavedMsg{err: err} }
	}

	params := ledger.BatchOutboundParams{
		ItemID:       itemID,
		Type:         ledger.TypeOut,
		Quantity:     qty,
		Descriptions: splitRecipients(m.formRecipients),
	}

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		txs, err := m.ledgerService.RecordBatchOutbound(ctx, params)
		return batchSavedMsg{txs: txs, err: err}
	}
}
