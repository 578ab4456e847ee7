package main

import (
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/hjkwon/stockroom/cmd/tui/internal/view"
	"github.com/hjkwon/stockroom/internal/config"
	"github.com/hjkwon/stockroom/internal/database"
	"github.com/hjkwon/stockroom/internal/item"
	itemStore "github.com/hjkwon/stockroom/internal/item/store"
	"github.com/hjkwon/stockroom/internal/ledger"
	ledgerStore "github.com/hjkwon/stockroom/internal/ledger/store"
	"github.com/hjkwon/stockroom/internal/report"
	reportStore "github.com/hjkwon/stockroom/internal/report/store"
	"github.com/hjkwon/stockroom/internal/suggest"
	suggestStore "github.com/hjkwon/stockroom/internal/suggest/store"
)

type model struct {
	itemService    *item.Service
	ledgerService  *ledger.Service
	reportService  *report.Service
	suggestService *suggest.Service

	currentView View

	itemsView     view.ItemsModel
	recordView    view.RecordModel
	batchView     view.BatchModel
	movementsView view.MovementsModel
	summaryView   view.SummaryModel
}

type View int

const (
	ViewMenu      View = 0
	ViewItems     View = 1
	ViewRecord    View = 2
	ViewBatch     View = 3
	ViewMovements View = 4
	ViewSummary   View = 5
)

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	itemSvc := item.NewService(itemStore.New(db))
	ledgerSvc := ledger.NewService(ledgerStore.New(db), nil)
	reportSvc := report.NewService(reportStore.New(db), nil)
	suggestSvc := suggest.NewService(suggestStore.New(db))

	return model{
		itemService:    itemSvc,
		ledgerService:  ledgerSvc,
		reportService:  reportSvc,
		suggestService: suggestSvc,
		currentView:    ViewMenu,
		itemsView:      view.NewItemsModel(itemSvc),
		recordView:     view.NewRecordModel(itemSvc, ledgerSvc, suggestSvc),
		batchView:      view.NewBatchModel(itemSvc, ledgerSvc),
		movementsView:  view.NewMovementsModel(ledgerSvc),
		summaryView:    view.NewSummaryModel(reportSvc),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewItems
				m.itemsView = view.NewItemsModel(m.itemService)

				return m, m.itemsView.Init()
			case "2":
				m.currentView = ViewRecord
				m.recordView = view.NewRecordModel(m.itemService, m.ledgerService, m.suggestService)

				return m, m.recordView.Init()
			case "3":
				m.currentView = ViewBatch
				m.batchView = view.NewBatchModel(m.itemService, m.ledgerService)

				return m, m.batchView.Init()
			case "4":
				m.currentView = ViewMovements
				m.movementsView = view.NewMovementsModel(m.ledgerService)

				return m, m.movementsView.Init()
			case "5":
				m.currentView = ViewSummary
				m.summaryView = view.NewSummaryModel(m.reportService)

				return m, m.summaryView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewItems:
		var newModel tea.Model
		newModel, cmd = m.itemsView.Update(msg)
		m.itemsView = newModel.(view.ItemsModel)
	case ViewRecord:
		var newModel tea.Model
		newModel, cmd = m.recordView.Update(msg)
		m.recordView = newModel.(view.RecordModel)
	case ViewBatch:
		var newModel tea.Model
		newModel, cmd = m.batchView.Update(msg)
		m.batchView = newModel.(view.BatchModel)
	case ViewMovements:
		var newModel tea.Model
		newModel, cmd = m.movementsView.Update(msg)
		m.movementsView = newModel.(view.MovementsModel)
	case ViewSummary:
		var newModel tea.Model
		newModel, cmd = m.summaryView.Update(msg)
		m.summaryView = newModel.(view.SummaryModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"Stockroom TUI\n\n" +
				"1. Browse Items\n" +
				"2. Record Movement\n" +
				"3. Batch Stock Out\n" +
				"4. Movement History\n" +
				"5. Weekly Summary\n\n" +
				"q. Quit",
		)
	case ViewItems:
		return m.itemsView.View()
	case ViewRecord:
		return m.recordView.View()
	case ViewBatch:
		return m.batchView.View()
	case ViewMovements:
		return m.movementsView.View()
	case ViewSummary:
		return m.summaryView.View()
	}

	return "Unknown View"
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
