package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-leave-tracker/internal/logger"
	"github.com/MKhiriev/go-leave-tracker/internal/page"
	"github.com/MKhiriev/go-leave-tracker/internal/service"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type pageMode int

const (
	modeList pageMode = iota
	modeForm
	modeConfirmDelete
)

// copyToClipboard is replaced in tests; the system clipboard is not
// available on headless machines.
var copyToClipboard = clipboard.WriteAll

// LeavePageModel is the terminal leave page: the create form, the list with
// delete and copy actions, and the side panel with balance and sign-in state.
//
// The list itself lives in [service.LeaveListService]; the model rereads its
// snapshot on every tick so refetches done by the background worker show up
// without user input.
type LeavePageModel struct {
	ctx    context.Context
	leaves service.LeaveListService
	auth   service.ClientAuthService
	info   service.ClientInfoService
	logger *logger.Logger

	mode    pageMode
	cursor  int
	spinner spinner.Model
	form    leaveFormModel

	snapshot service.LeaveListSnapshot
	panel    sidePanelMsg

	createError string
	deleteError string
	status      string

	// tickID identifies the live snapshot tick chain. Leaving the page
	// breaks the chain, so returning to it starts a new one.
	tickID int
}

func NewLeavePageModel(ctx context.Context, services *service.ClientServices, logger *logger.Logger) *LeavePageModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return &LeavePageModel{
		ctx:     ctx,
		leaves:  services.LeaveList,
		auth:    services.AuthService,
		info:    services.InfoService,
		logger:  logger,
		spinner: s,
		form:    newLeaveFormModel(),
	}
}

func (m *LeavePageModel) Init() tea.Cmd {
	m.snapshot = m.leaves.Snapshot()
	return tea.Batch(m.cmdRefresh(), m.cmdSidePanel(), m.tickSnapshot(), m.spinner.Tick)
}

func (m *LeavePageModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case snapshotTickMsg:
		if msg.id != m.tickID {
			return m, nil
		}
		m.readSnapshot()
		return m, m.tickSnapshot()
	case refreshDoneMsg:
		m.readSnapshot()
		return m, nil
	case sidePanelMsg:
		m.panel = msg
		return m, nil
	case sessionChangedMsg:
		m.tickID++
		m.readSnapshot()
		return m, tea.Batch(m.cmdSidePanel(), m.tickSnapshot(), m.spinner.Tick)
	case createDoneMsg:
		m.form.submitting = false
		if msg.err != nil {
			m.createError = page.CreateErrorMessage(msg.err)
			return m, nil
		}
		m.createError = ""
		m.form = newLeaveFormModel()
		m.mode = modeList
		m.readSnapshot()
		return m, m.cmdSidePanel()
	case deleteDoneMsg:
		m.deleteError = page.DeleteErrorMessage(msg.err)
		m.readSnapshot()
		if msg.err != nil {
			return m, nil
		}
		return m, m.cmdSidePanel()
	case copiedMsg:
		if msg.err != nil {
			m.status = "Copy failed: " + msg.err.Error()
		} else {
			m.status = "Copied to clipboard"
		}
		return m, clearStatusAfter(statusTTL)
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	switch {
	case m.mode == modeForm:
		return m.updateForm(msg)
	case !ok:
		return m, nil
	case m.mode == modeConfirmDelete:
		return m.updateConfirmDelete(keyMsg)
	default:
		return m.updateList(keyMsg)
	}
}

func (m *LeavePageModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, keys.down):
		if m.cursor < len(m.snapshot.Leaves)-1 {
			m.cursor++
		}
	case key.Matches(msg, keys.newItem):
		m.mode = modeForm
		m.createError = ""
		return m, textinput.Blink
	case key.Matches(msg, keys.refresh):
		return m, m.cmdRefresh()
	case key.Matches(msg, keys.delete):
		if _, ok := m.selected(); ok {
			m.mode = modeConfirmDelete
		}
	case key.Matches(msg, keys.copy):
		if row, ok := m.selected(); ok {
			return m, cmdCopy(row)
		}
	case key.Matches(msg, keys.auth):
		if m.auth.Session().SignedIn {
			return m, m.cmdSignOut()
		}
		return m, func() tea.Msg { return NavigateTo{Page: pageSignIn} }
	}
	return m, nil
}

func (m *LeavePageModel) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		m.mode = modeList
		row, ok := m.selected()
		if !ok {
			return m, nil
		}
		return m, m.cmdDelete(row.ID)
	case key.Matches(msg, keys.no):
		m.mode = modeList
	}
	return m, nil
}

func (m *LeavePageModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.mode = modeList
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.form.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.form.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.form.submitting {
				return m, nil
			}
			m.form.submitting = true
			return m, m.cmdCreate(m.form.form())
		}
	}

	var cmd tea.Cmd
	m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)
	return m, cmd
}

// view assembles the shared page view from the model state.
func (m *LeavePageModel) view() page.View {
	v := page.View{
		Rows:        page.NewRows(m.snapshot.Leaves),
		Loading:     m.snapshot.Loading,
		Balance:     m.panel.balance,
		Session:     m.panel.session,
		CreateError: m.createError,
		DeleteError: m.deleteError,
		Form:        m.form.form(),
		Version:     m.panel.version,
	}
	if m.snapshot.Err != nil {
		v.ListError = humanizeServerUnavailableError(m.snapshot.Err)
	}
	return v
}

func (m *LeavePageModel) View() string {
	v := m.view()

	var main strings.Builder
	if m.mode == modeForm {
		main.WriteString(m.form.View())
		if v.CreateError != "" {
			main.WriteString("\n")
			main.WriteString(errorStyle.Render(v.CreateError))
		}
		main.WriteString("\n\n")
	}

	main.WriteString(renderLeaveList(v, m.cursor))
	if v.Loading {
		main.WriteString("\n")
		main.WriteString(m.spinner.View())
	}
	if m.mode == modeConfirmDelete {
		if row, ok := m.selected(); ok {
			main.WriteString("\n\n")
			main.WriteString(confirmModel{message: row.Name}.View())
		}
	}
	if m.status != "" {
		main.WriteString("\n\n")
		main.WriteString(m.status)
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, main.String(), "  ", renderSidePanel(v))
	return renderPage("LEAVE TRACKER", body, m.hotKeys())
}

func (m *LeavePageModel) hotKeys() string {
	switch m.mode {
	case modeForm:
		return "esc: cancel │ tab: next field │ enter: submit"
	case modeConfirmDelete:
		return "y: delete │ n: cancel"
	default:
		return "↑/↓: select │ n: new │ d: delete │ c: copy │ r: refresh │ s: sign in/out │ v: version │ q: quit"
	}
}

// selected returns the row under the cursor.
func (m *LeavePageModel) selected() (page.Row, bool) {
	rows := page.NewRows(m.snapshot.Leaves)
	if m.cursor < 0 || m.cursor >= len(rows) {
		return page.Row{}, false
	}
	return rows[m.cursor], true
}

func (m *LeavePageModel) readSnapshot() {
	m.snapshot = m.leaves.Snapshot()
	if m.cursor >= len(m.snapshot.Leaves) {
		m.cursor = len(m.snapshot.Leaves) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *LeavePageModel) cmdRefresh() tea.Cmd {
	ctx, leaves := m.ctx, m.leaves
	return func() tea.Msg {
		return refreshDoneMsg{err: leaves.Refresh(ctx)}
	}
}

func (m *LeavePageModel) cmdCreate(form page.Form) tea.Cmd {
	ctx, leaves := m.ctx, m.leaves
	return func() tea.Msg {
		_, err := leaves.Create(ctx, form.Request())
		return createDoneMsg{err: err}
	}
}

func (m *LeavePageModel) cmdDelete(id int64) tea.Cmd {
	ctx, leaves := m.ctx, m.leaves
	return func() tea.Msg {
		_, err := leaves.Delete(ctx, id)
		return deleteDoneMsg{err: err}
	}
}

func (m *LeavePageModel) cmdSignOut() tea.Cmd {
	ctx, auth, log := m.ctx, m.auth, m.logger
	return func() tea.Msg {
		if err := auth.SignOut(ctx); err != nil {
			log.Err(err).Str("func", "*LeavePageModel.cmdSignOut").Msg("server sign out failed")
		}
		return sessionChangedMsg{}
	}
}

// cmdSidePanel loads the balance, greeting, secret message and version.
// Failures are logged and leave that part empty.
func (m *LeavePageModel) cmdSidePanel() tea.Cmd {
	ctx, auth, info, log := m.ctx, m.auth, m.info, m.logger
	return func() tea.Msg {
		var msg sidePanelMsg

		version, err := info.Version(ctx)
		if err != nil {
			log.Err(err).Str("func", "*LeavePageModel.cmdSidePanel").Msg("error fetching server version")
		}
		msg.version = version

		session := auth.Session()
		if !session.SignedIn {
			return msg
		}

		msg.session = page.Session{SignedIn: true, Name: session.Name}

		if balance, err := info.Balance(ctx, session.Name); err == nil {
			msg.balance = &balance
		} else {
			log.Err(err).Str("func", "*LeavePageModel.cmdSidePanel").Msg("error fetching leave balance")
		}

		if greeting, err := info.Greeting(ctx, session.Name); err == nil {
			msg.session.Greeting = greeting
		} else {
			log.Err(err).Str("func", "*LeavePageModel.cmdSidePanel").Msg("error fetching greeting")
		}

		if secret, err := auth.SecretMessage(ctx); err == nil {
			msg.session.SecretMessage = secret
		} else {
			log.Err(err).Str("func", "*LeavePageModel.cmdSidePanel").Msg("error fetching secret message")
		}

		return msg
	}
}

func cmdCopy(row page.Row) tea.Cmd {
	text := fmt.Sprintf("%s\t%s\t%s\t%s", row.Name, row.StartDate, row.EndDate, row.Reason)
	return func() tea.Msg {
		return copiedMsg{err: copyToClipboard(text)}
	}
}

func (m *LeavePageModel) tickSnapshot() tea.Cmd {
	id := m.tickID
	return tea.Tick(snapshotInterval, func(time.Time) tea.Msg { return snapshotTickMsg{id: id} })
}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return clearStatusMsg{} })
}
