package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/easy-otp/internal/logger"
	"github.com/MKhiriev/easy-otp/internal/service"
	"github.com/MKhiriev/easy-otp/internal/totp"
	"github.com/MKhiriev/easy-otp/models"
)

type screen int

const (
	screenList screen = iota
	screenAddURI
	screenForm
	screenPath
	screenQR
	screenInfo
)

// appModel is the root bubbletea model. It owns the loaded items and
// recomputes their codes from clock ticks.
type appModel struct {
	ctx    context.Context
	otp    service.OTPService
	info   service.AppInfoService
	logger *logger.Logger

	// copyFn is nil when the clipboard is unavailable.
	copyFn    func(string) error
	nowFn     func() time.Time
	statusTTL time.Duration

	screen screen
	list   listModel
	form   formModel
	uri    textinput.Model
	path   pathPrompt

	qrName  string
	qrTitle string
	qr      string

	items []models.OTPItem
	now   time.Time
	step  int64

	status    string
	statusSeq int

	errText       string
	pendingDelete *models.OTPItem

	width  int
	height int
}

func newAppModel(ctx context.Context, services *service.Services, copyFn func(string) error, log *logger.Logger) *appModel {
	now := time.Now()
	return &appModel{
		ctx:       ctx,
		otp:       services.OTPService,
		info:      services.AppInfoService,
		logger:    log,
		copyFn:    copyFn,
		nowFn:     time.Now,
		statusTTL: defaultStatusTTL,
		list:      newListModel(),
		uri:       newURIInput(),
		now:       now,
		step:      now.Unix() / totp.Period,
	}
}

func (m *appModel) Init() tea.Cmd {
	return cmdLoadItems(m.ctx, m.otp)
}

func (m *appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case tickMsg:
		m.setNow(time.Time(msg))
		return m, nil

	case itemsLoadedMsg:
		m.items = msg.items
		m.list.loading = false
		m.recompute()
		return m, nil

	case itemSavedMsg:
		if msg.err != nil {
			m.showError(msg.err)
			return m, nil
		}
		m.screen = screenList
		return m, tea.Batch(cmdLoadItems(m.ctx, m.otp), m.setStatus(msg.status))

	case itemDeletedMsg:
		if msg.err != nil {
			m.showError(msg.err)
			return m, nil
		}
		return m, tea.Batch(cmdLoadItems(m.ctx, m.otp), m.setStatus("Deleted "+msg.name))

	case exportDoneMsg:
		if msg.err != nil {
			m.showError(msg.err)
			return m, nil
		}
		m.screen = screenList
		return m, m.setStatus(fmt.Sprintf("Exported to %s (unencrypted)", msg.path))

	case importDoneMsg:
		if msg.err != nil {
			m.showError(msg.err)
			return m, nil
		}
		m.screen = screenList
		return m, tea.Batch(cmdLoadItems(m.ctx, m.otp), m.setStatus(fmt.Sprintf("Imported %d item(s)", msg.added)))

	case qrReadyMsg:
		if msg.err != nil {
			m.showError(msg.err)
			return m, nil
		}
		m.qrName, m.qrTitle, m.qr = msg.name, msg.title, msg.qr
		m.screen = screenQR
		return m, nil

	case qrSavedMsg:
		if msg.err != nil {
			m.showError(msg.err)
			return m, nil
		}
		m.screen = screenList
		m.qr = ""
		return m, m.setStatus("Saved QR to " + msg.path)

	case copiedMsg:
		return m, m.handleCopied(msg)

	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
		}
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}

	return m, m.updateActiveInput(msg)
}

func (m *appModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.Type == tea.KeyCtrlC {
		return tea.Quit
	}

	if m.errText != "" {
		if key.Matches(msg, keys.enter, keys.esc) {
			m.errText = ""
		}
		return nil
	}

	if m.pendingDelete != nil {
		switch {
		case key.Matches(msg, keys.yes):
			name := m.pendingDelete.Name
			m.pendingDelete = nil
			return cmdDelete(m.ctx, m.otp, name)
		case key.Matches(msg, keys.no, keys.esc):
			m.pendingDelete = nil
		}
		return nil
	}

	switch m.screen {
	case screenList:
		return m.handleListKey(msg)
	case screenForm:
		return m.handleFormKey(msg)
	case screenAddURI:
		return m.handleURIKey(msg)
	case screenPath:
		return m.handlePathKey(msg)
	case screenQR:
		if key.Matches(msg, keys.saveQR) {
			m.path = newPathPrompt(pathSaveQR)
			m.screen = screenPath
			return m.path.input.Focus()
		}
		if key.Matches(msg, keys.esc, keys.enter, keys.quit) {
			m.screen = screenList
			m.qr = ""
		}
	case screenInfo:
		if key.Matches(msg, keys.esc, keys.enter, keys.quit) {
			m.screen = screenList
		}
	}
	return nil
}

func (m *appModel) handleListKey(msg tea.KeyMsg) tea.Cmd {
	if m.list.filtering {
		switch {
		case key.Matches(msg, keys.esc):
			m.list.filtering = false
			m.list.filter.Blur()
			m.list.filter.SetValue("")
			m.list.clamp()
			return nil
		case key.Matches(msg, keys.enter):
			m.list.filtering = false
			m.list.filter.Blur()
			return nil
		case msg.Type == tea.KeyUp:
			m.list.move(-1)
			return nil
		case msg.Type == tea.KeyDown:
			m.list.move(1)
			return nil
		}

		var cmd tea.Cmd
		m.list.filter, cmd = m.list.filter.Update(msg)
		m.list.idx = 0
		m.list.clamp()
		return cmd
	}

	switch {
	case key.Matches(msg, keys.quit):
		return tea.Quit
	case key.Matches(msg, keys.up):
		m.list.move(-1)
	case key.Matches(msg, keys.down):
		m.list.move(1)
	case key.Matches(msg, keys.esc):
		if m.list.filter.Value() != "" {
			m.list.filter.SetValue("")
			m.list.clamp()
		}
	case key.Matches(msg, keys.copy):
		if c, ok := m.list.current(); ok {
			return cmdCopy(c.Item, m.nowFn(), m.copyFn)
		}
	case key.Matches(msg, keys.search):
		m.list.filtering = true
		return m.list.filter.Focus()
	case key.Matches(msg, keys.addURI):
		m.uri = newURIInput()
		m.screen = screenAddURI
		return m.uri.Focus()
	case key.Matches(msg, keys.newItem):
		m.form = newFormModel()
		m.screen = screenForm
		return m.form.focusFirst()
	case key.Matches(msg, keys.edit):
		if c, ok := m.list.current(); ok {
			m.form = newEditFormModel(c.Item)
			m.screen = screenForm
			return m.form.focusFirst()
		}
	case key.Matches(msg, keys.delete):
		if c, ok := m.list.current(); ok {
			item := c.Item
			m.pendingDelete = &item
		}
	case key.Matches(msg, keys.qr):
		if c, ok := m.list.current(); ok {
			return cmdQR(m.ctx, m.otp, c.Item)
		}
	case key.Matches(msg, keys.export):
		m.path = newPathPrompt(pathExport)
		m.screen = screenPath
		return m.path.input.Focus()
	case key.Matches(msg, keys.importKb):
		m.path = newPathPrompt(pathImport)
		m.screen = screenPath
		return m.path.input.Focus()
	case key.Matches(msg, keys.info):
		m.screen = screenInfo
	}
	return nil
}

func (m *appModel) handleFormKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.esc):
		m.screen = screenList
		return nil
	case key.Matches(msg, keys.tab):
		return m.form.next()
	case key.Matches(msg, keys.backtab):
		return m.form.prev()
	case key.Matches(msg, keys.enter):
		item := m.form.item()
		if m.form.editing {
			return cmdUpdate(m.ctx, m.otp, m.form.oldName, item)
		}
		return cmdAdd(m.ctx, m.otp, item)
	}
	return m.form.updateInput(msg)
}

func (m *appModel) handleURIKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.esc):
		m.screen = screenList
		return nil
	case key.Matches(msg, keys.enter):
		return cmdAddFromURI(m.ctx, m.otp, strings.TrimSpace(m.uri.Value()))
	}

	var cmd tea.Cmd
	m.uri, cmd = m.uri.Update(msg)
	return cmd
}

func (m *appModel) handlePathKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.esc):
		m.screen = screenList
		if m.path.action == pathSaveQR {
			m.screen = screenQR
		}
		return nil
	case key.Matches(msg, keys.enter):
		path := m.path.path()
		switch m.path.action {
		case pathExport:
			return cmdExport(m.ctx, m.otp, path)
		case pathSaveQR:
			return cmdSaveQR(m.ctx, m.otp, m.qrName, path)
		default:
			return cmdImport(m.ctx, m.otp, path)
		}
	}

	var cmd tea.Cmd
	m.path.input, cmd = m.path.input.Update(msg)
	return cmd
}

// updateActiveInput forwards non-key messages such as cursor blinks to the
// focused text input.
func (m *appModel) updateActiveInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.screen {
	case screenList:
		if m.list.filtering {
			m.list.filter, cmd = m.list.filter.Update(msg)
		}
	case screenForm:
		cmd = m.form.updateInput(msg)
	case screenAddURI:
		m.uri, cmd = m.uri.Update(msg)
	case screenPath:
		m.path.input, cmd = m.path.input.Update(msg)
	}
	return cmd
}

func (m *appModel) handleCopied(msg copiedMsg) tea.Cmd {
	switch {
	case msg.err != nil && msg.code != "":
		m.showError(msg.err)
		m.errText += "\nCode: " + formatCode(msg.code)
		return nil
	case msg.err != nil:
		m.showError(msg.err)
		return nil
	case msg.code != "":
		return m.setStatus(fmt.Sprintf("Code for %s: %s", msg.title, formatCode(msg.code)))
	default:
		return m.setStatus("Copied code for " + msg.title)
	}
}

// setNow moves the clock. Codes are regenerated only when the 30-second
// step changes; otherwise just the countdown moves.
func (m *appModel) setNow(now time.Time) {
	m.now = now
	step := now.Unix() / totp.Period
	if step != m.step {
		m.step = step
		m.recompute()
		return
	}

	remaining := totp.RemainingSeconds(now)
	for i := range m.list.codes {
		m.list.codes[i].Remaining = remaining
	}
}

func (m *appModel) recompute() {
	m.list.codes = service.BuildCodes(m.items, m.now)
	m.list.clamp()
}

func (m *appModel) setStatus(text string) tea.Cmd {
	m.statusSeq++
	m.status = text
	return cmdClearStatus(m.statusSeq, m.statusTTL)
}

func (m *appModel) showError(err error) {
	m.logger.Error().Err(err).Int("screen", int(m.screen)).Msg("operation failed")
	m.errText = humanizeError(err)
}

func (m *appModel) View() string {
	var base string
	switch m.screen {
	case screenForm:
		base = m.form.View()
	case screenAddURI:
		base = uriView(m.uri)
	case screenPath:
		base = m.path.View()
	case screenQR:
		base = qrView(m.qrTitle, m.qr)
	case screenInfo:
		base = buildInfoView(m.info.BuildInfo(m.ctx), m.otp.StorePath(), m.copyFn != nil)
	default:
		base = m.listView()
	}

	switch {
	case m.errText != "":
		box := overlayBoxStyle.Render(errorStyle.Render("Error") + "\n\n" + m.errText + "\n\n" + helpStyle.Render("enter/esc: close"))
		return renderOverlay(base, box, m.width, m.height)
	case m.pendingDelete != nil:
		box := overlayBoxStyle.Render(warningStyle.Render("Delete "+m.pendingDelete.Title()+"?") +
			"\n\nThe secret cannot be recovered afterwards.\n\n" + helpStyle.Render("y: delete • n/esc: keep"))
		return renderOverlay(base, box, m.width, m.height)
	}
	return base
}

func (m *appModel) listView() string {
	body := m.list.View()
	if m.status != "" {
		body += "\n\n" + m.status
	}
	return renderPage("easy-otp", body,
		"↑/↓ move • enter/c copy • / search • a add URI • n new • e edit • d delete • r QR • x export • i import • v info • q quit")
}
