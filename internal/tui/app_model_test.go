package tui

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/easy-otp/internal/crypto"
	"github.com/MKhiriev/easy-otp/internal/identity"
	"github.com/MKhiriev/easy-otp/internal/logger"
	"github.com/MKhiriev/easy-otp/internal/service"
	"github.com/MKhiriev/easy-otp/internal/store"
	"github.com/MKhiriev/easy-otp/internal/totp"
	"github.com/MKhiriev/easy-otp/models"
)

const testSecret = "JBSWY3DPEHPK3PXP"

var testNow = time.Unix(1_700_000_005, 0)

// newTestModel собирает модель поверх настоящего сервиса и зашифрованного
// файла во временной директории.
func newTestModel(t *testing.T, copyFn func(string) error) (*appModel, service.OTPService) {
	t.Helper()

	key := crypto.DeriveKey(identity.Identity{HardwareID: "hw-test", Username: "tester"})
	storage := store.NewFileOTPStorage(filepath.Join(t.TempDir(), "secrets.enc"), crypto.NewFernetSealer(key), logger.Nop())
	services := service.NewServices(storage, models.NewAppBuildInfo("v1.0.0", "", ""), logger.Nop())

	m := newAppModel(context.Background(), services, copyFn, logger.Nop())
	m.nowFn = func() time.Time { return testNow }
	m.statusTTL = 0
	m.setNow(testNow)
	return m, services.OTPService
}

// run executes cmd and feeds every resulting message back into the model.
// Status clearing is dropped so assertions can read the status line.
func run(t *testing.T, m *appModel, cmd tea.Cmd) {
	t.Helper()
	if cmd == nil {
		return
	}

	switch msg := cmd().(type) {
	case nil, clearStatusMsg:
	case tea.BatchMsg:
		for _, c := range msg {
			run(t, m, c)
		}
	default:
		_, next := m.Update(msg)
		run(t, m, next)
	}
}

func load(t *testing.T, m *appModel) {
	t.Helper()
	run(t, m, m.Init())
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyType(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

// press sends a key and discards the command, used for navigation keys
// whose commands only blink the cursor.
func press(m *appModel, msg tea.KeyMsg) {
	m.Update(msg)
}

// pressRun sends a key and executes the resulting command.
func pressRun(t *testing.T, m *appModel, msg tea.KeyMsg) {
	t.Helper()
	_, cmd := m.Update(msg)
	run(t, m, cmd)
}

func seed(t *testing.T, svc service.OTPService, items ...models.OTPItem) {
	t.Helper()
	for _, item := range items {
		require.NoError(t, svc.Add(context.Background(), item))
	}
}

func TestAppModel_InitLoadsItemsAndCodes(t *testing.T) {
	m, svc := newTestModel(t, nil)
	seed(t, svc, models.OTPItem{Name: "alice", Secret: testSecret, Issuer: "GitHub"})

	assert.True(t, m.list.loading)
	load(t, m)

	require.Len(t, m.list.codes, 1)
	assert.False(t, m.list.loading)
	assert.Equal(t, "alice", m.list.codes[0].Item.Name)
	assert.Equal(t, totp.GenerateCodeAt(testSecret, testNow), m.list.codes[0].Code)
	assert.Equal(t, totp.RemainingSeconds(testNow), m.list.codes[0].Remaining)
	assert.Contains(t, m.View(), "alice")
}

func TestAppModel_EmptyListHint(t *testing.T) {
	m, _ := newTestModel(t, nil)
	load(t, m)

	assert.Empty(t, m.list.codes)
	assert.Contains(t, m.View(), "No items yet")
}

func TestAppModel_TickUpdatesCountdownAndRecomputesOnStep(t *testing.T) {
	m, svc := newTestModel(t, nil)
	seed(t, svc, models.OTPItem{Name: "alice", Secret: testSecret})
	load(t, m)

	// same 30-second step: only the countdown moves
	sameStep := testNow.Add(2 * time.Second)
	m.Update(tickMsg(sameStep))
	assert.Equal(t, totp.RemainingSeconds(sameStep), m.list.codes[0].Remaining)
	assert.Equal(t, totp.GenerateCodeAt(testSecret, testNow), m.list.codes[0].Code)

	nextStep := testNow.Add(time.Duration(totp.Period) * time.Second)
	m.Update(tickMsg(nextStep))
	assert.Equal(t, totp.GenerateCodeAt(testSecret, nextStep), m.list.codes[0].Code)
	assert.Equal(t, totp.RemainingSeconds(nextStep), m.list.codes[0].Remaining)
}

func TestAppModel_AddThroughForm(t *testing.T) {
	m, svc := newTestModel(t, nil)
	load(t, m)

	press(m, keyRunes("n"))
	require.Equal(t, screenForm, m.screen)

	press(m, keyRunes("alice"))
	press(m, keyType(tea.KeyTab))
	press(m, keyRunes("jbsw y3dp ehpk 3pxp"))
	press(m, keyType(tea.KeyTab))
	press(m, keyRunes("GitHub"))
	pressRun(t, m, keyType(tea.KeyEnter))

	assert.Equal(t, screenList, m.screen)
	assert.Empty(t, m.errText)
	assert.Equal(t, "Added GitHub (alice)", m.status)

	items := svc.List(context.Background())
	require.Len(t, items, 1)
	assert.Equal(t, models.OTPItem{Name: "alice", Secret: testSecret, Issuer: "GitHub"}, items[0])
	require.Len(t, m.list.codes, 1)
}

func TestAppModel_AddThroughFormRejectsInvalidSecret(t *testing.T) {
	m, svc := newTestModel(t, nil)
	load(t, m)

	press(m, keyRunes("n"))
	press(m, keyRunes("alice"))
	press(m, keyType(tea.KeyTab))
	press(m, keyRunes("not-base32!"))
	pressRun(t, m, keyType(tea.KeyEnter))

	assert.Equal(t, screenForm, m.screen)
	assert.Equal(t, msgInvalidSecret, m.errText)
	assert.Empty(t, svc.List(context.Background()))

	// the overlay swallows keys until dismissed
	press(m, keyRunes("x"))
	assert.Equal(t, screenForm, m.screen)
	press(m, keyType(tea.KeyEsc))
	assert.Empty(t, m.errText)
	assert.Equal(t, screenForm, m.screen)
}

func TestAppModel_EditUpdatesItem(t *testing.T) {
	m, svc := newTestModel(t, nil)
	seed(t, svc, models.OTPItem{Name: "alice", Secret: testSecret})
	load(t, m)

	press(m, keyRunes("e"))
	require.Equal(t, screenForm, m.screen)
	require.True(t, m.form.editing)
	assert.Equal(t, "alice", m.form.oldName)

	press(m, keyType(tea.KeyShiftTab))
	press(m, keyRunes("Corp"))
	pressRun(t, m, keyType(tea.KeyEnter))

	assert.Empty(t, m.errText)
	items := svc.List(context.Background())
	require.Len(t, items, 1)
	assert.Equal(t, models.OTPItem{Name: "alice", Secret: testSecret, Issuer: "Corp"}, items[0])
}

func TestAppModel_AddFromURI(t *testing.T) {
	tests := []struct {
		name       string
		uri        string
		wantStatus string
		wantErr    string
		wantItems  int
	}{
		{
			name:       "standard uri",
			uri:        "otpauth://totp/GitHub:alice?secret=" + testSecret + "&issuer=GitHub",
			wantStatus: "Added GitHub (alice)",
			wantItems:  1,
		},
		{
			name:       "non standard parameters warn",
			uri:        "otpauth://totp/alice?secret=" + testSecret + "&digits=8",
			wantStatus: "Added alice (warning: SHA1/8 digits/30s is not supported, codes use SHA1/6/30)",
			wantItems:  1,
		},
		{
			name:    "hotp is rejected",
			uri:     "otpauth://hotp/alice?secret=" + testSecret,
			wantErr: msgInvalidURI,
		},
		{
			name:    "missing query",
			uri:     "otpauth://totp/alice",
			wantErr: msgMissingQuery,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, svc := newTestModel(t, nil)
			load(t, m)

			press(m, keyRunes("a"))
			require.Equal(t, screenAddURI, m.screen)
			press(m, keyRunes(tt.uri))
			pressRun(t, m, keyType(tea.KeyEnter))

			assert.Equal(t, tt.wantErr, m.errText)
			assert.Equal(t, tt.wantStatus, m.status)
			assert.Len(t, svc.List(context.Background()), tt.wantItems)
		})
	}
}

func TestAppModel_SearchFiltersByNameAndIssuer(t *testing.T) {
	m, svc := newTestModel(t, nil)
	seed(t, svc,
		models.OTPItem{Name: "alice", Secret: testSecret, Issuer: "GitHub"},
		models.OTPItem{Name: "bob", Secret: testSecret, Issuer: "GitLab"},
		models.OTPItem{Name: "carol", Secret: testSecret, Issuer: "Google"},
	)
	load(t, m)

	press(m, keyRunes("/"))
	require.True(t, m.list.filtering)

	press(m, keyRunes("git"))
	assert.Len(t, m.list.visible(), 2)

	// while searching, letters go to the filter instead of actions
	press(m, keyRunes("l"))
	require.Len(t, m.list.visible(), 1)
	assert.Equal(t, "bob", m.list.visible()[0].Item.Name)
	assert.Equal(t, screenList, m.screen)

	press(m, keyType(tea.KeyEnter))
	assert.False(t, m.list.filtering)
	c, ok := m.list.current()
	require.True(t, ok)
	assert.Equal(t, "bob", c.Item.Name)

	press(m, keyType(tea.KeyEsc))
	assert.Len(t, m.list.visible(), 3)
}

func TestAppModel_NavigationClamps(t *testing.T) {
	m, svc := newTestModel(t, nil)
	seed(t, svc,
		models.OTPItem{Name: "alice", Secret: testSecret},
		models.OTPItem{Name: "bob", Secret: testSecret},
	)
	load(t, m)

	press(m, keyRunes("k"))
	assert.Equal(t, 0, m.list.idx)
	press(m, keyRunes("j"))
	press(m, keyType(tea.KeyDown))
	assert.Equal(t, 1, m.list.idx)
	press(m, keyType(tea.KeyUp))
	assert.Equal(t, 0, m.list.idx)
}

func TestAppModel_DeleteNeedsConfirmation(t *testing.T) {
	m, svc := newTestModel(t, nil)
	seed(t, svc,
		models.OTPItem{Name: "alice", Secret: testSecret},
		models.OTPItem{Name: "bob", Secret: testSecret},
	)
	load(t, m)

	press(m, keyRunes("d"))
	require.NotNil(t, m.pendingDelete)
	assert.Contains(t, m.View(), "Delete alice?")

	press(m, keyRunes("n"))
	assert.Nil(t, m.pendingDelete)
	assert.Equal(t, screenList, m.screen, "n cancels instead of opening the new item form")
	assert.Len(t, svc.List(context.Background()), 2)

	press(m, keyRunes("d"))
	pressRun(t, m, keyRunes("y"))

	assert.Equal(t, "Deleted alice", m.status)
	items := svc.List(context.Background())
	require.Len(t, items, 1)
	assert.Equal(t, "bob", items[0].Name)
	require.Len(t, m.list.codes, 1)
}

func TestAppModel_CopyToClipboard(t *testing.T) {
	var copied string
	m, svc := newTestModel(t, func(s string) error {
		copied = s
		return nil
	})
	seed(t, svc, models.OTPItem{Name: "alice", Secret: testSecret})
	load(t, m)

	pressRun(t, m, keyRunes("c"))

	assert.Equal(t, totp.GenerateCodeAt(testSecret, testNow), copied)
	assert.Equal(t, "Copied code for alice", m.status)
}

func TestAppModel_CopyWithoutClipboardShowsCode(t *testing.T) {
	m, svc := newTestModel(t, nil)
	seed(t, svc, models.OTPItem{Name: "alice", Secret: testSecret})
	load(t, m)

	pressRun(t, m, keyType(tea.KeyEnter))

	assert.Equal(t, "Code for alice: "+formatCode(totp.GenerateCodeAt(testSecret, testNow)), m.status)
}

func TestAppModel_CopyFailureShowsCodeInError(t *testing.T) {
	m, svc := newTestModel(t, func(string) error { return errors.New("no display") })
	seed(t, svc, models.OTPItem{Name: "alice", Secret: testSecret})
	load(t, m)

	pressRun(t, m, keyRunes("c"))

	assert.Contains(t, m.errText, msgClipboardFailed)
	assert.Contains(t, m.errText, formatCode(totp.GenerateCodeAt(testSecret, testNow)))
}

func TestAppModel_StatusClearsOnlyForLatestSeq(t *testing.T) {
	m, _ := newTestModel(t, nil)

	m.setStatus("first")
	m.setStatus("second")

	m.Update(clearStatusMsg{seq: 1})
	assert.Equal(t, "second", m.status)

	m.Update(clearStatusMsg{seq: 2})
	assert.Empty(t, m.status)
}

func TestAppModel_ExportThenImport(t *testing.T) {
	m, svc := newTestModel(t, nil)
	seed(t, svc,
		models.OTPItem{Name: "alice", Secret: testSecret, Issuer: "GitHub"},
		models.OTPItem{Name: "bob", Secret: testSecret},
	)
	load(t, m)

	exportPath := filepath.Join(t.TempDir(), "export.yaml")

	press(m, keyRunes("x"))
	require.Equal(t, screenPath, m.screen)
	assert.Contains(t, m.View(), "NOT encrypted")
	press(m, keyRunes(exportPath))
	pressRun(t, m, keyType(tea.KeyEnter))

	assert.Empty(t, m.errText)
	assert.Equal(t, screenList, m.screen)
	assert.FileExists(t, exportPath)

	// import into a fresh store
	m2, svc2 := newTestModel(t, nil)
	seed(t, svc2, models.OTPItem{Name: "alice", Secret: testSecret})
	load(t, m2)

	press(m2, keyRunes("i"))
	press(m2, keyRunes(exportPath))
	pressRun(t, m2, keyType(tea.KeyEnter))

	assert.Empty(t, m2.errText)
	assert.Equal(t, "Imported 1 item(s)", m2.status)
	assert.Len(t, svc2.List(context.Background()), 2)
	assert.Len(t, m2.list.codes, 2)
}

func TestAppModel_ImportMissingFile(t *testing.T) {
	m, _ := newTestModel(t, nil)
	load(t, m)

	press(m, keyRunes("i"))
	press(m, keyRunes(filepath.Join(t.TempDir(), "missing.json")))
	pressRun(t, m, keyType(tea.KeyEnter))

	assert.Equal(t, msgNotFound, m.errText)
	assert.Equal(t, screenPath, m.screen)
}

func TestAppModel_QRAndInfoScreens(t *testing.T) {
	m, svc := newTestModel(t, nil)
	seed(t, svc, models.OTPItem{Name: "alice", Secret: testSecret, Issuer: "GitHub"})
	load(t, m)

	pressRun(t, m, keyRunes("r"))
	require.Equal(t, screenQR, m.screen)
	assert.NotEmpty(t, m.qr)
	assert.Contains(t, m.View(), "QR for GitHub (alice)")

	press(m, keyType(tea.KeyEsc))
	assert.Equal(t, screenList, m.screen)

	press(m, keyRunes("v"))
	require.Equal(t, screenInfo, m.screen)
	view := m.View()
	assert.Contains(t, view, "v1.0.0")
	assert.Contains(t, view, "secrets.enc")
	assert.Contains(t, view, "unavailable")
}

func TestAppModel_SaveQRAsPNG(t *testing.T) {
	m, svc := newTestModel(t, nil)
	seed(t, svc, models.OTPItem{Name: "alice", Secret: testSecret, Issuer: "GitHub"})
	load(t, m)

	pressRun(t, m, keyRunes("r"))
	require.Equal(t, screenQR, m.screen)
	assert.Contains(t, m.View(), "s: save PNG")

	// esc в диалоге возвращает к QR
	press(m, keyRunes("s"))
	require.Equal(t, screenPath, m.screen)
	assert.Contains(t, m.View(), "Save QR as PNG")
	press(m, keyType(tea.KeyEsc))
	require.Equal(t, screenQR, m.screen)

	pngPath := filepath.Join(t.TempDir(), "alice.png")
	press(m, keyRunes("s"))
	press(m, keyRunes(pngPath))
	pressRun(t, m, keyType(tea.KeyEnter))

	assert.Empty(t, m.errText)
	assert.Equal(t, screenList, m.screen)
	assert.Equal(t, "Saved QR to "+pngPath, m.status)

	data, err := os.ReadFile(pngPath)
	require.NoError(t, err)
	assert.Equal(t, "\x89PNG", string(data[:4]))
}

func TestAppModel_SaveQRMissingDirectory(t *testing.T) {
	m, svc := newTestModel(t, nil)
	seed(t, svc, models.OTPItem{Name: "alice", Secret: testSecret})
	load(t, m)

	pressRun(t, m, keyRunes("r"))
	press(m, keyRunes("s"))
	press(m, keyRunes(filepath.Join(t.TempDir(), "missing", "alice.png")))
	pressRun(t, m, keyType(tea.KeyEnter))

	assert.Equal(t, msgNotFound, m.errText)
	assert.Equal(t, screenPath, m.screen)
}

func TestAppModel_QuitKeys(t *testing.T) {
	m, _ := newTestModel(t, nil)
	load(t, m)

	_, cmd := m.Update(keyRunes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())

	_, cmd = m.Update(keyType(tea.KeyCtrlC))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestAppModel_UnreadableStoreShowsEmptyList(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "secrets.enc")
	require.NoError(t, os.WriteFile(path, []byte("garbage"), 0o600))

	key := crypto.DeriveKey(identity.Identity{HardwareID: "hw-test", Username: "tester"})
	storage := store.NewFileOTPStorage(path, crypto.NewFernetSealer(key), logger.Nop())
	services := service.NewServices(storage, models.NewAppBuildInfo("", "", ""), logger.Nop())

	m := newAppModel(context.Background(), services, nil, logger.Nop())
	load(t, m)

	assert.Empty(t, m.list.codes)
	assert.False(t, m.list.loading)
}
