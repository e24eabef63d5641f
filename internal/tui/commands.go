package tui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/easy-otp/internal/service"
	"github.com/MKhiriev/easy-otp/internal/totp"
	"github.com/MKhiriev/easy-otp/models"
)

const defaultStatusTTL = 3 * time.Second

func cmdLoadItems(ctx context.Context, svc service.OTPService) tea.Cmd {
	return func() tea.Msg {
		return itemsLoadedMsg{items: svc.List(ctx)}
	}
}

func cmdAdd(ctx context.Context, svc service.OTPService, item models.OTPItem) tea.Cmd {
	return func() tea.Msg {
		if err := svc.Add(ctx, item); err != nil {
			return itemSavedMsg{err: err}
		}
		return itemSavedMsg{status: fmt.Sprintf("Added %s", item.Title())}
	}
}

func cmdAddFromURI(ctx context.Context, svc service.OTPService, uri string) tea.Cmd {
	return func() tea.Msg {
		key, err := svc.AddFromURI(ctx, uri)
		if err != nil {
			return itemSavedMsg{err: err}
		}
		status := fmt.Sprintf("Added %s", key.Item.Title())
		if !key.IsStandard() {
			status += fmt.Sprintf(" (warning: %s/%d digits/%ds is not supported, codes use SHA1/6/30)",
				key.Algorithm, key.Digits, key.Period)
		}
		return itemSavedMsg{status: status}
	}
}

func cmdUpdate(ctx context.Context, svc service.OTPService, oldName string, item models.OTPItem) tea.Cmd {
	return func() tea.Msg {
		if err := svc.Update(ctx, oldName, item); err != nil {
			return itemSavedMsg{err: err}
		}
		return itemSavedMsg{status: fmt.Sprintf("Updated %s", item.Title())}
	}
}

func cmdDelete(ctx context.Context, svc service.OTPService, name string) tea.Cmd {
	return func() tea.Msg {
		return itemDeletedMsg{name: name, err: svc.Delete(ctx, name)}
	}
}

func cmdExport(ctx context.Context, svc service.OTPService, path string) tea.Cmd {
	return func() tea.Msg {
		return exportDoneMsg{path: path, err: svc.Export(ctx, path)}
	}
}

func cmdImport(ctx context.Context, svc service.OTPService, path string) tea.Cmd {
	return func() tea.Msg {
		added, err := svc.Import(ctx, path)
		return importDoneMsg{added: added, err: err}
	}
}

func cmdQR(ctx context.Context, svc service.OTPService, item models.OTPItem) tea.Cmd {
	return func() tea.Msg {
		qr, err := svc.QR(ctx, item.Name)
		return qrReadyMsg{name: item.Name, title: item.Title(), qr: qr, err: err}
	}
}

func cmdSaveQR(ctx context.Context, svc service.OTPService, name, path string) tea.Cmd {
	return func() tea.Msg {
		return qrSavedMsg{path: path, err: svc.SaveQR(ctx, name, path)}
	}
}

// cmdCopy generates a fresh code at the moment of copying. copyFn is nil
// when the clipboard is unavailable and the code is returned for display.
func cmdCopy(item models.OTPItem, now time.Time, copyFn func(string) error) tea.Cmd {
	return func() tea.Msg {
		code := totp.GenerateCodeAt(item.Secret, now)
		if code == totp.ErrorCode {
			return copiedMsg{title: item.Title(), err: errInvalidSecretCode}
		}
		if copyFn == nil {
			return copiedMsg{title: item.Title(), code: code}
		}
		if err := copyFn(code); err != nil {
			return copiedMsg{title: item.Title(), code: code, err: fmt.Errorf("%w: %w", errClipboard, err)}
		}
		return copiedMsg{title: item.Title()}
	}
}

func cmdClearStatus(seq int, ttl time.Duration) tea.Cmd {
	return tea.Tick(ttl, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}
