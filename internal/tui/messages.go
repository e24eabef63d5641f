package tui

import (
	"time"

	"github.com/MKhiriev/easy-otp/models"
)

type tickMsg time.Time

type itemsLoadedMsg struct {
	items []models.OTPItem
}

type itemSavedMsg struct {
	status string
	err    error
}

type itemDeletedMsg struct {
	name string
	err  error
}

type exportDoneMsg struct {
	path string
	err  error
}

type importDoneMsg struct {
	added int
	err   error
}

type qrReadyMsg struct {
	name  string
	title string
	qr    string
	err   error
}

type qrSavedMsg struct {
	path string
	err  error
}

type copiedMsg struct {
	title string
	// code is set when the clipboard is unavailable and the code is shown instead
	code string
	err  error
}

type clearStatusMsg struct {
	seq int
}
