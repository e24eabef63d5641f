package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/easy-otp/models"
)

func buildInfoView(info models.AppBuildInfo, storePath string, clipboard bool) string {
	clip := "available"
	if !clipboard {
		clip = "unavailable, codes are shown on screen"
	}

	body := strings.Join([]string{
		fmt.Sprintf("Version:   %s", info.Version()),
		fmt.Sprintf("Built:     %s", info.Date()),
		fmt.Sprintf("Commit:    %s", info.Commit()),
		"",
		fmt.Sprintf("Store:     %s", storePath),
		fmt.Sprintf("Clipboard: %s", clip),
	}, "\n")
	return renderPage("About easy-otp", body, "esc: back")
}
