package service

import (
	"github.com/shiprate/shiprate-server/internal/model"
)

// InstallHintProvider abstracts the platform-specific install banner. The
// variant is picked once at process start from config, never at compile
// time via conditional file inclusion.
type InstallHintProvider interface {
	Hint() model.InstallHint
}

type webHintProvider struct{}

func (webHintProvider) Hint() model.InstallHint {
	return model.InstallHint{
		Platform:    "web",
		Title:       "Add ShipRate to your home screen",
		Message:     "Install the web app for one-tap access from the bridge.",
		Dismissible: true,
	}
}

type mobileHintProvider struct{}

func (mobileHintProvider) Hint() model.InstallHint {
	return model.InstallHint{
		Platform:    "mobile",
		Title:       "Get the ShipRate app",
		Message:     "Rate ships faster with the native app, built for use at sea.",
		StoreURL:    "https://shiprate.app/get",
		Dismissible: false,
	}
}

// NewInstallHintProvider selects the variant for the configured platform
// mode. Unknown modes fall back to the web banner.
func NewInstallHintProvider(mode string) InstallHintProvider {
	if mode == "mobile" {
		return mobileHintProvider{}
	}
	return webHintProvider{}
}
