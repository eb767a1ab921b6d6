// Package domain contains the web tools: user agents, ip addresses, gradients and minification.
package domain

import "github.com/mileusna/useragent"

type DeviceType string

const (
	DeviceDesktop DeviceType = "desktop"
	DeviceMobile  DeviceType = "mobile"
	DeviceTablet  DeviceType = "tablet"
	DeviceBot     DeviceType = "bot"
	DeviceUnknown DeviceType = "unknown"
)

// UserAgent contains human friendly information about the client of a request.
type UserAgent struct {
	Raw            string
	Browser        string
	BrowserVersion string
	OS             string
	OSVersion      string
	Device         string
	Type           DeviceType
	// URL is set by some bots, pointing to their documentation.
	URL string
}

func ParseUserAgent(s string) UserAgent {
	ua := useragent.Parse(s)

	return UserAgent{
		Raw:            s,
		Browser:        ua.Name,
		BrowserVersion: ua.Version,
		OS:             ua.OS,
		OSVersion:      ua.OSVersion,
		Device:         ua.Device,
		Type:           deviceType(ua),
		URL:            ua.URL,
	}
}

func deviceType(ua useragent.UserAgent) DeviceType {
	switch {
	case ua.Bot:
		return DeviceBot
	case ua.Tablet:
		return DeviceTablet
	case ua.Mobile:
		return DeviceMobile
	case ua.Desktop:
		return DeviceDesktop
	}

	return DeviceUnknown
}

// String is the short description of a user agent, e.g. "Chrome v120.0 on Windows v10.0".
func (ua UserAgent) String() string {
	browser := join(ua.Browser, ua.BrowserVersion)
	os := join(ua.OS, ua.OSVersion)

	switch {
	case browser != "" && os != "":
		return browser + " on " + os
	case browser != "":
		return browser
	}

	return os
}

func join(name string, version string) string {
	if version == "" {
		return name
	}

	return name + " v" + version
}
