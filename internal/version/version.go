// Package version provides build and version information.
package version

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Version is the current application version.
const Version = "0.3.0"

// Milestones:
// 0.3.0 - Camera lock spring zoom, trajectory polylines, headless ephemeris
// 0.2.0 - Tracker overlays, starfield background, mouse orbit/zoom
// 0.1.0 - Initial release: orrery view, free-flight camera, pause/speed

const releaseURL = "https://api.github.com/repos/litescript/ls-orrery/releases/latest"

// UpdateInfo describes the result of an update check.
type UpdateInfo struct {
	CurrentVersion  string
	LatestVersion   string
	UpdateAvailable bool
	Error           error
}

type releaseResponse struct {
	TagName string `json:"tag_name"`
}

// CheckForUpdate queries GitHub for the latest release tag.
func CheckForUpdate() UpdateInfo {
	info := UpdateInfo{CurrentVersion: Version}

	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Get(releaseURL)
	if err != nil {
		info.Error = fmt.Errorf("update check: %w", err)
		return info
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		info.Error = fmt.Errorf("update check: unexpected status %d", resp.StatusCode)
		return info
	}

	var release releaseResponse
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		info.Error = fmt.Errorf("update check: decode response: %w", err)
		return info
	}

	info.LatestVersion = strings.TrimPrefix(release.TagName, "v")
	info.UpdateAvailable = info.LatestVersion != "" && info.LatestVersion != Version
	return info
}
