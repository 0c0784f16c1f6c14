package tools

import (
	"fmt"

	"autostepper/internal/models"
	"autostepper/internal/parsing"
	"autostepper/internal/utils/logging"

	"github.com/browserutils/kooky"
	_ "github.com/browserutils/kooky/browser/all"
)

// CookieStoreReport enumerates browser cookie stores on this machine and
// counts the valid cookies each holds for rawURL's base domain. This is a
// diagnostic only: the download path passes a browser NAME to yt-dlp and
// never opens a store itself.
func CookieStoreReport(rawURL string) ([]models.CookieStoreInfo, error) {
	domain, err := parsing.BaseDomain(rawURL)
	if err != nil {
		return nil, fmt.Errorf("failed to extract base domain: %v", err)
	}

	stores := kooky.FindAllCookieStores()
	infos := make([]models.CookieStoreInfo, 0, len(stores))

	for _, store := range stores {
		info := models.CookieStoreInfo{
			Browser:        store.Browser(),
			Profile:        store.Profile(),
			FilePath:       store.FilePath(),
			DefaultProfile: store.IsDefaultProfile(),
		}

		cookies, err := store.ReadCookies(kooky.Valid, kooky.Domain(domain))
		if err != nil {
			logging.D(2, "Failed to read cookies from %s: %v", info.Browser, err)
		} else {
			info.MatchedCookies = len(cookies)
		}
		if err := store.Close(); err != nil {
			logging.D(2, "Failed to close %s cookie store: %v", info.Browser, err)
		}

		infos = append(infos, info)
	}

	logging.D(1, "Inspected %d cookie stores for domain %q", len(infos), domain)
	return infos, nil
}
