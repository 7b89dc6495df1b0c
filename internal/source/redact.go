package source

import "net/url"

// redact hides credentials embedded in URL locators before they are logged.
func redact(locator string) string {
	u, err := url.Parse(locator)
	if err != nil || u.User == nil {
		return locator
	}
	return u.Redacted()
}
