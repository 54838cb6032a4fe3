// Package providers links in every DNS provider so they register themselves.
package providers

import (
	_ "homescripts/internal/dns/alidns"
	_ "homescripts/internal/dns/cloudflare"
)
