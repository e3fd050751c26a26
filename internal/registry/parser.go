package registry

import (
	"strings"
	"time"

	"github.com/yomawari/domainscan/internal/model"
)

// availablePatterns mark WHOIS responses for unregistered domains.
// Registries phrase "no such domain" dozens of ways; this list covers the
// gTLD and common ccTLD variants.
var availablePatterns = []string{
	"no match for",
	"not found",
	"no entries found",
	"domain not found",
	"no data found",
	"status: free",
	"status: available",
	"no object found",
	"object does not exist",
	"nothing found",
	"no information available",
	"is available for registration",
	"is free",
	"domain is available",
	"the queried object does not exist",
	"no such domain",
	"domain name has not been registered",
	"no matching record",
}

// takenPatterns mark responses that positively indicate a registration
// record, checked when field parsing finds nothing usable.
var takenPatterns = []string{
	"registrar:",
	"registrant:",
	"creation date:",
	"created:",
	"registry expiry date:",
	"expiration date:",
	"name server:",
	"nameserver:",
	"nserver:",
	"dnssec:",
	"domain status:",
}

// registrarKeys are WHOIS field names carrying the sponsoring registrar.
var registrarKeys = []string{"registrar"}

// createdKeys are field names carrying the registration date.
var createdKeys = []string{"creation date", "created", "created on", "registered on", "registration time"}

// expiresKeys are field names carrying the expiry date.
var expiresKeys = []string{"registry expiry date", "expiration date", "expiry date", "expires", "expires on", "paid-till"}

// nameServerKeys are field names carrying delegated name servers.
var nameServerKeys = []string{"name server", "nameserver", "nserver"}

// registrantKeys are field names carrying the registrant identity, in
// preference order.
var registrantKeys = []string{"registrant organization", "registrant name", "registrant", "org"}

// dateLayouts are the date formats observed across registries.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05Z0700",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02-Jan-2006",
	"2006.01.02",
	"02.01.2006",
}

// Parse turns a raw WHOIS response into a structured registry record.
// It is a pure function: same text in, same record out.
//
// Detection order matters. Availability markers are checked first because
// some registries attach boilerplate that would otherwise look like field
// data; positive field parsing then decides Found for everything else.
func Parse(raw string) model.RegistryRecord {
	lower := strings.ToLower(raw)

	for _, pattern := range availablePatterns {
		if strings.Contains(lower, pattern) {
			return model.RegistryRecord{Found: false}
		}
	}

	record := model.RegistryRecord{}
	for _, line := range strings.Split(raw, "\n") {
		key, value, ok := splitField(line)
		if !ok {
			continue
		}

		switch {
		case record.Registrar == "" && matchKey(key, registrarKeys):
			record.Registrar = value
		case record.CreatedOn == nil && matchKey(key, createdKeys):
			record.CreatedOn = parseDate(value)
		case record.ExpiresOn == nil && matchKey(key, expiresKeys):
			record.ExpiresOn = parseDate(value)
		case matchKey(key, nameServerKeys):
			ns := strings.ToLower(strings.Fields(value)[0])
			if !containsString(record.NameServers, ns) {
				record.NameServers = append(record.NameServers, ns)
			}
		case record.Registrant == "" && matchKey(key, registrantKeys):
			record.Registrant = value
		}
	}

	record.Found = record.Registrar != "" ||
		record.CreatedOn != nil ||
		record.ExpiresOn != nil ||
		len(record.NameServers) > 0

	if !record.Found {
		// No structured fields, but the registry may still signal a
		// registration in prose.
		for _, pattern := range takenPatterns {
			if strings.Contains(lower, pattern) {
				record.Found = true
				break
			}
		}
	}

	return record
}

// splitField splits a "Key: Value" WHOIS line, tolerating indentation.
func splitField(line string) (key, value string, ok bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "%") || strings.HasPrefix(line, "#") {
		return "", "", false
	}
	idx := strings.Index(line, ":")
	if idx <= 0 {
		return "", "", false
	}
	key = strings.ToLower(strings.TrimSpace(line[:idx]))
	value = strings.TrimSpace(line[idx+1:])
	if value == "" {
		return "", "", false
	}
	return key, value, true
}

// matchKey reports whether a WHOIS field key matches any canonical name.
func matchKey(key string, names []string) bool {
	for _, n := range names {
		if key == n {
			return true
		}
	}
	return false
}

// parseDate tries the known registry date layouts, returning nil when
// none fit. Registries lie and omit; an unparseable date is absent data,
// not an error.
func parseDate(value string) *time.Time {
	// Some registries append a timezone label after the timestamp.
	value = strings.TrimSpace(value)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			t = t.UTC()
			return &t
		}
	}
	// Last resort: the leading date portion of a longer stamp.
	if len(value) >= 10 {
		if t, err := time.Parse("2006-01-02", value[:10]); err == nil {
			t = t.UTC()
			return &t
		}
	}
	return nil
}

// containsString reports whether list contains s.
func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
