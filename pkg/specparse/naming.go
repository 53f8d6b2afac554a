package specparse

import (
	"strings"
	"unicode"
)

// PackageName converts "TR-181" to "tr181".
func PackageName(model string) string {
	var result strings.Builder
	for _, r := range strings.ToLower(model) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// ObjectFileName derives a file name from an object path relative to the
// model root: "Device.DNS.Client.Server.{i}" under "Device" becomes
// "dns_client_server".
func ObjectFileName(root, path string) string {
	rel := strings.TrimPrefix(strings.TrimSuffix(path, "."), strings.TrimSuffix(root, ".")+".")
	var parts []string
	for _, s := range strings.Split(rel, ".") {
		if s == "{i}" || s == "" {
			continue
		}
		parts = append(parts, strings.ToLower(s))
	}
	if len(parts) == 0 {
		return PackageName(rel)
	}
	return strings.Join(parts, "_")
}

// EnumConstSuffix converts an enumeration value to an identifier suffix:
// "Error_Misconfigured" becomes "ErrorMisconfigured", "802.11" stays "80211".
func EnumConstSuffix(value string) string {
	var result strings.Builder
	upper := true
	for _, r := range value {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			upper = true
			continue
		}
		if upper {
			r = unicode.ToUpper(r)
			upper = false
		}
		result.WriteRune(r)
	}
	return result.String()
}
