package doctor

import (
	"net/url"
	"strings"
)

// sensitiveKeyParts flag system properties that hold secrets, e.g.
// javax.net.ssl.keyStorePassword or -Dvault.token. Matched case-insensitively.
// "PASS" covers storepass, keypass and passphrase spellings.
var sensitiveKeyParts = []string{
	"PASS",
	"TOKEN",
	"SECRET",
	"AUTH",
	"CREDENTIAL",
	"PRIVATE",
	"APIKEY",
	"API_KEY",
	"ACCESSKEY",
}

// tokenPrefixes mark a value as a credential whatever its key.
var tokenPrefixes = []string{
	"ghp_", "gho_", "ghs_", "github_pat_", // GitHub
	"glpat-",       // GitLab
	"AKIA", "ASIA", // AWS access keys
	"xoxb-", "xoxp-", // Slack
}

// MaskJavaOptions redacts a launcher options string such as
// JAVA_TOOL_OPTIONS before it is shown in a report. Sensitive -D
// properties and token-like values are masked; URL values keep everything
// but the password. Quotes around a value are preserved.
func MaskJavaOptions(opts string) string {
	fields := strings.Fields(opts)
	for i, field := range fields {
		key, value, ok := strings.Cut(field, "=")
		if !ok {
			continue
		}

		quote := ""
		if len(value) >= 2 && (value[0] == '"' || value[0] == '\'') && value[len(value)-1] == value[0] {
			quote = value[:1]
			value = value[1 : len(value)-1]
		}

		switch {
		case strings.HasPrefix(key, "-D") && sensitiveKey(key[2:]), hasTokenPrefix(value):
			value = maskSecret(value)
		case strings.Contains(value, "://"):
			value = maskURLPassword(value)
		default:
			continue
		}
		fields[i] = key + "=" + quote + value + quote
	}
	return strings.Join(fields, " ")
}

// maskSecret keeps the last four characters of values longer than eight,
// enough to tell two keystores apart without revealing either.
func maskSecret(value string) string {
	if len(value) <= 8 {
		return "********"
	}
	return "****" + value[len(value)-4:]
}

// maskURLPassword masks the password in user:pass@host URLs. Values that
// do not parse are returned unchanged.
func maskURLPassword(raw string) string {
	parsed, err := url.Parse(raw)
	if err != nil || parsed.User == nil {
		return raw
	}
	password, ok := parsed.User.Password()
	if !ok || password == "" {
		return raw
	}
	parsed.User = url.UserPassword(parsed.User.Username(), maskSecret(password))
	return parsed.String()
}

func sensitiveKey(key string) bool {
	upper := strings.ToUpper(key)
	for _, part := range sensitiveKeyParts {
		if strings.Contains(upper, part) {
			return true
		}
	}
	return false
}

func hasTokenPrefix(value string) bool {
	for _, prefix := range tokenPrefixes {
		if strings.HasPrefix(value, prefix) {
			return true
		}
	}
	return false
}
