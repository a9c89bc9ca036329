package dnsname

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	// quotedSequenceRe matches one or more RFC 1035 quoted strings separated by
	// whitespace. \" escapes a quote.
	quotedSequenceRe = regexp.MustCompile(`^\s*"([^"\\]|\\.)*"(?:\s+"([^"\\]|\\.)*")*\s*$`)

	// uriRe matches RFC 7553 URI content: priority weight "target" or priority weight target.
	uriRe = regexp.MustCompile(`^\s*(\d+)\s+(\d+)\s+(?:"((?:[^"\\]|\\.)*)"|(.*))\s*$`)
)

// IsQuotedSequence reports whether s consists of quoted strings only: "..." "...".
func IsQuotedSequence(s string) bool { return quotedSequenceRe.MatchString(s) }

// QuoteContent quotes record content for types whose presentation format
// requires it (TXT, SPF, URI). Other types are returned unchanged.
func QuoteContent(rrType, content string) string {
	if content == "" {
		return content
	}

	switch strings.ToUpper(strings.TrimSpace(rrType)) {
	case "TXT", "SPF":
		return quoteText(content)
	case "URI":
		return quoteURI(content)
	default:
		return content
	}
}

func quoteText(content string) string {
	s := strings.TrimSpace(content)

	switch {
	case s == "":
		return `""`
	case IsQuotedSequence(s):
		return s
	}

	return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
}

func quoteURI(content string) string {
	s := strings.TrimSpace(content)
	if s == "" {
		return s
	}

	if m := uriRe.FindStringSubmatch(s); m != nil {
		prio, weight := m[1], m[2]

		if m[3] != "" {
			return fmt.Sprintf(`%s %s "%s"`, prio, weight, m[3])
		}

		target := strings.TrimSpace(m[4])
		if target == "" {
			return fmt.Sprintf(`%s %s ""`, prio, weight)
		}

		return fmt.Sprintf(`%s %s %s`, prio, weight, quoteText(target))
	}

	// No priority and weight: the last field is the target.
	parts := strings.Fields(s)
	target := parts[len(parts)-1]

	if len(target) >= 2 && strings.HasPrefix(target, `"`) && strings.HasSuffix(target, `"`) {
		target = target[1 : len(target)-1]
	}

	return "0 0 " + quoteText(target)
}
