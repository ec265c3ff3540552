package cryptography

import (
	"regexp"
	"strings"
)

const (
	// pemLineWidth is the body line length used by encoding/pem and most tooling.
	pemLineWidth = 64

	// defaultPEMLabel is used when the text carries neither a BEGIN nor an END line.
	defaultPEMLabel = "PRIVATE KEY"
)

var (
	// escapedWhitespace undoes JSON/YAML escapes left in pasted keys; "\r\n" must precede "\r" and "\n".
	escapedWhitespace = strings.NewReplacer(`\r\n`, "\n", `\r`, "\n", `\n`, "\n", `\t`, " ")

	pemBeginPattern = regexp.MustCompile(`-{3,}\s*BEGIN\s+([A-Za-z0-9 ]*?)\s*-{3,}`)
	pemEndPattern   = regexp.MustCompile(`-{3,}\s*END\s+([A-Za-z0-9 ]*?)\s*-{3,}`)
)

// RepairPEM rewrites possibly malformed PEM text into a canonical single PEM block.
//
// It unescapes literal "\r\n", "\r", "\n" and "\t" sequences, normalizes line endings, keeps the label of an
// existing BEGIN or END line (falling back to "PRIVATE KEY"), strips everything that is
// not Base64 from the body, re-wraps the body at 64 columns and writes fresh delimiters.
// The result is not guaranteed to hold a valid key; it is only well-formed PEM.
func RepairPEM(pemText string) string {
	text := escapedWhitespace.Replace(pemText)
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	label := ""
	body := text

	if loc := pemBeginPattern.FindStringSubmatchIndex(body); loc != nil {
		label = normalizePEMLabel(body[loc[2]:loc[3]])
		body = body[loc[1]:]
	}

	if loc := pemEndPattern.FindStringSubmatchIndex(body); loc != nil {
		if label == "" {
			label = normalizePEMLabel(body[loc[2]:loc[3]])
		}
		body = body[:loc[0]]
	}

	if label == "" {
		label = defaultPEMLabel
	}

	return formatPEM(label, stripNonBase64(body))
}

func normalizePEMLabel(label string) string {
	return strings.Join(strings.Fields(strings.ToUpper(label)), " ")
}

func stripNonBase64(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r == '+', r == '/', r == '=':
			return r
		default:
			return -1
		}
	}, s)
}

func formatPEM(label, body string) string {
	var b strings.Builder
	b.Grow(len(body) + len(body)/pemLineWidth + 2*len(label) + 40)

	b.WriteString("-----BEGIN " + label + "-----\n")
	for len(body) > pemLineWidth {
		b.WriteString(body[:pemLineWidth])
		b.WriteByte('\n')
		body = body[pemLineWidth:]
	}
	if len(body) > 0 {
		b.WriteString(body)
		b.WriteByte('\n')
	}
	b.WriteString("-----END " + label + "-----\n")

	return b.String()
}
