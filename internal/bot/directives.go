package bot

import "strings"

// Reply is the resolver's structured output. Rendering into channel markup
// is the transport's job.
type Reply struct {
	Text         string
	MediaURL     string
	QuickReplies []string
}

// parseReplyDirectives strips the inline directives from a reply and turns
// them into structured fields: <MAP> attaches the fixed terminal map,
// <QUICK_REPLIES>a | b | c captures the option labels.
func parseReplyDirectives(reply string) Reply {
	var out Reply

	lines := strings.Split(strings.ReplaceAll(reply, "\r\n", "\n"), "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		t := strings.TrimSpace(line)
		switch {
		case t == mapToken:
			out.MediaURL = terminalMapURL
			continue
		case strings.HasPrefix(t, quickRepliesToken):
			if out.QuickReplies == nil {
				raw := strings.TrimPrefix(t, quickRepliesToken)
				for _, label := range strings.Split(raw, "|") {
					if label = strings.TrimSpace(label); label != "" {
						out.QuickReplies = append(out.QuickReplies, label)
					}
				}
			}
			continue
		case strings.Contains(line, mapToken):
			// Marker embedded mid-line; strip it but keep the line.
			out.MediaURL = terminalMapURL
			line = strings.TrimSpace(strings.ReplaceAll(line, mapToken, " "))
		}
		kept = append(kept, line)
	}

	out.Text = strings.TrimSpace(strings.Join(kept, "\n"))
	return out
}
