package pingsweep

import (
	"regexp"
	"strconv"

	"github.com/projectdiscovery/subnetping/pkg/types"
)

var (
	// iputils, busybox and BSD ping: "4 packets transmitted, 0 received" / "0 packets received"
	posixReceivedRe = regexp.MustCompile(`(?i)transmitted,\s*(\d+)\s+(?:packets\s+)?received`)
	// windows ping: "Packets: Sent = 4, Received = 0, Lost = 4"
	windowsReceivedRe = regexp.MustCompile(`(?i)Received\s*=\s*(\d+)`)
	// echo reply lines carry the reply TTL (hop limit on BSD ping6)
	replyLineRe = regexp.MustCompile(`(?im)^.*\b(?:ttl|hlim)[=:]\s*\d+.*$`)
)

// ParseReceived extracts the echo reply count from a ping summary line.
// ok is false when no known summary format is present.
func ParseReceived(output string) (received int, ok bool) {
	for _, re := range []*regexp.Regexp{posixReceivedRe, windowsReceivedRe} {
		match := re.FindStringSubmatch(output)
		if match == nil {
			continue
		}
		n, err := strconv.Atoi(match[1])
		if err != nil {
			continue
		}
		return n, true
	}
	return 0, false
}

// CountReplies counts echo reply lines in (possibly partial) ping output
func CountReplies(output string) int {
	return len(replyLineRe.FindAllString(output, -1))
}

// Classify decides up/down from ping output.
//
// The summary reply count wins when present. Partial output of a killed
// probe has no summary, so reply lines are counted instead. Only when the
// output carries neither is the exit status used, and only if the process
// exited on its own.
func Classify(output string, exited bool, exitCode int) types.Status {
	if received, ok := ParseReceived(output); ok {
		return statusOf(received > 0)
	}
	if CountReplies(output) > 0 {
		return types.StatusUp
	}
	if exited {
		return statusOf(exitCode == 0)
	}
	return types.StatusDown
}

func statusOf(up bool) types.Status {
	if up {
		return types.StatusUp
	}
	return types.StatusDown
}
