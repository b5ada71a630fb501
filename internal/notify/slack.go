package notify

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/slack-go/slack"

	"utilboard/report"
)

// SlackNotifier posts budget-overrun summaries to a Slack channel. A nil
// notifier is valid and does nothing, so callers don't branch on
// configuration.
type SlackNotifier struct {
	client  *slack.Client
	channel string
}

// NewSlackNotifier returns nil when no token is configured.
func NewSlackNotifier(token, channel string) *SlackNotifier {
	if token == "" || channel == "" {
		return nil
	}
	return &SlackNotifier{
		client:  slack.New(token),
		channel: channel,
	}
}

// NotifyOverruns posts one message summarizing every requirement whose
// utilization exceeds the overrun threshold. Failures are logged, never
// propagated: a dead webhook must not fail a dataset load.
func (n *SlackNotifier) NotifyOverruns(requirements []report.RequirementRecord, overrunThreshold float64) {
	if n == nil {
		return
	}
	var lines []string
	for _, req := range requirements {
		if req.UtilizationPercent <= overrunThreshold {
			continue
		}
		name := req.Name
		if name == "" {
			name = req.ID
		}
		lines = append(lines, fmt.Sprintf("• %s (%s): %.1f%% of budget, %.1f hours booked",
			name, req.ID, req.UtilizationPercent, req.ActualHours))
	}
	if len(lines) == 0 {
		return
	}

	text := fmt.Sprintf("*%d requirement(s) over budget:*\n%s", len(lines), strings.Join(lines, "\n"))
	_, _, err := n.client.PostMessage(n.channel, slack.MsgOptionText(text, false))
	if err != nil {
		log.Warn().Err(err).Str("channel", n.channel).Msg("failed to post overrun notification")
		return
	}
	log.Info().Int("overruns", len(lines)).Str("channel", n.channel).Msg("posted overrun notification")
}
