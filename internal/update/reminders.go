package update

import "fmt"

// onReminderCheck handles the periodic trigger. It repeats for as long as
// the pending count stays over the threshold.
func (m Model) onReminderCheck() Model {
	pending := m.tracker.PendingTodayCount()
	if m.policy.ShouldRemindInterval(m.Permission, pending) {
		m.deliverReminder(pending)
	}
	return m
}

// onDayRollover runs at midnight: yesterday's pending goals expire and
// every date-relative view shifts.
func (m Model) onDayRollover() Model {
	expired := m.tracker.ExpireGoals()
	m.refreshViews()
	if expired > 0 {
		m.Status = StatusBar{Text: fmt.Sprintf("new day, %d goal(s) expired", expired)}
	} else {
		m.Status = StatusBar{Text: "new day"}
	}
	return m
}

func (m *Model) deliverReminder(pending int) {
	body := fmt.Sprintf("%d tasks still pending today", pending)
	m.lastReminder = body
	if m.DesktopEnabled && m.notifier != nil {
		if err := m.notifier.Send("daysignal", body); err != nil {
			m.Status = StatusBar{Text: "reminder delivery failed: " + err.Error(), IsError: true}
		}
	}
}
