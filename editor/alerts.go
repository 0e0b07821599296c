package editor

import (
	"math"
	"time"
)

type (
	// Alerts is the queue of notices shown to the user: failed preset loads,
	// opened MIDI devices, broken config files and so on. Alerts fade in, stay
	// for their duration and fade out; front-ends call Update once per frame
	// and draw whatever Iterate yields.
	Alerts struct {
		alerts []Alert
	}

	Alert struct {
		Name      string // alerts with the same non-empty name replace each other
		Priority  AlertPriority
		Message   string
		Duration  time.Duration
		FadeLevel float64
	}

	AlertPriority int
)

const (
	Info AlertPriority = iota
	Warning
	Error
)

const (
	defaultAlertDuration = 3 * time.Second
	alertFadeTime        = 150 * time.Millisecond
)

func (p AlertPriority) String() string {
	switch p {
	case Warning:
		return "warning"
	case Error:
		return "error"
	}
	return "info"
}

func (m *Model) Alerts() *Alerts { return &m.alerts }

// Add queues an anonymous alert with the default duration.
func (a *Alerts) Add(message string, priority AlertPriority) {
	a.AddAlert(Alert{Priority: priority, Message: message, Duration: defaultAlertDuration})
}

// AddNamed queues an alert that replaces any earlier alert with the same
// name, e.g. a readout that updates while a knob is turned.
func (a *Alerts) AddNamed(name, message string, priority AlertPriority) {
	a.AddAlert(Alert{Name: name, Priority: priority, Message: message, Duration: defaultAlertDuration})
}

func (a *Alerts) AddAlert(alert Alert) {
	if alert.Name != "" {
		for i := range a.alerts {
			if a.alerts[i].Name == alert.Name {
				alert.FadeLevel = a.alerts[i].FadeLevel
				a.alerts[i] = alert
				return
			}
		}
	}
	a.alerts = append(a.alerts, alert)
}

// Update advances the alerts by d and reports whether any alert is still
// showing, i.e. whether the front-end should keep redrawing.
func (a *Alerts) Update(d time.Duration) (animating bool) {
	fade := float64(d) / float64(alertFadeTime)
	kept := a.alerts[:0]
	for _, alert := range a.alerts {
		if alert.Duration > 0 {
			alert.Duration -= d
			alert.FadeLevel = math.Min(alert.FadeLevel+fade, 1)
		} else {
			alert.Duration = 0
			alert.FadeLevel = math.Max(alert.FadeLevel-fade, 0)
		}
		if alert.Duration > 0 || alert.FadeLevel > 0 {
			kept = append(kept, alert)
		}
	}
	clear(a.alerts[len(kept):])
	a.alerts = kept
	return len(a.alerts) > 0
}

// Iterate yields the queued alerts, oldest first.
func (a *Alerts) Iterate(yield func(index int, alert Alert) bool) {
	for i, alert := range a.alerts {
		if !yield(i, alert) {
			return
		}
	}
}

func (a *Alerts) Count() int { return len(a.alerts) }
