package ui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonboulle/clockwork"
	. "github.com/smartystreets/goconvey/convey"
)

func TestNotifications(t *testing.T) {
	Convey("Given a notifier on a fake clock", t, func() {
		clock := clockwork.NewFakeClock()
		m := New(clock)

		Convey("A notification is shown until its timer fires", func() {
			cmd := m.Update(Notify("Theme saved")())
			So(m.Current(), ShouldEqual, "Theme saved")
			So(cmd, ShouldNotBeNil)

			done := make(chan tea.Msg, 1)
			go func() { done <- cmd() }()

			So(clock.BlockUntilContext(t.Context(), 1), ShouldBeNil)
			clock.Advance(Lifetime)

			m.Update(<-done)
			So(m.Current(), ShouldBeEmpty)
		})

		Convey("A stale clear keeps a newer notification", func() {
			m.Update(Notification("first"))
			stale := ClearNotificationMsg{at: m.notifiedAt}

			clock.Advance(time.Second)
			m.Update(Notification("second"))
			m.Update(stale)
			So(m.Current(), ShouldEqual, "second")
		})

		Convey("View appends to the last line", func() {
			So(m.View("a\nb", func(s string) string { return s }), ShouldEqual, "a\nb")

			m.Update(Notification("saved"))
			So(m.View("a\nb", func(s string) string { return "[" + s + "]" }), ShouldEqual, "a\nb  [saved]")
		})
	})
}
