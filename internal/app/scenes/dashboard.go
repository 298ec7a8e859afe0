package scenes

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/rook-computer/mockups/internal/render"
)

type scheduleEntry struct {
	Time        string
	Description string
}

var todaysSchedule = []scheduleEntry{
	{"8:00 AM", "Morning meeting check-in"},
	{"8:30 AM", "Math • Number Patterns"},
	{"9:15 AM", "Reading • Word Builders"},
	{"10:00 AM", "Science • Weather Watch"},
}

// SubjectProgress is one row of the progress panel.
type SubjectProgress struct {
	Subject string
	Percent int
}

// StudentProgress lists the progress rows top to bottom.
var StudentProgress = []SubjectProgress{
	{"Math", 80},
	{"English", 65},
	{"Science", 55},
}

var (
	dashHeaderRect   = image.Rect(40, 40, 1240, 140)
	dashFocusRect    = image.Rect(40, 160, 1240, 290)
	dashResumeRect   = image.Rect(840, 210, 1180, 260)
	dashScheduleRect = image.Rect(40, 310, 620, 620)
	dashProgressRect = image.Rect(660, 310, 1240, 620)
	dashLinksRect    = image.Rect(40, 640, 1240, 700)
)

const (
	scheduleTop       = 380
	scheduleRowHeight = 48

	progressTop      = 380
	progressRowStep  = 60
	progressBarX     = 860
	ProgressBarWidth = 300
	progressBarH     = 24
	progressRadius   = 12
	progressLabelX   = 1180
)

// ProgressFillWidth returns the filled width of a bar of maxWidth pixels for
// percent, rounded to the nearest pixel. percent is clamped to [0, 100].
func ProgressFillWidth(percent, maxWidth int) int {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	return int(math.Round(float64(percent) / 100 * float64(maxWidth)))
}

// ProgressBarRects returns the track and filled rectangles of row i.
func ProgressBarRects(i int, percent int) (track image.Rectangle, fill image.Rectangle) {
	top := progressTop + i*progressRowStep + 6
	track = image.Rect(progressBarX, top, progressBarX+ProgressBarWidth, top+progressBarH)
	fill = image.Rect(progressBarX, top, progressBarX+ProgressFillWidth(percent, ProgressBarWidth), top+progressBarH)
	return track, fill
}

// DashboardScene is the student home page.
type DashboardScene struct{}

func NewDashboardScene() *DashboardScene { return &DashboardScene{} }

func (s *DashboardScene) Name() string            { return "student-dashboard" }
func (s *DashboardScene) Filename() string        { return "student-dashboard.png" }
func (s *DashboardScene) Background() color.Color { return dashBg }

func (s *DashboardScene) Draw(d render.Drawer, fonts render.FontSet) {
	d.FillBackground()
	panel := render.PanelStyle{Fill: white, Outline: dashLine, OutlineWidth: 2}
	heading := render.TextStyle{Color: navy, Face: fonts.Medium}
	body := render.TextStyle{Color: muted, Face: fonts.Body}

	d.DrawPanel(dashHeaderRect, 32, panel)
	d.DrawText("Good morning, Mia!", 70, 54, render.TextStyle{Color: navy, Face: fonts.Large})
	d.DrawText("Here is your learning plan for today.", 70, 106, body)

	d.DrawPanel(dashFocusRect, 28, panel)
	d.DrawText("Today's Focus", 70, 190, heading)
	d.DrawText("English • Story Adventure — complete Station 2", 70, 230, body)
	d.FillRoundedRect(dashResumeRect, 18, primary)
	d.DrawText("Resume Lesson", dashResumeRect.Min.X+20, dashResumeRect.Min.Y+12, render.TextStyle{Color: white, Face: fonts.Body})

	d.DrawPanel(dashScheduleRect, 28, panel)
	d.DrawText("Today's Schedule", 70, 340, heading)
	y := scheduleTop
	for _, entry := range todaysSchedule {
		d.DrawText(entry.Time, 70, y, render.TextStyle{Color: primary, Face: fonts.Body})
		d.DrawText(entry.Description, 200, y, body)
		y += scheduleRowHeight
	}

	d.DrawPanel(dashProgressRect, 28, panel)
	d.DrawText("My Progress", 690, 340, heading)
	for i, row := range StudentProgress {
		track, fill := ProgressBarRects(i, row.Percent)
		d.DrawText(row.Subject, 690, track.Min.Y-6, body)
		d.FillRoundedRect(track, progressRadius, barTrack)
		d.FillRoundedRect(fill, progressRadius, primary)
		label := render.TextStyle{Color: navy, Face: fonts.Body, Anchor: render.TextAnchorMiddle}
		d.DrawText(fmt.Sprintf("%d%%", row.Percent), progressLabelX, track.Min.Y+track.Dy()/2, label)
	}

	d.DrawPanel(dashLinksRect, 24, panel)
	d.DrawText("Quick Links: Counting • Story Adventure • Weather Watch", 70, 654, body)
}
