package scenes

import (
	"image"
	"image/color"

	"github.com/rook-computer/mockups/internal/render"
	"github.com/rook-computer/mockups/internal/render/layout"
	"golang.org/x/image/font"
)

type roleCard struct {
	Title  string
	Body   string
	Button string
}

var loginCards = []roleCard{
	{"Student Sign In", "Lessons, schedule, and badges", "Enter Student Dashboard"},
	{"Parent Sign In", "Review goals, schedules, and grades", "Open Parent Dashboard"},
	{"Teacher Sign In", "Plan lessons and monitor classes", "Launch Teacher Center"},
	{"Administrator Sign In", "Manage users and curriculum", "Enter Admin Control Center"},
}

var demoAccounts = []string{
	"Student — student1 / StudentPass123!",
	"Parent — parent1 / ParentPass123!",
	"Teacher — teacher1 / TeacherPass123!",
	"Admin — admin1 / AdminPass123!",
}

// Login page geometry. The card stack fits between the hero and the footer.
var (
	LoginHeroRect   = image.Rect(80, 24, 1200, 128)
	LoginAsideRect  = image.Rect(640, 148, 1200, 636)
	LoginFooterRect = image.Rect(80, 652, 1200, 704)

	loginCardOrigin = image.Pt(80, 148)
	loginCardSize   = image.Pt(520, 116)
)

const (
	LoginCardGap = 8

	cardRadius     = 24
	cardPadding    = 24
	cardTitleTop   = 6
	cardBodyTop    = 44
	cardButtonH    = 32
	cardButtonFoot = 8
	cardButtonPadX = 20
	cardButtonMinW = 200
	bulletStep     = 40
	qrSlotPadding  = 5
)

// LoginCardRects returns the role card rectangles, top to bottom.
func LoginCardRects() []image.Rectangle {
	return layout.StackVertical(loginCardOrigin, loginCardSize, LoginCardGap, len(loginCards))
}

// LoginQRRect is where the help-URL QR code goes inside the footer banner.
func LoginQRRect() image.Rectangle {
	slot := layout.Inset(LoginFooterRect, qrSlotPadding)
	return layout.FitSquare(layout.AnchorRight(slot, slot.Dy()))
}

// cardBoxes are the measured text and button boxes of one role card.
type cardBoxes struct {
	Title  image.Rectangle
	Body   image.Rectangle
	Button image.Rectangle
	Label  image.Rectangle
}

// layoutCard stacks title, body and call-to-action button inside rect. The
// button grows to its label, up to the card's inner width.
func layoutCard(d render.Drawer, rect image.Rectangle, card roleCard, fonts render.FontSet) cardBoxes {
	textBox := func(text string, x, y int, face font.Face) image.Rectangle {
		m := d.MeasureText(text, render.TextStyle{Face: face})
		return image.Rect(x, y, x+m.Width, y+m.Height)
	}
	x := rect.Min.X + cardPadding
	var boxes cardBoxes
	boxes.Title = textBox(card.Title, x, rect.Min.Y+cardTitleTop, fonts.Medium)
	bodyTop := rect.Min.Y + cardBodyTop
	if boxes.Title.Max.Y > bodyTop {
		bodyTop = boxes.Title.Max.Y
	}
	boxes.Body = textBox(card.Body, x, bodyTop, fonts.Body)

	label := d.MeasureText(card.Button, render.TextStyle{Face: fonts.Body})
	width := label.Width + 2*cardButtonPadX
	if width < cardButtonMinW {
		width = cardButtonMinW
	}
	if maxW := rect.Dx() - 2*cardPadding; width > maxW {
		width = maxW
	}
	boxes.Button = layout.AnchorBottomRight(rect, width, cardButtonH, cardPadding, cardButtonFoot)
	center := boxes.Button.Min.X + boxes.Button.Dx()/2
	middle := boxes.Button.Min.Y + boxes.Button.Dy()/2
	top := middle + (label.Ascent-label.Descent)/2 - label.Ascent
	boxes.Label = image.Rect(center-label.Width/2, top, center-label.Width/2+label.Width, top+label.Height)
	return boxes
}

// LoginScene is the role-selection sign-in page.
type LoginScene struct {
	// HelpURL, when set, is encoded as a QR code in the footer.
	HelpURL string
	Logger  Logger
}

func NewLoginScene(helpURL string, logger Logger) *LoginScene {
	return &LoginScene{HelpURL: helpURL, Logger: logger}
}

func (s *LoginScene) Name() string            { return "login" }
func (s *LoginScene) Filename() string        { return "login-page.png" }
func (s *LoginScene) Background() color.Color { return loginBg }

func (s *LoginScene) Draw(d render.Drawer, fonts render.FontSet) {
	d.FillBackground()
	panel := render.PanelStyle{Fill: white, Outline: loginLine, OutlineWidth: 2}

	d.FillRoundedRect(LoginHeroRect, 40, white)
	d.DrawText("Welcome to My Learning Hub", 110, 36, render.TextStyle{Color: navy, Face: fonts.Large})
	d.DrawText("Choose your role to access personalized tools and progress tracking.", 110, 94,
		render.TextStyle{Color: slate, Face: fonts.Body})

	for i, rect := range LoginCardRects() {
		card := loginCards[i]
		boxes := layoutCard(d, rect, card, fonts)
		d.DrawPanel(rect, cardRadius, panel)
		d.DrawText(card.Title, boxes.Title.Min.X, boxes.Title.Min.Y, render.TextStyle{Color: navy, Face: fonts.Medium})
		d.DrawText(card.Body, boxes.Body.Min.X, boxes.Body.Min.Y, render.TextStyle{Color: muted, Face: fonts.Body})

		d.FillRoundedRect(boxes.Button, 16, primary)
		label := render.TextStyle{Color: white, Face: fonts.Body, Align: render.TextAlignCenter, Anchor: render.TextAnchorMiddle}
		d.DrawText(card.Button, boxes.Button.Min.X+boxes.Button.Dx()/2, boxes.Button.Min.Y+boxes.Button.Dy()/2, label)
	}

	d.DrawPanel(LoginAsideRect, cardRadius, panel)
	d.DrawText("Demo Accounts", LoginAsideRect.Min.X+30, LoginAsideRect.Min.Y+30, render.TextStyle{Color: navy, Face: fonts.Medium})
	y := LoginAsideRect.Min.Y + 82
	for _, account := range demoAccounts {
		d.DrawText("• "+account, LoginAsideRect.Min.X+50, y, render.TextStyle{Color: slate, Face: fonts.Body})
		y += bulletStep
	}

	d.DrawPanel(LoginFooterRect, cardRadius, panel)
	d.DrawText("Need an account? Contact an administrator to create linked profiles.",
		LoginFooterRect.Min.X+30, LoginFooterRect.Min.Y+LoginFooterRect.Dy()/2, render.TextStyle{Color: muted, Face: fonts.Body, Anchor: render.TextAnchorMiddle})
	s.drawHelpQR(d)
}

func (s *LoginScene) drawHelpQR(d render.Drawer) {
	if s.HelpURL == "" {
		return
	}
	slot := LoginQRRect()
	qr, err := render.GenerateQRCodeImage(s.HelpURL, slot.Dx(), navy)
	if err != nil {
		if s.Logger != nil {
			s.Logger.Errorf("login", "help QR code skipped: %v", err)
		}
		return
	}
	d.DrawImageInRect(qr, slot)
}
