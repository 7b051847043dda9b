// Package ui is the dashboard chrome drawn over the bubbles: the navbar,
// the search dropdown and the token info card.
package ui

import (
	"fmt"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/suibubbles/api"
	"go.uber.org/zap"
)

// NavbarHeight is the height of the top bar. The bubble container starts
// below it.
const NavbarHeight = 56

// Model is the dashboard state the widgets read and drive.
type Model interface {
	Period() api.Period
	SetPeriod(api.Period)
	Dex() bool
	SetDex(bool)
	Search() string
	SetSearch(string)
	Filtered() []api.Token
	Choose(address string) bool
	Selected() (api.Token, bool)
	Change(address string) float64
	Dismiss()
	Loading() bool
	Err() error
	Total() int
}

type UI struct {
	ui     *ebitenui.UI
	model  Model
	logger *zap.Logger

	navbar   *navbar
	dropdown *dropdown
	card     *infoCard
}

func New(model Model, logger *zap.Logger) (*UI, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	f, err := loadFonts()
	if err != nil {
		return nil, fmt.Errorf("ui: load font: %w", err)
	}

	u := &UI{
		ui:     &ebitenui.UI{},
		model:  model,
		logger: logger.Named("ui"),
	}
	u.ui.PrimaryTheme = newTheme(&f.regular)

	u.navbar = newNavbar(u.ui.PrimaryTheme, f, model, u.openDropdown)
	u.dropdown = newDropdown(f, model)
	u.card = newInfoCard(u.ui.PrimaryTheme, f, model, u.logger)

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	u.navbar.Container.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionStart,
		VerticalPosition:   widget.AnchorLayoutPositionStart,
		StretchHorizontal:  true,
	}
	u.dropdown.Container.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionStart,
		VerticalPosition:   widget.AnchorLayoutPositionStart,
	}
	root.AddChild(u.navbar.Container)
	root.AddChild(u.dropdown.Container)
	root.AddChild(u.card.Overlay)
	u.ui.Container = root

	return u, nil
}

func (u *UI) openDropdown(open bool) {
	u.dropdown.SetOpen(open)
}

// ModalOpen reports whether the info card is showing.
func (u *UI) ModalOpen() bool {
	return u.card.Visible()
}

// CapturesPointer reports whether the widgets own the mouse, so the bubbles
// must not react to it.
func (u *UI) CapturesPointer() bool {
	return u.card.Visible() || u.dropdown.Open()
}

// Update runs the widgets and then syncs them with the model.
func (u *UI) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		switch {
		case u.card.Visible():
			u.model.Dismiss()
		case u.dropdown.Open():
			u.dropdown.SetOpen(false)
		}
	}

	u.ui.Update()

	u.navbar.Sync()
	u.dropdown.Sync()
	if _, ok := u.model.Selected(); ok {
		u.dropdown.SetOpen(false)
	}
	u.card.Sync()
}

func (u *UI) Draw(screen *ebiten.Image) {
	u.ui.Draw(screen)
}
