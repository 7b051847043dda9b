package ui

import (
	"image/color"
	"sync"

	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"go.uber.org/zap"
	"golang.design/x/clipboard"
)

var (
	clipboardOnce sync.Once
	clipboardErr  error
)

func copyText(s string) error {
	clipboardOnce.Do(func() {
		clipboardErr = clipboard.Init()
	})
	if clipboardErr != nil {
		return clipboardErr
	}
	clipboard.Write(clipboard.FmtText, []byte(s))
	return nil
}

// infoCard is the modal that describes the selected token.
type infoCard struct {
	Overlay *widget.Container

	model   Model
	logger  *zap.Logger
	shown   string
	content cardContent

	name, symbol, description        *widget.Text
	mcapUSD, mcapSUI                 *widget.Text
	priceUSD, priceSUI, change       *widget.Text
	website, twitter, telegram, addr *widget.Text
	copyBtn                          *widget.Button
}

func newInfoCard(theme *widget.Theme, f *fonts, model Model, logger *zap.Logger) *infoCard {
	c := &infoCard{model: model, logger: logger}

	c.Overlay = widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
				StretchHorizontal:  true,
				StretchVertical:    true,
			}),
			widget.WidgetOpts.MinSize(1, 1),
		),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
		widget.ContainerOpts.BackgroundImage(solidNineSlice(backdropColor)),
	)
	c.Overlay.GetWidget().Visibility = widget.Visibility_Hide

	card := widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(440, 320),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
		widget.ContainerOpts.BackgroundImage(solidNineSlice(panelColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(6),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 16, Bottom: 16, Left: 20, Right: 20}),
		)),
	)

	line := func(face *text.Face, clr color.Color) *widget.Text {
		t := widget.NewText(
			widget.TextOpts.Text("", face, clr),
			widget.TextOpts.MaxWidth(400),
		)
		card.AddChild(t)
		return t
	}
	c.name = line(&f.title, textColor)
	c.symbol = line(&f.regular, mutedTextColor)
	c.description = line(&f.regular, textColor)
	c.mcapUSD = line(&f.regular, textColor)
	c.mcapSUI = line(&f.regular, textColor)
	c.priceUSD = line(&f.regular, textColor)
	c.priceSUI = line(&f.regular, textColor)
	c.change = line(&f.regular, textColor)
	c.website = line(&f.regular, mutedTextColor)
	c.twitter = line(&f.regular, mutedTextColor)
	c.telegram = line(&f.regular, mutedTextColor)
	c.addr = line(&f.regular, mutedTextColor)

	buttons := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(8),
		)),
	)
	c.copyBtn = widget.NewButton(
		widget.ButtonOpts.Image(theme.ButtonTheme.Image),
		widget.ButtonOpts.Text("Copy address", &f.regular, theme.ButtonTheme.TextColor),
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(120, 30)),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			c.copyAddress()
		}),
	)
	closeBtn := widget.NewButton(
		widget.ButtonOpts.Image(theme.ButtonTheme.Image),
		widget.ButtonOpts.Text("Close", &f.regular, theme.ButtonTheme.TextColor),
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(80, 30)),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			model.Dismiss()
		}),
	)
	buttons.AddChild(c.copyBtn)
	buttons.AddChild(closeBtn)
	card.AddChild(buttons)

	c.Overlay.AddChild(card)
	return c
}

func (c *infoCard) Visible() bool {
	return c.shown != ""
}

func (c *infoCard) copyAddress() {
	if c.content.Address == "" {
		return
	}
	if err := copyText(c.content.Address); err != nil {
		c.logger.Warn("clipboard unavailable", zap.Error(err))
		return
	}
	if t := c.copyBtn.Text(); t != nil {
		t.Label = "Copied"
	}
}

// Sync shows, refreshes or hides the card to match the selection.
func (c *infoCard) Sync() {
	tok, ok := c.model.Selected()
	if !ok {
		if c.shown != "" {
			c.shown = ""
			c.content = cardContent{}
			c.Overlay.GetWidget().Visibility = widget.Visibility_Hide
		}
		return
	}

	content := newCardContent(tok, c.model.Change(tok.Address), c.model.Period())
	if c.shown == tok.Address && content == c.content {
		return
	}
	if c.shown != tok.Address {
		if t := c.copyBtn.Text(); t != nil {
			t.Label = "Copy address"
		}
	}
	c.shown = tok.Address
	c.content = content

	c.name.Label = content.Name
	c.symbol.Label = content.Symbol
	c.description.Label = content.Description
	c.mcapUSD.Label = content.MarketCapUSD
	c.mcapSUI.Label = content.MarketCapSUI
	c.priceUSD.Label = content.PriceUSD
	c.priceSUI.Label = content.PriceSUI
	c.change.Label = content.Change
	c.website.Label = content.Website
	c.twitter.Label = content.Twitter
	c.telegram.Label = content.Telegram
	c.addr.Label = content.Address

	c.Overlay.GetWidget().Visibility = widget.Visibility_Show
	c.Overlay.RequestRelayout()
}
