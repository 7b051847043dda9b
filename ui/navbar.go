package ui

import (
	"github.com/ebitenui/ebitenui/widget"
	"github.com/milk9111/suibubbles/api"
)

const (
	navbarPadding = 12
	titleWidth    = 160
)

type navbar struct {
	Container *widget.Container

	model   Model
	search  *widget.TextInput
	group   *widget.RadioGroup
	periods map[api.Period]*widget.Button
	dex     *widget.Button
	status  *widget.Text
}

func newNavbar(theme *widget.Theme, f *fonts, model Model, onSearch func(open bool)) *navbar {
	n := &navbar{model: model, periods: make(map[api.Period]*widget.Button)}
	center := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})

	n.Container = widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(solidNineSlice(navbarColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(navbarPadding),
			widget.RowLayoutOpts.Padding(&widget.Insets{Left: navbarPadding, Right: navbarPadding, Top: 10, Bottom: 10}),
		)),
		widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.MinSize(1, NavbarHeight)),
	)

	title := widget.NewText(
		widget.TextOpts.Text("SUI BUBBLES", &f.title, accentColor),
		widget.TextOpts.WidgetOpts(center, widget.WidgetOpts.MinSize(titleWidth, 32)),
	)
	n.Container.AddChild(title)

	n.search = widget.NewTextInput(
		widget.TextInputOpts.WidgetOpts(center, widget.WidgetOpts.MinSize(240, 32)),
		widget.TextInputOpts.Image(&widget.TextInputImage{
			Idle:     solidNineSlice(inputColor),
			Disabled: solidNineSlice(panelColor),
		}),
		widget.TextInputOpts.Color(&widget.TextInputColor{
			Idle:     textColor,
			Disabled: mutedTextColor,
			Caret:    textColor,
		}),
		widget.TextInputOpts.Face(&f.regular),
		widget.TextInputOpts.ChangedHandler(func(args *widget.TextInputChangedEventArgs) {
			if args.InputText == model.Search() {
				return
			}
			model.SetSearch(args.InputText)
			onSearch(args.InputText != "")
		}),
	)
	n.Container.AddChild(n.search)

	periodTextColor := &widget.ButtonTextColor{
		Idle:    mutedTextColor,
		Hover:   textColor,
		Pressed: textColor,
	}
	var elements []widget.RadioGroupElement
	for _, p := range api.Periods {
		btn := widget.NewButton(
			widget.ButtonOpts.Image(theme.ButtonTheme.Image),
			widget.ButtonOpts.Text(p.String(), &f.regular, periodTextColor),
			widget.ButtonOpts.ToggleMode(),
			widget.ButtonOpts.WidgetOpts(center, widget.WidgetOpts.MinSize(56, 32)),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				model.SetPeriod(p)
			}),
		)
		n.periods[p] = btn
		elements = append(elements, btn)
		n.Container.AddChild(btn)
	}
	n.group = widget.NewRadioGroup(widget.RadioGroupOpts.Elements(elements...))

	n.dex = widget.NewButton(
		widget.ButtonOpts.Image(theme.ButtonTheme.Image),
		widget.ButtonOpts.Text(dexLabel(model.Dex()), &f.regular, theme.ButtonTheme.TextColor),
		widget.ButtonOpts.WidgetOpts(center, widget.WidgetOpts.MinSize(150, 32)),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			model.SetDex(!model.Dex())
		}),
	)
	n.Container.AddChild(n.dex)

	n.status = widget.NewText(
		widget.TextOpts.Text("", &f.regular, mutedTextColor),
		widget.TextOpts.WidgetOpts(center),
	)
	n.Container.AddChild(n.status)

	n.Sync()
	return n
}

// Sync copies the model's filters into the widgets.
func (n *navbar) Sync() {
	if btn, ok := n.periods[n.model.Period()]; ok && n.group.Active() != btn {
		n.group.SetActive(btn)
	}
	if text := n.dex.Text(); text != nil {
		text.Label = dexLabel(n.model.Dex())
	}
	if n.search.GetText() != n.model.Search() {
		n.search.SetText(n.model.Search())
	}
	n.status.Label = statusText(n.model.Loading(), n.model.Err(), n.model.Total())
}

func dexLabel(listed bool) string {
	if listed {
		return "Listed on Dex: On"
	}
	return "Listed on Dex: Off"
}
