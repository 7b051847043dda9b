package ui

import (
	"github.com/ebitenui/ebitenui/widget"
	"github.com/milk9111/suibubbles/api"
)

// dropdown lists the tokens matching the search box, right under it.
type dropdown struct {
	Container *widget.Container

	model   Model
	open    bool
	list    *widget.List
	empty   *widget.Text
	entries []any
	synced  bool
}

func newDropdown(f *fonts, model Model) *dropdown {
	d := &dropdown{model: model}

	d.Container = widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: NavbarHeight, Left: navbarPadding*2 + titleWidth}),
		)),
	)
	d.Container.GetWidget().Visibility = widget.Visibility_Hide

	d.list = widget.NewList(
		widget.ListOpts.Entries(nil),
		widget.ListOpts.EntryLabelFunc(func(e any) string {
			if t, ok := e.(api.Token); ok {
				return t.Metadata.Name
			}
			return ""
		}),
		widget.ListOpts.EntrySelectedHandler(func(args *widget.ListEntrySelectedEventArgs) {
			if t, ok := args.Entry.(api.Token); ok {
				model.Choose(t.Address)
				d.SetOpen(false)
			}
		}),
	)
	d.list.GetWidget().MinWidth = 240
	d.list.GetWidget().MinHeight = 220
	d.Container.AddChild(d.list)

	d.empty = widget.NewText(
		widget.TextOpts.Text("No tokens found", &f.regular, mutedTextColor),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.MinSize(240, 32)),
	)
	d.empty.GetWidget().Visibility = widget.Visibility_Hide
	d.Container.AddChild(d.empty)

	return d
}

func (d *dropdown) Open() bool {
	return d.open
}

func (d *dropdown) SetOpen(open bool) {
	if d.open == open {
		return
	}
	d.open = open
	if open {
		d.Container.GetWidget().Visibility = widget.Visibility_Show
	} else {
		d.Container.GetWidget().Visibility = widget.Visibility_Hide
	}
	d.Container.RequestRelayout()
}

// Sync refreshes the entries when the filtered token set changed.
func (d *dropdown) Sync() {
	if !d.open {
		return
	}
	tokens := d.model.Filtered()
	if d.synced && sameTokens(d.entries, tokens) {
		return
	}
	d.synced = true
	d.entries = make([]any, 0, len(tokens))
	for _, t := range tokens {
		d.entries = append(d.entries, t)
	}
	d.list.SetEntries(d.entries)

	if len(tokens) == 0 {
		d.list.GetWidget().Visibility = widget.Visibility_Hide
		d.empty.GetWidget().Visibility = widget.Visibility_Show
	} else {
		d.list.GetWidget().Visibility = widget.Visibility_Show
		d.empty.GetWidget().Visibility = widget.Visibility_Hide
	}
	d.Container.RequestRelayout()
}
