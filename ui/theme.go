package ui

import (
	"bytes"
	"image/color"

	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	navbarColor    = color.RGBA{18, 24, 38, 255}
	panelColor     = color.RGBA{30, 38, 56, 255}
	inputColor     = color.RGBA{44, 54, 78, 255}
	buttonColor    = color.RGBA{52, 64, 92, 255}
	buttonHover    = color.RGBA{70, 86, 120, 255}
	buttonPressed  = color.RGBA{77, 162, 255, 255}
	backdropColor  = color.RGBA{0, 0, 0, 170}
	textColor      = color.RGBA{235, 240, 250, 255}
	mutedTextColor = color.RGBA{150, 160, 180, 255}
	accentColor    = color.RGBA{77, 162, 255, 255}
)

// solidNineSlice returns a solid color *image.NineSlice for widget backgrounds.
func solidNineSlice(c color.Color) *image.NineSlice {
	return image.NewNineSliceColor(c)
}

// fonts are the faces shared by every widget.
type fonts struct {
	regular text.Face
	title   text.Face
}

func loadFonts() (*fonts, error) {
	s, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, err
	}
	return &fonts{
		regular: &text.GoTextFace{Source: s, Size: 14},
		title:   &text.GoTextFace{Source: s, Size: 20},
	}, nil
}

func newTheme(fontFace *text.Face) *widget.Theme {
	return &widget.Theme{
		ListTheme: &widget.ListParams{
			EntryFace: fontFace,
			EntryColor: &widget.ListEntryColor{
				Unselected:          textColor,
				Selected:            textColor,
				DisabledUnselected:  mutedTextColor,
				DisabledSelected:    mutedTextColor,
				SelectingBackground: buttonHover,
				SelectedBackground:  buttonColor,
			},
			ScrollContainerImage: &widget.ScrollContainerImage{
				Idle: solidNineSlice(panelColor),
				Mask: solidNineSlice(panelColor),
			},
		},
		PanelTheme: &widget.PanelParams{
			BackgroundImage: solidNineSlice(panelColor),
		},
		ButtonTheme: &widget.ButtonParams{
			Image: &widget.ButtonImage{
				Idle:    solidNineSlice(buttonColor),
				Hover:   solidNineSlice(buttonHover),
				Pressed: solidNineSlice(buttonPressed),
			},
			TextFace: fontFace,
			TextColor: &widget.ButtonTextColor{
				Idle: textColor,
			},
		},
		SliderTheme: &widget.SliderParams{
			TrackImage: &widget.SliderTrackImage{
				Idle:  solidNineSlice(inputColor),
				Hover: solidNineSlice(inputColor),
			},
			HandleImage: &widget.ButtonImage{
				Idle:    solidNineSlice(buttonColor),
				Hover:   solidNineSlice(buttonHover),
				Pressed: solidNineSlice(buttonPressed),
			},
		},
	}
}
