package theme

import "github.com/go-drift/material/pkg/graphics"

// CheckboxThemeData holds the resolved colors and sizes a checkbox or radio
// button paints with.
type CheckboxThemeData struct {
	// ActiveColor fills the box and tints the indicator when checked.
	ActiveColor graphics.Color
	// BorderColor outlines the box and tints the indicator when unchecked.
	BorderColor graphics.Color
	// CheckColor strokes the check mark.
	CheckColor graphics.Color
	// LabelColor is the label text color.
	LabelColor graphics.Color
	// Size is the box edge length.
	Size float64
	// TextSize is the label font size.
	TextSize float64
}

// CheckboxThemeOf resolves checkbox styling from env.
func CheckboxThemeOf(env *Env) CheckboxThemeData {
	return CheckboxThemeData{
		ActiveColor: Primary.Get(env),
		BorderColor: BorderLight.Get(env),
		CheckColor:  OnPrimary.Get(env),
		LabelColor:  LabelColor.Get(env),
		Size:        BasicWidgetHeight.Get(env),
		TextSize:    TextSize.Get(env),
	}
}

// SwitchThemeData holds the resolved switch styling.
type SwitchThemeData struct {
	// OnTrack is the track gradient shown in proportion to the knob position.
	OnTrackTop, OnTrackBottom graphics.Color
	// OffTrack is the track gradient shown in proportion to the remainder.
	OffTrackTop, OffTrackBottom graphics.Color
	// TrackBorder outlines the track.
	TrackBorder graphics.Color
	// KnobLight and KnobDark form the knob gradient; it flips while pressed.
	KnobLight, KnobDark graphics.Color
	// Height is the track height.
	Height float64
}

// SwitchThemeOf resolves switch styling from env.
func SwitchThemeOf(env *Env) SwitchThemeData {
	return SwitchThemeData{
		OnTrackTop:     PrimaryLight.Get(env),
		OnTrackBottom:  PrimaryDark.Get(env),
		OffTrackTop:    BackgroundLight.Get(env),
		OffTrackBottom: BackgroundDark.Get(env),
		TrackBorder:    BorderDark.Get(env),
		KnobLight:      ForegroundLight.Get(env),
		KnobDark:       ForegroundDark.Get(env),
		Height:         BorderedWidgetHeight.Get(env),
	}
}

// ButtonThemeData holds the resolved button styling.
type ButtonThemeData struct {
	BackgroundColor graphics.Color
	ForegroundColor graphics.Color
	// SelectedColor fills a toggleable button while its value is true.
	SelectedColor graphics.Color
	Height        float64
	TextSize      float64
	// BorderRadius is the corner radius.
	BorderRadius float64
}

// ButtonThemeOf resolves button styling from env.
func ButtonThemeOf(env *Env) ButtonThemeData {
	return ButtonThemeData{
		BackgroundColor: Primary.Get(env),
		ForegroundColor: OnPrimary.Get(env),
		SelectedColor:   PrimaryVariant.Get(env),
		Height:          BorderedWidgetHeight.Get(env),
		TextSize:        TextSize.Get(env),
		BorderRadius:    4,
	}
}
