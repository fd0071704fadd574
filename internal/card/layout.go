package card

import "pyc-official/secretariat/internal/constants"

// Canonical render size. The on-screen preview scales this down; there is
// deliberately no second layout for it.
const (
	CanvasWidth  = 1024
	CanvasHeight = 640
)

// Field is one line of text on the card, anchored at its center point.
type Field struct {
	Name string
	Text string
	X    float64
	Y    float64
	Size float64
	R    float64
	G    float64
	B    float64
}

// Layout is the full description of a card face. It is consumed by the
// bitmap renderer and is independently testable without rasterizing.
type Layout struct {
	Width  int
	Height int
	Fields []Field
}

// FieldByName returns the named field, or nil
func (l *Layout) FieldByName(name string) *Field {
	for i := range l.Fields {
		if l.Fields[i].Name == name {
			return &l.Fields[i]
		}
	}
	return nil
}

// BuildLayout computes the card text layout for the given surface size.
// Positions and font sizes are proportional to the surface, so changing
// the canonical size keeps the composition intact. Missing inputs degrade
// to placeholders; the layout never fails.
func BuildLayout(width, height int, name, sinceLong, memberID string) Layout {
	w := float64(width)
	h := float64(height)

	if name == "" {
		name = "Member"
	}
	if sinceLong == "" {
		sinceLong = "-"
	}
	if memberID == "" {
		memberID = "unlinked"
	}

	return Layout{
		Width:  width,
		Height: height,
		Fields: []Field{
			{
				Name: "org",
				Text: constants.OrgName,
				X:    w * 0.5, Y: h * 0.14,
				Size: h * 0.075,
				R:    0.93, G: 0.78, B: 0.35,
			},
			{
				Name: "name",
				Text: name,
				X:    w * 0.5, Y: h * 0.44,
				Size: h * 0.11,
				R:    1, G: 1, B: 1,
			},
			{
				Name: "verified",
				Text: constants.VerifiedLabel,
				X:    w * 0.5, Y: h * 0.58,
				Size: h * 0.05,
				R:    0.62, G: 0.87, B: 0.67,
			},
			{
				Name: "since",
				Text: "Member since: " + sinceLong,
				X:    w * 0.5, Y: h * 0.72,
				Size: h * 0.045,
				R:    0.85, G: 0.85, B: 0.85,
			},
			{
				Name: "member_id",
				Text: "ID: " + memberID,
				X:    w * 0.5, Y: h * 0.85,
				Size: h * 0.04,
				R:    0.7, G: 0.7, B: 0.7,
			},
		},
	}
}
