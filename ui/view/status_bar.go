package view

import (
	//lint:ignore ST1001 Dot import for concise Tk widget DSL.
	. "modernc.org/tk9.0"
)

// StatusBar is the single line of text at the bottom of the window.
type StatusBar interface {
	SetText(text string)
}

type statusBar struct {
	lbl *LabelWidget
}

// NewStatusBar grids a sunken, left-aligned label across the given row.
func NewStatusBar(row int, initial string) StatusBar {
	s := &statusBar{lbl: Label(Txt(initial), Anchor("w"), Relief("sunken"), Borderwidth(1))}
	Grid(s.lbl, Row(row), Column(0), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	return s
}

func (s *statusBar) SetText(text string) {
	if s == nil || s.lbl == nil {
		return
	}
	s.lbl.Configure(Txt(text))
}
