package view

import (
	"image"
	"log/slog"
	"path/filepath"

	"github.com/soocke/square-crop-go/ui/images"
	"github.com/soocke/square-crop-go/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// RootView composes the top-level window: menubar, image viewport and status bar.
// It owns the subviews but exposes only the narrow contracts presenters need.
type RootView struct {
	logger *slog.Logger

	// Subviews
	Image  ImageView
	Status StatusBar

	// Widgets
	Viewport *FrameWidget
}

// UI abstracts the subset of view operations needed by presenters, enabling decoupling
// from the concrete RootView implementation.
type UI interface {
	ShowImage(img image.Image)
	SetStatus(text string)
	ShowError(title, message string)
	ShowAbout(name, version, description string)
}

// Handlers are the user actions the view forwards. Nil entries are skipped.
type Handlers struct {
	Open          func()
	Save          func()
	SmartPosition func()
	Preferences   func()
	About         func()
	Exit          func()

	Press   func(x, y int)
	Motion  func(x, y int)
	Release func()
	Leave   func()
	Resize  func(w, h int)
}

func NewRootView(logger *slog.Logger) *RootView {
	return &RootView{logger: logger}
}

// Build constructs the layout. viewportSide is the initial square drawing area in pixels.
func (rv *RootView) Build(viewportSide int, status string, h Handlers) {
	if rv == nil {
		return
	}
	rv.buildMenu(h)

	// Row 0: viewport (stretches), row 1: status bar
	GridRowConfigure(App, 0, Weight(1))
	GridColumnConfigure(App, 0, Weight(1))
	rv.Viewport = Frame(Width(viewportSide), Height(viewportSide), Background(theme.CurrentPalette().Viewport))
	Grid(rv.Viewport, Row(0), Column(0), Sticky("nsew"))
	rv.Image = NewImageView(rv.Viewport, viewportSide)
	rv.Status = NewStatusBar(1, status)

	if h.Resize != nil {
		Bind(rv.Viewport, "<Configure>", Command(func(e *Event) {
			if w, ht, ok := images.ParseSize(e.Width, e.Height); ok {
				h.Resize(w, ht)
			}
		}))
	}
	lbl := rv.Image.Label()
	if h.Press != nil {
		Bind(lbl, "<ButtonPress-1>", Command(func(e *Event) { h.Press(e.X, e.Y) }))
	}
	if h.Motion != nil {
		Bind(lbl, "<B1-Motion>", Command(func(e *Event) { h.Motion(e.X, e.Y) }))
	}
	if h.Release != nil {
		Bind(lbl, "<ButtonRelease-1>", Command(h.Release))
	}
	if h.Leave != nil {
		Bind(lbl, "<Leave>", Command(h.Leave))
	}
}

func (rv *RootView) buildMenu(h Handlers) {
	menubar := Menu()

	fileMenu := menubar.Menu(Tearoff(false))
	addItem := func(m *MenuWidget, label, accel, key string, fn func()) {
		if fn == nil {
			return
		}
		m.AddCommand(Lbl(label), Accelerator(accel), Command(fn))
		if key != "" {
			Bind(App, key, Command(fn))
		}
	}
	addItem(fileMenu, "Open...", "Ctrl+O", "<Control-o>", h.Open)
	addItem(fileMenu, "Save", "Ctrl+S", "<Control-s>", h.Save)
	fileMenu.AddSeparator()
	addItem(fileMenu, "Smart Position", "Ctrl+P", "<Control-p>", h.SmartPosition)
	addItem(fileMenu, "Preferences...", "", "", h.Preferences)
	fileMenu.AddSeparator()
	addItem(fileMenu, "Exit", "Ctrl+Q", "<Control-q>", h.Exit)
	menubar.AddCascade(Lbl("File"), Underline(0), Mnu(fileMenu))

	helpMenu := menubar.Menu(Tearoff(false))
	addItem(helpMenu, "About", "Ctrl+I", "<Control-i>", h.About)
	menubar.AddCascade(Lbl("Help"), Underline(0), Mnu(helpMenu))

	App.Configure(Mnu(menubar))
}

// ShowImage proxies to the image subview.
func (rv *RootView) ShowImage(img image.Image) {
	if rv != nil && rv.Image != nil {
		rv.Image.ShowImage(img)
	}
}

// SetStatus updates the status bar text.
func (rv *RootView) SetStatus(text string) {
	if rv != nil && rv.Status != nil {
		rv.Status.SetText(text)
	}
}

// ShowError presents a modal error box.
func (rv *RootView) ShowError(title, message string) {
	MessageBox(Icon("error"), Title(title), Msg(message))
}

// ShowAbout presents the about box.
func (rv *RootView) ShowAbout(name, version, description string) {
	MessageBox(Icon("info"), Title("About "+name), Msg(name+" "+version), Detail(description))
}

// AskOpenPath shows the open dialog starting in dir and returns the chosen path,
// or "" when cancelled or when more than one file came back.
func (rv *RootView) AskOpenPath(dir string) string {
	opts := []Opt{Title("Open")}
	if dir != "" {
		opts = append(opts, Initialdir(filepath.Clean(dir)))
	}
	files := GetOpenFile(opts...)
	if len(files) != 1 {
		return ""
	}
	return files[0]
}
