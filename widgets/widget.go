package widgets

// Widget draws itself into a width x height character cell box.
type Widget interface {
	Render(width, height int) string
}
