package plotter

// Default annotation position: near the bottom-right corner of the axes.
const (
	DefaultAnnotationX = 0.95
	DefaultAnnotationY = 0.05
)

// Annotate places text at the default bottom-right position.
func Annotate(ax *Axes, text string) {
	AnnotateAt(ax, text, DefaultAnnotationX, DefaultAnnotationY)
}

// AnnotateAt places text with its bottom-right corner at (x, y) in relative
// axes coordinates, where (0, 0) is the bottom-left of the plot area and
// (1, 1) the top-right. Backends draw it over a translucent rounded box.
func AnnotateAt(ax *Axes, text string, x, y float64) {
	ax.annotations = append(ax.annotations, Annotation{Text: text, X: x, Y: y})
}
