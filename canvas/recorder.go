package canvas

// Recorder is a Canvas that records every drawing call for assertion in
// tests. Geometry is configurable so tests can force page breaks at
// known heights. Width measurement uses a flat half-em estimate, which
// keeps recorded layouts deterministic.
type Recorder struct {
	PageHeight   float64
	TopMargin    float64
	BottomMargin float64
	LeftMargin   float64

	Pages  [][]Op
	Stamps []string

	pageIndex int
	x, y      float64
}

// Op is one recorded drawing operation.
type Op struct {
	Kind string // "text" or "line"
	Text string
	Font string
	Size float64
	X, Y float64
	X2   float64
	Y2   float64
}

// NewRecorder returns a recorder with letter-page geometry and one-inch
// margins, positioned on page one.
func NewRecorder() *Recorder {
	r := &Recorder{PageHeight: 792, TopMargin: 72, BottomMargin: 72, LeftMargin: 72}
	r.NewPage()
	return r
}

func (r *Recorder) PageIndex() int             { return r.pageIndex }
func (r *Recorder) Cursor() (float64, float64) { return r.x, r.y }
func (r *Recorder) MoveTo(x, y float64)        { r.x, r.y = x, y }

func (r *Recorder) NewPage() {
	r.pageIndex++
	r.Pages = append(r.Pages, nil)
	r.x = r.LeftMargin
	r.y = r.PageHeight - r.TopMargin
}

func (r *Recorder) WriteText(text string, opts TextOptions) float64 {
	size := opts.Size
	if size == 0 {
		size = 12
	}
	r.record(Op{Kind: "text", Text: text, Font: opts.Font, Size: size, X: r.x, Y: r.y})
	r.y -= opts.Advance
	return r.y
}

func (r *Recorder) DrawLine(x1, y1, x2, y2 float64) {
	r.record(Op{Kind: "line", X: x1, Y: y1, X2: x2, Y2: y2})
}

func (r *Recorder) RemainingSpace() float64 { return r.y - r.BottomMargin }

func (r *Recorder) StampPageNumber(label string) { r.Stamps = append(r.Stamps, label) }

func (r *Recorder) record(op Op) {
	r.Pages[r.pageIndex-1] = append(r.Pages[r.pageIndex-1], op)
}

// MeasureText satisfies Measurer with a deterministic estimate.
func (r *Recorder) MeasureText(text string, fontSize float64, _ string) float64 {
	return float64(len(text)) * fontSize * 0.5
}

// TextOn returns the text operations recorded for the 1-based page.
func (r *Recorder) TextOn(page int) []string {
	var out []string
	if page < 1 || page > len(r.Pages) {
		return nil
	}
	for _, op := range r.Pages[page-1] {
		if op.Kind == "text" {
			out = append(out, op.Text)
		}
	}
	return out
}

// Lines returns the line operations recorded for the 1-based page.
func (r *Recorder) Lines(page int) []Op {
	var out []Op
	if page < 1 || page > len(r.Pages) {
		return nil
	}
	for _, op := range r.Pages[page-1] {
		if op.Kind == "line" {
			out = append(out, op)
		}
	}
	return out
}
