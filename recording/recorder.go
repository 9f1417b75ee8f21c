package recording

import (
	"fmt"

	"github.com/gogpu/ggchart"
)

// RecorderOption configures a Recorder.
type RecorderOption func(*recorderOptions)

type recorderOptions struct {
	measurer Measurer
}

// WithMeasurer sets the source of text metrics. The default is
// FixedMeasurer.
func WithMeasurer(m Measurer) RecorderOption {
	return func(o *recorderOptions) {
		if m != nil {
			o.measurer = m
		}
	}
}

// Recorder captures backend capability calls as commands.
// Use FinishRecording to obtain a Recording that can be replayed to
// other backends.
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	width, height int
	commands      []Command
	measurer      Measurer

	state      recorderState
	stateStack []recorderState

	// err latches the first misuse, such as an unbalanced Restore.
	err error
}

// recorderState stores the graphics state for Save/Restore.
type recorderState struct {
	transform ggchart.Matrix
	alpha     float64
	line      ggchart.LineStyle
	fill      ggchart.FillStyle
	font      ggchart.FontStyle
}

var _ ggchart.Backend = (*Recorder)(nil)

// NewRecorder creates a new Recorder for the given dimensions.
// The Recorder starts with the identity transform, alpha 1 and the
// default line, fill and font styles.
func NewRecorder(width, height int, opts ...RecorderOption) *Recorder {
	o := recorderOptions{measurer: FixedMeasurer{}}
	for _, opt := range opts {
		opt(&o)
	}
	return &Recorder{
		width:    width,
		height:   height,
		commands: make([]Command, 0, 256),
		measurer: o.measurer,
		state: recorderState{
			transform: ggchart.Identity(),
			alpha:     1,
			line:      ggchart.DefaultLineStyle(),
			fill:      ggchart.DefaultFillStyle(),
			font:      ggchart.DefaultFontStyle(),
		},
		stateStack: make([]recorderState, 0, 8),
	}
}

// Width returns the width of the recording canvas.
func (r *Recorder) Width() int {
	return r.width
}

// Height returns the height of the recording canvas.
func (r *Recorder) Height() int {
	return r.height
}

// CTM returns the current transformation matrix.
func (r *Recorder) CTM() ggchart.Matrix {
	return r.state.transform
}

// Alpha returns the current global alpha.
func (r *Recorder) Alpha() float64 {
	return r.state.alpha
}

// LineStyle returns the current line style.
func (r *Recorder) LineStyle() ggchart.LineStyle {
	return r.state.line
}

// FillStyle returns the current fill style.
func (r *Recorder) FillStyle() ggchart.FillStyle {
	return r.state.fill
}

// FontStyle returns the current font style.
func (r *Recorder) FontStyle() ggchart.FontStyle {
	return r.state.font
}

// Depth returns the number of unmatched Save calls.
func (r *Recorder) Depth() int {
	return len(r.stateStack)
}

// Err returns the first misuse recorded, if any.
func (r *Recorder) Err() error {
	return r.err
}

// Commands returns the commands recorded so far.
func (r *Recorder) Commands() []Command {
	return r.commands
}

// FinishRecording returns a Recording containing all recorded commands.
// After calling FinishRecording, the Recorder should not be used again.
func (r *Recorder) FinishRecording() *Recording {
	if n := len(r.stateStack); n > 0 {
		ggchart.Logger().Warn("recording: finished with unrestored state", "depth", n)
	}
	return &Recording{
		width:    r.width,
		height:   r.height,
		commands: r.commands,
	}
}

func (r *Recorder) record(cmd Command) {
	r.commands = append(r.commands, cmd)
}

// --------------------------------------------------------------------------
// ggchart.Backend
// --------------------------------------------------------------------------

// Save pushes the current state.
func (r *Recorder) Save() {
	s := r.state
	s.line.Dashes = append([]float64(nil), s.line.Dashes...)
	r.stateStack = append(r.stateStack, s)
	r.record(SaveCommand{})
}

// Restore pops the state pushed by the matching Save. A Restore without
// a Save is not recorded; it latches ErrUnbalancedRestore.
func (r *Recorder) Restore() {
	n := len(r.stateStack)
	if n == 0 {
		if r.err == nil {
			r.err = fmt.Errorf("%w: at command %d", ErrUnbalancedRestore, len(r.commands))
		}
		ggchart.Logger().Warn("recording: restore without save", "command", len(r.commands))
		return
	}
	r.state = r.stateStack[n-1]
	r.stateStack = r.stateStack[:n-1]
	r.record(RestoreCommand{})
}

// Transform concatenates m onto the current transform.
func (r *Recorder) Transform(m ggchart.Matrix) {
	r.state.transform = r.state.transform.Multiply(m)
	r.record(TransformCommand{Matrix: m})
}

// ScaleAlpha multiplies the current alpha by f.
func (r *Recorder) ScaleAlpha(f float64) {
	r.state.alpha *= f
	r.record(ScaleAlphaCommand{Factor: f})
}

// NewPath records a NewPathCommand.
func (r *Recorder) NewPath() { r.record(NewPathCommand{}) }

// MoveTo records a MoveToCommand.
func (r *Recorder) MoveTo(p ggchart.Point) { r.record(MoveToCommand{Point: p}) }

// LineTo records a LineToCommand.
func (r *Recorder) LineTo(p ggchart.Point) { r.record(LineToCommand{Point: p}) }

// Arc records an ArcCommand.
func (r *Recorder) Arc(c ggchart.Point, radius, a1, a2 float64) {
	r.record(ArcCommand{Center: c, Radius: radius, Start: a1, End: a2})
}

// ArcNeg records an ArcNegCommand.
func (r *Recorder) ArcNeg(c ggchart.Point, radius, a1, a2 float64) {
	r.record(ArcNegCommand{Center: c, Radius: radius, Start: a1, End: a2})
}

// ClosePath records a ClosePathCommand.
func (r *Recorder) ClosePath() { r.record(ClosePathCommand{}) }

// Stroke records a StrokeCommand with the current line style.
func (r *Recorder) Stroke() { r.record(StrokeCommand{Style: r.state.line}) }

// Fill records a FillCommand with the current fill style.
func (r *Recorder) Fill() { r.record(FillCommand{Style: r.state.fill}) }

// SetLineStyle sets the current line style.
func (r *Recorder) SetLineStyle(ls ggchart.LineStyle) {
	r.state.line = ls
	r.record(SetLineStyleCommand{Style: ls})
}

// SetFillStyle sets the current fill style.
func (r *Recorder) SetFillStyle(fs ggchart.FillStyle) {
	r.state.fill = fs
	r.record(SetFillStyleCommand{Style: fs})
}

// SetFontStyle sets the current font style.
func (r *Recorder) SetFontStyle(fs ggchart.FontStyle) {
	r.state.font = fs
	r.record(SetFontStyleCommand{Style: fs})
}

// MeasureText measures s in the current font. It records nothing.
func (r *Recorder) MeasureText(s string) ggchart.TextSize {
	return r.measurer.Measure(r.state.font, s)
}

// DrawText records a DrawTextCommand carrying the current transform and
// font.
func (r *Recorder) DrawText(p ggchart.Point, s string) {
	r.record(DrawTextCommand{
		Point:  p,
		Text:   s,
		Matrix: r.state.transform,
		Font:   r.state.font,
	})
}

// --------------------------------------------------------------------------
// Recording
// --------------------------------------------------------------------------

// Recording is an immutable container for recorded drawing commands.
// It can be replayed to any ggchart.Backend.
type Recording struct {
	width, height int
	commands      []Command
}

// Width returns the width of the recording canvas.
func (r *Recording) Width() int {
	return r.width
}

// Height returns the height of the recording canvas.
func (r *Recording) Height() int {
	return r.height
}

// Commands returns the recorded commands.
func (r *Recording) Commands() []Command {
	return r.commands
}

// Playback replays the recording to the given backend.
// It stops at the first command that cannot be replayed: a Restore with
// no matching Save, or a command type it does not know.
func (r *Recording) Playback(b ggchart.Backend) error {
	depth := 0
	for i, cmd := range r.commands {
		switch c := cmd.(type) {
		case SaveCommand:
			depth++
			b.Save()
		case RestoreCommand:
			if depth == 0 {
				return fmt.Errorf("%w: at command %d", ErrUnbalancedRestore, i)
			}
			depth--
			b.Restore()
		case TransformCommand:
			b.Transform(c.Matrix)
		case ScaleAlphaCommand:
			b.ScaleAlpha(c.Factor)
		case NewPathCommand:
			b.NewPath()
		case MoveToCommand:
			b.MoveTo(c.Point)
		case LineToCommand:
			b.LineTo(c.Point)
		case ArcCommand:
			b.Arc(c.Center, c.Radius, c.Start, c.End)
		case ArcNegCommand:
			b.ArcNeg(c.Center, c.Radius, c.Start, c.End)
		case ClosePathCommand:
			b.ClosePath()
		case StrokeCommand:
			b.Stroke()
		case FillCommand:
			b.Fill()
		case DrawTextCommand:
			b.DrawText(c.Point, c.Text)
		case SetLineStyleCommand:
			b.SetLineStyle(c.Style)
		case SetFillStyleCommand:
			b.SetFillStyle(c.Style)
		case SetFontStyleCommand:
			b.SetFontStyle(c.Style)
		default:
			return fmt.Errorf("%w: %T at command %d", ErrUnknownCommand, cmd, i)
		}
	}
	if depth > 0 {
		ggchart.Logger().Debug("recording: playback left state saved", "depth", depth)
	}
	return nil
}
