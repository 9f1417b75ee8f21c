package recording

import "github.com/gogpu/ggchart"

// CommandType identifies the type of a command.
// Each command type corresponds to one backend capability.
type CommandType uint8

const (
	// State commands
	CmdSave       CommandType = iota // Save current state
	CmdRestore                       // Restore previous state
	CmdTransform                     // Concatenate a matrix
	CmdScaleAlpha                    // Multiply global alpha

	// Path commands
	CmdNewPath   // Discard the current path
	CmdMoveTo    // Start a subpath
	CmdLineTo    // Add a line
	CmdArc       // Add a positive arc
	CmdArcNeg    // Add a negative arc
	CmdClosePath // Close the subpath

	// Drawing commands
	CmdStroke   // Stroke the current path
	CmdFill     // Fill the current path
	CmdDrawText // Draw a string

	// Style commands
	CmdSetLineStyle // Set stroke style
	CmdSetFillStyle // Set fill style
	CmdSetFontStyle // Set font style
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdSave:         "Save",
	CmdRestore:      "Restore",
	CmdTransform:    "Transform",
	CmdScaleAlpha:   "ScaleAlpha",
	CmdNewPath:      "NewPath",
	CmdMoveTo:       "MoveTo",
	CmdLineTo:       "LineTo",
	CmdArc:          "Arc",
	CmdArcNeg:       "ArcNeg",
	CmdClosePath:    "ClosePath",
	CmdStroke:       "Stroke",
	CmdFill:         "Fill",
	CmdDrawText:     "DrawText",
	CmdSetLineStyle: "SetLineStyle",
	CmdSetFillStyle: "SetFillStyle",
	CmdSetFontStyle: "SetFontStyle",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all command types.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// --------------------------------------------------------------------------
// State Commands
// --------------------------------------------------------------------------

// SaveCommand saves the current graphics state.
type SaveCommand struct{}

// Type implements Command.
func (SaveCommand) Type() CommandType { return CmdSave }

// RestoreCommand restores the previously saved graphics state.
type RestoreCommand struct{}

// Type implements Command.
func (RestoreCommand) Type() CommandType { return CmdRestore }

// TransformCommand concatenates Matrix onto the current transform.
type TransformCommand struct {
	Matrix ggchart.Matrix
}

// Type implements Command.
func (TransformCommand) Type() CommandType { return CmdTransform }

// ScaleAlphaCommand multiplies the global alpha by Factor.
type ScaleAlphaCommand struct {
	Factor float64
}

// Type implements Command.
func (ScaleAlphaCommand) Type() CommandType { return CmdScaleAlpha }

// --------------------------------------------------------------------------
// Path Commands
// --------------------------------------------------------------------------

// NewPathCommand discards the current path.
type NewPathCommand struct{}

// Type implements Command.
func (NewPathCommand) Type() CommandType { return CmdNewPath }

// MoveToCommand starts a new subpath at Point.
type MoveToCommand struct {
	Point ggchart.Point
}

// Type implements Command.
func (MoveToCommand) Type() CommandType { return CmdMoveTo }

// LineToCommand adds a line to Point.
type LineToCommand struct {
	Point ggchart.Point
}

// Type implements Command.
func (LineToCommand) Type() CommandType { return CmdLineTo }

// ArcCommand adds an arc with increasing angle.
type ArcCommand struct {
	Center     ggchart.Point
	Radius     float64
	Start, End float64
}

// Type implements Command.
func (ArcCommand) Type() CommandType { return CmdArc }

// ArcNegCommand adds an arc with decreasing angle.
type ArcNegCommand struct {
	Center     ggchart.Point
	Radius     float64
	Start, End float64
}

// Type implements Command.
func (ArcNegCommand) Type() CommandType { return CmdArcNeg }

// ClosePathCommand closes the current subpath.
type ClosePathCommand struct{}

// Type implements Command.
func (ClosePathCommand) Type() CommandType { return CmdClosePath }

// --------------------------------------------------------------------------
// Drawing Commands
// --------------------------------------------------------------------------

// StrokeCommand strokes the current path.
type StrokeCommand struct {
	// Style is the line style in effect.
	Style ggchart.LineStyle
}

// Type implements Command.
func (StrokeCommand) Type() CommandType { return CmdStroke }

// FillCommand fills the current path.
type FillCommand struct {
	// Style is the fill style in effect.
	Style ggchart.FillStyle
}

// Type implements Command.
func (FillCommand) Type() CommandType { return CmdFill }

// DrawTextCommand draws Text with its baseline origin at Point.
type DrawTextCommand struct {
	// Point is the origin in the coordinates of the current frame.
	Point ggchart.Point
	Text  string
	// Matrix is the full transform in effect.
	Matrix ggchart.Matrix
	// Font is the font style in effect.
	Font ggchart.FontStyle
}

// Type implements Command.
func (DrawTextCommand) Type() CommandType { return CmdDrawText }

// Origin returns the text origin in device coordinates.
func (c DrawTextCommand) Origin() ggchart.Point {
	return c.Matrix.TransformPoint(c.Point)
}

// --------------------------------------------------------------------------
// Style Commands
// --------------------------------------------------------------------------

// SetLineStyleCommand sets the stroke style.
type SetLineStyleCommand struct {
	Style ggchart.LineStyle
}

// Type implements Command.
func (SetLineStyleCommand) Type() CommandType { return CmdSetLineStyle }

// SetFillStyleCommand sets the fill style.
type SetFillStyleCommand struct {
	Style ggchart.FillStyle
}

// Type implements Command.
func (SetFillStyleCommand) Type() CommandType { return CmdSetFillStyle }

// SetFontStyleCommand sets the font style.
type SetFontStyleCommand struct {
	Style ggchart.FontStyle
}

// Type implements Command.
func (SetFontStyleCommand) Type() CommandType { return CmdSetFontStyle }
