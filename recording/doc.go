// Package recording captures the drawing capability calls of a chart as
// typed commands, for inspection, testing and replay.
//
// A Recorder implements ggchart.Backend. Every capability call becomes a
// Command; the Recorder also tracks the current transform, alpha and
// styles the way a real backend would, so each DrawTextCommand carries
// the full transform the text is drawn under. Text metrics come from a
// Measurer, which makes layout deterministic without loading fonts.
//
// Design follows Cairo's approach of typed command structs for
// inspectability, rather than a binary serialization format.
//
// # Example
//
//	rec := recording.NewRecorder(800, 600)
//	env := ggchart.NewEnv(rec)
//	env.DrawTextsR(ggchart.HTextAnchorCentre, ggchart.VTextAnchorTop, 0,
//	    ggchart.Pt(400, 20), "Revenue\n2024")
//	r := rec.FinishRecording()
//
//	// Replay to any backend
//	err := r.Playback(other)
//
// # Backend registry
//
// Backends register a factory by name, following the database/sql driver
// pattern. The Recorder registers itself as "recording":
//
//	b, err := recording.NewBackend("raster", 800, 600)
package recording
