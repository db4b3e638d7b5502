// Package beautify styles screenshots for presentation.
//
// A Session holds one StyleState and one SourceImage. Two renderers read
// them: RenderPreview produces declarative style for a live display, and
// Exporter bakes the same Composition into png, jpg or webp pixels. Both
// derive their geometry from one Composition, so they cannot disagree.
//
// # Errors
//
// Failures carry a Code so callers can react without parsing messages:
//   - INVALID_FILE_TYPE: an upload that is not an image; nothing changes
//   - DECODE_ERROR: the source could not be decoded at export time
//   - ENCODE_ERROR: the chosen format is unsupported or failed to encode
//   - SINK_ERROR: a download or copy target rejected the finished buffer
//
// None of them ends a session or touches its StyleState. Numeric style
// values that are out of range are clamped rather than reported.
//
//	if beautify.IsCode(err, beautify.ErrCodeInvalidFileType) {
//	    notify(beautify.UserMessage(err))
//	}
package beautify
