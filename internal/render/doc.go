// Package render composes the icon+label images shown on deck keys.
//
// The pipeline starts from a blank device-sized canvas, scale-to-fits
// the icon (preserving aspect ratio) into the area above a reserved
// label band, centers it horizontally anchored to the top, and draws
// the label centered in the band in a fixed white typeface.
//
// A missing icon file is fatal (ErrIconNotFound): the daemon aborts the
// render pass rather than showing a blank or placeholder key, because a
// missing asset means the configuration is broken and the operator must
// fix it. Decode and font errors propagate the same way.
//
// Output is an image.Image; conversion to the device's native pixel
// encoding is left to the device collaborator.
package render
