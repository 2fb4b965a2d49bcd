// Package rawmedia holds the error taxonomy shared by the bmp and wav
// buffer packages.
//
// The bmp package owns an uncompressed 24 bits/pixel raster and reads and
// writes it as a Windows bitmap file. The wav package owns an interleaved
// 8 or 16 bits/sample PCM buffer and reads and writes it as a RIFF/WAVE
// file. Both expose the same lifecycle:
//
//   - New() creates an empty buffer
//   - Configure(cfg) (re)allocates storage sized from cfg
//   - per-element get/set accessors
//   - Load(path) / Save(path), or Decode/Encode over io interfaces
//   - Close() releases storage
//
// Every failure is returned as an error matching one of the Err* sentinels
// below with errors.Is. None of the packages log.
package rawmedia
