// SPDX-License-Identifier: EPL-2.0

// Package assetgen provides one-shot asset-generation helpers: synthesizing
// short WAV audio cues, batch-rasterizing SVG icons to PNG, and normalizing
// existing audio assets to cue-ready PCM.
//
// # Audio Cues
//
// The cue subpackage synthesizes a descending-tone cue and writes it as a
// canonical mono 16-bit PCM WAV file:
//
//	spec := cue.DefaultSpec() // 250ms, 800Hz -> 400Hz, 44100Hz
//	err := spec.WriteFile("voice-stop-cue.wav")
//
// Generation is deterministic: the same spec always produces byte-identical
// output.
//
// # Icon Rasterization
//
// The icons subpackage converts icon-<size>.svg sources into PNG images of
// matching dimensions:
//
//	r, _ := icons.NewRenderer()
//	results := icons.Batch{Dir: "public/icons"}.Run(r)
//
// Per-size failures are reported in the results and never abort the batch.
//
// # Audio Normalization
//
// Existing assets in WAV, MP3, Ogg Vorbis or AIFF form can be decoded with
// the formats subpackages and converted to mono 16-bit PCM at a target rate:
//
//	src, _ := mp3.Decoder{}.Decode(file)
//	pcm, rate, err := assetgen.PrepareMono16(src, 44100, 4096)
//
// The result can be handed straight to wav.Encode.
//
// # Command-Line Tools
//
// Three commands wrap these packages: cuegen (tone cue generation),
// iconrender (icon batch) and audioprep (asset normalization). See cmd/.
package assetgen
