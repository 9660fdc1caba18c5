// SPDX-License-Identifier: EPL-2.0

// Package audio defines the streaming contracts every decoder implements.
//
// A Source yields interleaved float32 samples in the range [-1.0, 1.0]:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    Close() error
//	}
//
// Sources that know their length in advance may also implement Lengther,
// which lets loaders preallocate.
//
// # Format Registry
//
// The registry maps file extensions to decoders:
//
//	registry := audio.NewRegistry()
//	registry.Register(wav.Decoder{}, "wav", "wave")
//	decoder, err := registry.ForPath("kick.wav")
//
// Keys are case-insensitive and a leading dot is ignored. The
// formats package provides a registry with every bundled decoder.
//
// # Error Handling
//
// ReadSamples returns io.EOF when no more data is available:
//
//	for {
//	    n, err := source.ReadSamples(buf)
//	    // consume buf[:n]
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	}
package audio
