package transcode

import (
	"bufio"
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/cyber-g/tswhist/logging"
	"github.com/mjibson/go-dsp/wav"
)

// ErrNoSamples is returned when a source decodes to zero samples
var ErrNoSamples = errors.New("transcode: no samples decoded")

// SignalData is a decoded mono signal
type SignalData struct {
	Samples    []float64 `json:"-"`
	SampleRate int       `json:"sample_rate,omitempty"` // 0 for text input
	Channels   int       `json:"channels"`              // channels before the mono down-mix
	Format     string    `json:"format"`                // "wav", "text", "ffmpeg"
	Source     string    `json:"source"`
}

// DecoderConfig holds decoder configuration
type DecoderConfig struct {
	// MaxSamples truncates the decoded signal; 0 keeps everything
	MaxSamples int `json:"max_samples"`

	// ffmpeg is only used for formats other than WAV and text
	FFmpegPath string        `json:"ffmpeg_path"`
	SampleRate int           `json:"sample_rate"`
	Timeout    time.Duration `json:"timeout"`
}

// DefaultDecoderConfig returns default decoder configuration
func DefaultDecoderConfig() *DecoderConfig {
	return &DecoderConfig{
		MaxSamples: 0,
		FFmpegPath: "ffmpeg", // Assume in PATH
		SampleRate: 44100,
		Timeout:    30 * time.Second,
	}
}

// Decoder loads 1D signals from WAV files, plain number lists or, through
// ffmpeg, any other audio container
type Decoder struct {
	config *DecoderConfig
	logger logging.Logger
}

// NewDecoder creates a new signal decoder
func NewDecoder(config *DecoderConfig) *Decoder {
	if config == nil {
		config = DefaultDecoderConfig()
	}
	return &Decoder{
		config: config,
		logger: logging.WithFields(logging.Fields{
			"component": "signal_decoder",
		}),
	}
}

// DecodeFile picks a decoder from the file extension:
// .wav through go-dsp, .txt/.csv/.dat as number lists, anything else through ffmpeg
func (d *Decoder) DecodeFile(ctx context.Context, filename string) (*SignalData, error) {
	logger := d.logger.WithFields(logging.Fields{
		"function": "DecodeFile",
		"filename": filename,
	})

	ext := strings.ToLower(filepath.Ext(filename))
	if ext != ".wav" && ext != ".txt" && ext != ".csv" && ext != ".dat" && ext != "" {
		return d.decodeWithFFmpeg(ctx, filename)
	}

	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", filename, err)
	}
	defer f.Close()

	var data *SignalData
	if ext == ".wav" {
		data, err = d.DecodeWAV(f)
	} else {
		data, err = d.DecodeText(f)
	}
	if err != nil {
		logger.Error(err, "Failed to decode signal")
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	data.Source = filename

	logger.Debug("Signal decoded", logging.Fields{
		"format":      data.Format,
		"samples":     len(data.Samples),
		"channels":    data.Channels,
		"sample_rate": data.SampleRate,
	})
	return data, nil
}

// DecodeWAV reads PCM or IEEE-float WAV data and down-mixes it to mono.
// 8- and 16-bit PCM already come out in [0,1]; float data keeps its native range.
func (d *Decoder) DecodeWAV(r io.Reader) (*SignalData, error) {
	w, err := wav.New(r)
	if err != nil {
		return nil, fmt.Errorf("invalid wav: %w", err)
	}
	if w.NumChannels == 0 {
		return nil, fmt.Errorf("invalid wav: zero channels")
	}

	raw, err := w.ReadFloats(w.Samples)
	if err != nil {
		return nil, fmt.Errorf("failed to read wav samples: %w", err)
	}

	channels := int(w.NumChannels)
	frames := len(raw) / channels
	samples := make([]float64, frames)
	for i := 0; i < frames; i++ {
		sum := 0.0
		for c := 0; c < channels; c++ {
			sum += float64(raw[i*channels+c])
		}
		samples[i] = sum / float64(channels)
	}

	return d.finish(&SignalData{
		Samples:    samples,
		SampleRate: int(w.SampleRate),
		Channels:   channels,
		Format:     "wav",
	})
}

// DecodeText reads numbers separated by commas, semicolons or whitespace.
// Blank lines and anything after '#' are ignored.
func (d *Decoder) DecodeText(r io.Reader) (*SignalData, error) {
	var samples []float64

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		fields := strings.FieldsFunc(text, func(r rune) bool {
			return r == ',' || r == ';' || r == ' ' || r == '\t' || r == '\r'
		})
		for _, field := range fields {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid sample %q", line, field)
			}
			samples = append(samples, v)
		}
		if d.config.MaxSamples > 0 && len(samples) >= d.config.MaxSamples {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read samples: %w", err)
	}

	return d.finish(&SignalData{
		Samples:  samples,
		Channels: 1,
		Format:   "text",
	})
}

// decodeWithFFmpeg converts any ffmpeg-readable file to mono f64le PCM
func (d *Decoder) decodeWithFFmpeg(ctx context.Context, filename string) (*SignalData, error) {
	logger := d.logger.WithFields(logging.Fields{
		"function": "decodeWithFFmpeg",
		"filename": filename,
	})

	if d.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.config.Timeout)
		defer cancel()
	}

	args := append([]string{"-i", filename}, d.buildFFmpegArgs()...)
	cmd := exec.CommandContext(ctx, d.config.FFmpegPath, args...)

	logger.Debug("Running ffmpeg command", logging.Fields{
		"args": strings.Join(args, " "),
	})

	output, err := cmd.Output()
	if err != nil {
		if exitError, ok := err.(*exec.ExitError); ok {
			logger.Error(err, "Ffmpeg decode failed", logging.Fields{
				"stderr": string(exitError.Stderr),
			})
		}
		return nil, fmt.Errorf("ffmpeg decode failed: %w", err)
	}

	return d.finish(&SignalData{
		Samples:    bytesToFloat64(output),
		SampleRate: d.config.SampleRate,
		Channels:   1,
		Format:     "ffmpeg",
		Source:     filename,
	})
}

// buildFFmpegArgs builds the ffmpeg output arguments
func (d *Decoder) buildFFmpegArgs() []string {
	args := []string{
		"-f", "f64le", // raw float64 little-endian
		"-ac", "1",
		"-ar", strconv.Itoa(d.config.SampleRate),
	}
	if d.config.MaxSamples > 0 && d.config.SampleRate > 0 {
		seconds := float64(d.config.MaxSamples) / float64(d.config.SampleRate)
		args = append(args, "-t", fmt.Sprintf("%.3f", seconds))
	}
	return append(args, "-v", "error", "pipe:1")
}

// finish applies MaxSamples and rejects empty signals
func (d *Decoder) finish(data *SignalData) (*SignalData, error) {
	if len(data.Samples) == 0 {
		return nil, ErrNoSamples
	}
	if d.config.MaxSamples > 0 && len(data.Samples) > d.config.MaxSamples {
		data.Samples = data.Samples[:d.config.MaxSamples]
	}
	return data, nil
}

// bytesToFloat64 converts raw little-endian float64 bytes, dropping a trailing partial sample
func bytesToFloat64(data []byte) []float64 {
	sampleCount := len(data) / 8
	samples := make([]float64, sampleCount)
	for i := 0; i < sampleCount; i++ {
		samples[i] = math.Float64frombits(binary.LittleEndian.Uint64(data[i*8 : i*8+8]))
	}
	return samples
}
