package extractor

import (
	"context"
	"encoding/json"
	"fmt"
)

type probeOutput struct {
	Streams []probeStream `json:"streams"`
}

type probeStream struct {
	Index     int    `json:"index"`
	CodecType string `json:"codec_type"`
	CodecName string `json:"codec_name"`
	Tags      struct {
		Language string `json:"language"`
	} `json:"tags"`
}

// probeSubtitleStreams runs ffprobe and returns the subtitle streams of the
// container, in stream order.
func (e *implExtractor) probeSubtitleStreams(ctx context.Context, videoPath string) ([]probeStream, error) {
	args := []string{
		"-v", "quiet",
		"-print_format", "json",
		"-show_streams",
		videoPath,
	}

	out, err := e.executor.Execute(ctx, e.cfg.FFmpeg.FFprobePath, args...)
	if err != nil {
		return nil, fmt.Errorf("ffprobe %s: %w", videoPath, err)
	}

	return parseSubtitleStreams([]byte(out))
}

func parseSubtitleStreams(data []byte) ([]probeStream, error) {
	var probe probeOutput
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("parse ffprobe output: %w", err)
	}

	var subs []probeStream
	for _, stream := range probe.Streams {
		if stream.CodecType == "subtitle" {
			subs = append(subs, stream)
		}
	}
	return subs, nil
}
