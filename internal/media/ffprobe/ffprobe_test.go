package ffprobe

import (
	"context"
	"testing"
)

func TestResultHelpers(t *testing.T) {
	result := Result{
		Streams: []Stream{
			{CodecType: "audio"},
			{CodecType: "video", Width: 1920, Height: 1080, AvgFrameRate: "30000/1001"},
		},
		Format: Format{
			Duration: "123.45",
			Size:     "1000",
		},
	}
	if result.DurationSeconds() != 123.45 {
		t.Fatalf("unexpected duration: %v", result.DurationSeconds())
	}
	if result.SizeBytes() != 1000 {
		t.Fatalf("unexpected size: %d", result.SizeBytes())
	}
	video, ok := result.VideoStream()
	if !ok {
		t.Fatal("expected a video stream")
	}
	if video.Width != 1920 || video.Height != 1080 {
		t.Fatalf("unexpected dimensions: %dx%d", video.Width, video.Height)
	}
	fps := video.FrameRate()
	if fps < 29.96 || fps > 29.98 {
		t.Fatalf("unexpected frame rate: %v", fps)
	}
}

func TestResultHelpersHandleInvalidValues(t *testing.T) {
	result := Result{
		Streams: []Stream{{CodecType: "audio"}},
		Format: Format{
			Duration: "bad",
			Size:     "-1",
		},
	}
	if result.DurationSeconds() != 0 {
		t.Fatalf("expected duration 0, got %v", result.DurationSeconds())
	}
	if result.SizeBytes() != 0 {
		t.Fatalf("expected size 0, got %d", result.SizeBytes())
	}
	if _, ok := result.VideoStream(); ok {
		t.Fatal("expected no video stream")
	}
}

func TestStreamFrameRate(t *testing.T) {
	cases := []struct {
		value string
		want  float64
	}{
		{"25/1", 25},
		{"8", 8},
		{"0/0", 0},
		{"", 0},
		{"10/0", 0},
		{"junk", 0},
	}
	for _, tc := range cases {
		got := Stream{AvgFrameRate: tc.value}.FrameRate()
		if got != tc.want {
			t.Fatalf("FrameRate(%q) = %v, want %v", tc.value, got, tc.want)
		}
	}
}

func TestInspectRejectsEmptyPath(t *testing.T) {
	if _, err := Inspect(context.Background(), "ffprobe", "  "); err == nil {
		t.Fatal("expected error for empty path")
	}
}
