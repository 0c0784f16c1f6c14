package downloads_test

import (
	"reflect"
	"testing"

	"autostepper/internal/downloads"
)

const testURL = "https://www.youtube.com/watch?v=dQw4w9WgXcQ"

// TestMetadataArgs checks the metadata probe's base argument set ---------------------------------------------------
func TestMetadataArgs(t *testing.T) {
	t.Parallel()

	got := downloads.MetadataArgs(testURL)
	want := []string{"--dump-json", "--no-download", testURL}

	if !reflect.DeepEqual(got, want) {
		t.Fatalf("metadata args mismatch: got %v want %v", got, want)
	}
}

// TestAudioArgs checks the audio extraction base argument set ------------------------------------------------------
func TestAudioArgs(t *testing.T) {
	t.Parallel()

	got := downloads.AudioArgs(testURL, "/tmp/song.mp3")
	want := []string{
		"-x",
		"--audio-format", "mp3",
		"--audio-quality", "0",
		"--no-playlist",
		"--max-filesize", "50m",
		"--progress",
		"-o", "/tmp/song.mp3",
		testURL,
	}

	if !reflect.DeepEqual(got, want) {
		t.Fatalf("audio args mismatch: got %v want %v", got, want)
	}
}

// TestBuildArgs checks flag assembly for every deno/cookie combination ---------------------------------------------
func TestBuildArgs(t *testing.T) {
	t.Parallel()

	base := []string{"--dump-json", "--no-download", testURL}

	tests := []struct {
		name          string
		denoPath      string
		cookieBrowser string
		want          []string
	}{
		{
			name: "no extras",
			want: []string{"--dump-json", "--no-download", testURL},
		},
		{
			name:     "deno only",
			denoPath: "/usr/local/bin/deno",
			want: []string{
				"--dump-json", "--no-download", testURL,
				"--js-runtimes", "deno:/usr/local/bin/deno",
				"--remote-components", "ejs:github",
			},
		},
		{
			name:          "cookies only",
			cookieBrowser: "firefox",
			want: []string{
				"--dump-json", "--no-download", testURL,
				"--cookies-from-browser", "firefox",
			},
		},
		{
			name:          "deno and cookies",
			denoPath:      "/usr/local/bin/deno",
			cookieBrowser: "chrome",
			want: []string{
				"--dump-json", "--no-download", testURL,
				"--js-runtimes", "deno:/usr/local/bin/deno",
				"--remote-components", "ejs:github",
				"--cookies-from-browser", "chrome",
			},
		},
	}

	for _, tc := range tests {
		got := downloads.BuildArgs(base, tc.denoPath, tc.cookieBrowser)
		if !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("%s: args mismatch: got %v want %v", tc.name, got, tc.want)
		}
	}
}

// TestBuildArgsDoesNotMutateBase verifies the base slice is copied, never aliased.
func TestBuildArgsDoesNotMutateBase(t *testing.T) {
	t.Parallel()

	base := []string{"--dump-json", "--no-download", testURL}
	snapshot := append([]string(nil), base...)

	got := downloads.BuildArgs(base, "/usr/local/bin/deno", "firefox")
	got[0] = "clobbered"

	if !reflect.DeepEqual(base, snapshot) {
		t.Fatalf("base slice was mutated: got %v want %v", base, snapshot)
	}

	// Repeated calls with identical inputs must produce identical output.
	first := downloads.BuildArgs(base, "/usr/local/bin/deno", "firefox")
	second := downloads.BuildArgs(base, "/usr/local/bin/deno", "firefox")
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("identical inputs produced different args: %v vs %v", first, second)
	}
}
