package sources

import (
	"errors"
	"strings"
	"testing"
)

func TestCleanTranscript(t *testing.T) {
	long := strings.Repeat("the quick brown fox jumps over the lazy dog ", 10)

	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{
			name: "whitespace collapsed",
			in:   "  " + strings.ReplaceAll(long, " ", "\n \t"),
			want: strings.TrimSpace(strings.ReplaceAll(long, "\n", " ")),
		},
		{
			name: "bracketed artifacts removed",
			in:   "[Music] " + long + " [Applause]",
			want: strings.TrimSpace(long),
		},
		{
			name: "parentheticals removed",
			in:   "(laughs) " + long,
			want: strings.TrimSpace(long),
		},
		{
			name: "leading noise stripped",
			in:   "123 -- " + long,
			want: strings.TrimSpace(long),
		},
		{
			name:    "too short",
			in:      "hello world",
			wantErr: true,
		},
		{
			name:    "empty",
			in:      "",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CleanTranscript(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrTranscriptUnavailable) {
					t.Fatalf("want ErrTranscriptUnavailable, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("CleanTranscript: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCollapseRepeatedWords(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"so so so anyway", "so anyway"},
		{"the the quick fox", "the the quick fox"}, // only two repeats, kept
		{"yeah yeah yeah yeah yeah okay", "yeah okay"},
		{"The THE the deal", "The deal"}, // case-insensitive run
		{"one two three", "one two three"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := collapseRepeatedWords(tt.in); got != tt.want {
			t.Errorf("collapseRepeatedWords(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPickBestTrack(t *testing.T) {
	manual := captionTrack{BaseURL: "https://yt/api/timedtext?lang=en", LanguageCode: "en"}
	auto := captionTrack{BaseURL: "https://yt/api/timedtext?lang=en&kind=asr", LanguageCode: "en", Kind: "asr"}
	spanish := captionTrack{BaseURL: "https://yt/api/timedtext?lang=es", LanguageCode: "es"}
	poToken := captionTrack{BaseURL: "https://yt/api/timedtext?lang=en&exp=xpe", LanguageCode: "en"}

	t.Run("manual preferred over asr", func(t *testing.T) {
		got, ok := pickBestTrack([]captionTrack{auto, manual}, []string{"en"})
		if !ok || got.Kind == "asr" {
			t.Errorf("want manual track, got %+v ok=%v", got, ok)
		}
	})
	t.Run("asr when no manual", func(t *testing.T) {
		got, ok := pickBestTrack([]captionTrack{spanish, auto}, []string{"en"})
		if !ok || got.Kind != "asr" {
			t.Errorf("want asr en track, got %+v ok=%v", got, ok)
		}
	})
	t.Run("falls back to english prefix", func(t *testing.T) {
		enGB := captionTrack{BaseURL: "https://yt/api/timedtext?lang=en-GB", LanguageCode: "en-GB"}
		got, ok := pickBestTrack([]captionTrack{spanish, enGB}, []string{"de"})
		if !ok || got.LanguageCode != "en-GB" {
			t.Errorf("want en-GB, got %+v ok=%v", got, ok)
		}
	})
	t.Run("poToken tracks skipped", func(t *testing.T) {
		got, ok := pickBestTrack([]captionTrack{poToken, spanish}, []string{"en"})
		if !ok || got.LanguageCode != "es" {
			t.Errorf("want es (poToken skipped), got %+v ok=%v", got, ok)
		}
	})
	t.Run("all poToken", func(t *testing.T) {
		if _, ok := pickBestTrack([]captionTrack{poToken}, []string{"en"}); ok {
			t.Error("want ok=false when every track needs PoToken")
		}
	})
}

func TestExtractTranscriptToken(t *testing.T) {
	data := []byte(`{"engagementPanels":[{"x":{"getTranscriptEndpoint":{"params":"CgtkUXc0dzlXZ1hjUQ%3D%3D"}}}]}`)
	token, err := extractTranscriptToken(data)
	if err != nil {
		t.Fatalf("extractTranscriptToken: %v", err)
	}
	if token != "CgtkUXc0dzlXZ1hjUQ==" {
		t.Errorf("token = %q, want URL-decoded params", token)
	}

	if _, err := extractTranscriptToken([]byte(`{}`)); err == nil {
		t.Error("want error when endpoint missing")
	}
}

func TestParseTranscriptSegments(t *testing.T) {
	var resp ytGetTranscriptResp
	mustUnmarshalJSON(t, []byte(`{
	  "actions": [{
	    "updateEngagementPanelAction": {
	      "content": {"transcriptRenderer": {"content": {"transcriptSearchPanelRenderer": {"body": {
	        "transcriptSegmentListRenderer": {"initialSegments": [
	          {"transcriptSegmentRenderer": {"snippet": {"runs": [{"text": "hello"}]}}},
	          {"transcriptSegmentRenderer": {"snippet": {"runs": [{"text": "world"}, {"text": "again"}]}}},
	          {}
	        ]}
	      }}}}}
	    }
	  }]
	}`), &resp)

	if got := parseTranscriptSegments(resp); got != "hello world again" {
		t.Errorf("parseTranscriptSegments = %q", got)
	}
}
