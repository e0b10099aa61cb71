package query

import (
	"reflect"
	"testing"

	"github.com/starford/moodsense/internal/models"
)

func sample() []models.JournalEntry {
	return []models.JournalEntry{
		{Date: "2024-01-01", Text: "New year, so happy", Mood: models.MoodHappy, Response: "Fireworks"},
		{Date: "2024-01-02", Text: "Quiet walk by the lake", Mood: models.MoodCalm},
		{Date: "2024-02-11", Text: "Deadline week", Mood: models.MoodDrained, Response: "Need SLEEP"},
		{Date: "2024-02-12", Text: "Glad it shipped", Mood: models.MoodHappy},
	}
}

func TestFilterByMood(t *testing.T) {
	entries := sample()
	got := FilterByMood(entries, "happy")
	want := []models.JournalEntry{entries[0], entries[3]}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FilterByMood(happy) = %+v, want %+v", got, want)
	}
}

func TestFilterByMood_CaseInsensitive(t *testing.T) {
	entries := []models.JournalEntry{
		{Date: "2024-01-01", Mood: models.MoodHappy},
		{Date: "2024-01-02", Mood: models.MoodCalm},
	}
	got := FilterByMood(entries, "HAPPY")
	if len(got) != 1 || got[0].Date != "2024-01-01" {
		t.Errorf("FilterByMood(HAPPY) = %+v", got)
	}
}

func TestFilterByMood_ExactMatchOnly(t *testing.T) {
	if got := FilterByMood(sample(), "hap"); len(got) != 0 {
		t.Errorf("partial mood matched: %+v", got)
	}
}

func TestFilterByMood_NoneIsEmpty(t *testing.T) {
	got := FilterByMood(sample(), "confused")
	if got == nil || len(got) != 0 {
		t.Errorf("got %#v, want empty non-nil slice", got)
	}
}

func TestSearch_Fields(t *testing.T) {
	entries := sample()
	cases := []struct {
		q    string
		want []int
	}{
		{"lake", []int{1}},
		{"sleep", []int{2}},
		{"HAPPY", []int{0, 3}},
		{"2024-01-01", []int{0}},
		{"2024-02", []int{2, 3}},
		{"fireworks", []int{0}},
		{"nothing like this", nil},
	}
	for _, tc := range cases {
		got := Search(entries, tc.q)
		if len(got) != len(tc.want) {
			t.Errorf("Search(%q) len = %d, want %d", tc.q, len(got), len(tc.want))
			continue
		}
		for i, idx := range tc.want {
			if !reflect.DeepEqual(got[i], entries[idx]) {
				t.Errorf("Search(%q)[%d] = %+v, want %+v", tc.q, i, got[i], entries[idx])
			}
		}
	}
}

func TestSearch_DoesNotMutate(t *testing.T) {
	entries := sample()
	before := sample()
	_ = Search(entries, "happy")
	_ = FilterByMood(entries, "calm")
	if !reflect.DeepEqual(entries, before) {
		t.Error("input modified")
	}
}
