package chatbot

import "testing"

func userTurns(messages ...string) []Turn {
	turns := make([]Turn, 0, len(messages))
	for _, m := range messages {
		turns = append(turns, Turn{Sender: "user", Message: m})
	}
	return turns
}

func TestAnalyzeHistory(t *testing.T) {
	tests := []struct {
		name    string
		history []Turn
		want    string
	}{
		{
			name:    "no history",
			history: nil,
			want:    "",
		},
		{
			name:    "too few turns",
			history: userTurns("I feel lonely", "so lonely"),
			want:    "",
		},
		{
			name:    "dominant lonely",
			history: userTurns("I feel lonely", "still alone here", "what a day"),
			want:    ToneLonely,
		},
		{
			name:    "dominant sad",
			history: userTurns("I was crying", "feeling sad", "sad again", "I am lonely"),
			want:    ToneSad,
		},
		{
			name:    "happy history",
			history: userTurns("such a happy day", "feeling glad", "full of joy"),
			want:    ToneHappy,
		},
		{
			name:    "tie broken by fixed order",
			history: userTurns("I am lonely", "I am sad", "nothing much"),
			want:    ToneLonely,
		},
		{
			name:    "no tone detected",
			history: userTurns("the garden", "tea time", "watching birds"),
			want:    "",
		},
		{
			name: "bot turns ignored",
			history: []Turn{
				{Sender: "bot", Message: "are you lonely?"},
				{Sender: "bot", Message: "you seem lonely"},
				{Sender: "user", Message: "feeling happy actually"},
			},
			want: ToneHappy,
		},
		{
			name: "only recent window scanned",
			history: append(
				userTurns("lonely", "lonely", "lonely", "lonely"),
				userTurns("happy", "happy", "happy", "happy", "happy", "happy")...,
			),
			want: ToneHappy,
		},
		{
			name:    "tamil keywords",
			history: userTurns("எனக்கு தனிமை", "மிகவும் தனிமை", "சரி"),
			want:    ToneLonely,
		},
		{
			name: "malformed turns skipped",
			history: []Turn{
				{Sender: "user", Message: ""},
				{Sender: "", Message: "lonely"},
				{Sender: "user", Message: "I am so lonely"},
				{Sender: "user", Message: "fine"},
			},
			want: ToneLonely,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AnalyzeHistory(tt.history); got != tt.want {
				t.Errorf("AnalyzeHistory() = %q, want %q", got, tt.want)
			}
		})
	}
}
