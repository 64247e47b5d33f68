package util

import "testing"

func TestParseExamID(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want ExamID
		ok   bool
	}{
		{"spring short code", "2024_s_q1", ExamID{Year: 2024, Season: "spring", Number: 1}, true},
		{"autumn short code", "2023_a_q80", ExamID{Year: 2023, Season: "fall", Number: 80}, true},
		{"spring long form", "2024_spring_q5", ExamID{Year: 2024, Season: "spring", Number: 5}, true},
		{"fall alias", "2022_fall_q12", ExamID{Year: 2022, Season: "fall", Number: 12}, true},
		{"autumn alias", "2022_autumn_q12", ExamID{Year: 2022, Season: "fall", Number: 12}, true},
		{"uppercase season", "2024_S_q1", ExamID{Year: 2024, Season: "spring", Number: 1}, true},
		{"empty", "", ExamID{}, false},
		{"too few parts", "2024_q1", ExamID{}, false},
		{"too many parts", "2024_s_q1_extra", ExamID{}, false},
		{"bad year", "20x4_s_q1", ExamID{}, false},
		{"zero year", "0_s_q1", ExamID{}, false},
		{"unknown season", "2024_w_q1", ExamID{}, false},
		{"missing q prefix", "2024_s_1", ExamID{}, false},
		{"bad number", "2024_s_qx", ExamID{}, false},
		{"zero number", "2024_s_q0", ExamID{}, false},
		{"free-form id", "custom-import", ExamID{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseExamID(tt.id)
			if ok != tt.ok {
				t.Fatalf("ParseExamID(%q) ok = %v, want %v", tt.id, ok, tt.ok)
			}
			if got != tt.want {
				t.Errorf("ParseExamID(%q) = %+v, want %+v", tt.id, got, tt.want)
			}
		})
	}
}

func TestPeriodKey(t *testing.T) {
	tests := []struct {
		id   ExamID
		want string
	}{
		{ExamID{Year: 2024, Season: SeasonSpring, Number: 1}, "2024_spring"},
		{ExamID{Year: 2023, Season: SeasonFall, Number: 80}, "2023_fall"},
	}

	for _, tt := range tests {
		if got := tt.id.PeriodKey(); got != tt.want {
			t.Errorf("PeriodKey(%+v) = %q, want %q", tt.id, got, tt.want)
		}
	}
}
