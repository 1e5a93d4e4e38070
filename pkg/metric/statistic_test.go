package metric

import (
	"math"
	"testing"
)

func TestSummarize(t *testing.T) {
	tests := []struct {
		name    string
		samples []float64
		want    Statistic
	}{
		{
			name:    "empty input yields zero statistic",
			samples: nil,
			want:    Statistic{},
		},
		{
			name:    "single sample collapses all fields",
			samples: []float64{4.5},
			want:    Statistic{Min: 4.5, Max: 4.5, Avg: 4.5, P95: 4.5, SampleCount: 1},
		},
		{
			name:    "two samples keep p95 at max",
			samples: []float64{2, 8},
			want:    Statistic{Min: 2, Max: 8, Avg: 5, P95: 8, SampleCount: 2},
		},
		{
			name:    "unsorted input",
			samples: []float64{9, 1, 5},
			want:    Statistic{Min: 1, Max: 9, Avg: 5, P95: 9, SampleCount: 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Summarize(tt.samples)
			if got != tt.want {
				t.Errorf("Summarize() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSummarize_P95NearestRank(t *testing.T) {
	// 1..100: nearest-rank p95 is the 95th value.
	samples := make([]float64, 100)
	for i := range samples {
		samples[i] = float64(i + 1)
	}

	got := Summarize(samples)
	if got.P95 != 95 {
		t.Errorf("P95 = %v, want 95", got.P95)
	}
	if got.Avg != 50.5 {
		t.Errorf("Avg = %v, want 50.5", got.Avg)
	}
}

// The p95 must stay inside [min, max] even for tiny sample counts, where
// interpolating percentile implementations can drift past the maximum.
func TestSummarize_P95BoundedBySmallSamples(t *testing.T) {
	for n := 1; n <= 5; n++ {
		samples := make([]float64, n)
		for i := range samples {
			samples[i] = math.Pow(10, float64(i))
		}
		s := Summarize(samples)
		if s.P95 < s.Min || s.P95 > s.Max {
			t.Errorf("n=%d: p95 %v outside [%v, %v]", n, s.P95, s.Min, s.Max)
		}
		if err := s.Validate(); err != nil {
			t.Errorf("n=%d: Validate() = %v", n, err)
		}
	}
}

func TestStatistic_Validate(t *testing.T) {
	tests := []struct {
		name    string
		stat    Statistic
		wantErr bool
	}{
		{name: "zero statistic valid", stat: Statistic{}, wantErr: false},
		{
			name: "well formed",
			stat: Statistic{Min: 1, Max: 10, Avg: 4, P95: 9, SampleCount: 12},
		},
		{
			name:    "min above max",
			stat:    Statistic{Min: 10, Max: 1, Avg: 5, P95: 5, SampleCount: 2},
			wantErr: true,
		},
		{
			name:    "avg outside range",
			stat:    Statistic{Min: 1, Max: 10, Avg: 11, P95: 9, SampleCount: 2},
			wantErr: true,
		},
		{
			name:    "p95 above max",
			stat:    Statistic{Min: 1, Max: 10, Avg: 5, P95: 12, SampleCount: 2},
			wantErr: true,
		},
		{
			name:    "p95 below min",
			stat:    Statistic{Min: 1, Max: 10, Avg: 5, P95: 0.5, SampleCount: 2},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.stat.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestParseName(t *testing.T) {
	for _, n := range Names {
		got, ok := ParseName(n.String())
		if !ok || got != n {
			t.Errorf("ParseName(%q) = %v, %v", n.String(), got, ok)
		}
	}

	if _, ok := ParseName("bogus"); ok {
		t.Error("ParseName should reject unknown names")
	}
}
