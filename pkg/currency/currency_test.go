package currency

import "testing"

func TestFormatVND(t *testing.T) {
	cases := []struct {
		amount int64
		want   string
	}{
		{0, "0đ"},
		{999, "999đ"},
		{1000, "1.000đ"},
		{150000, "150.000đ"},
		{1234567, "1.234.567đ"},
	}

	for _, tc := range cases {
		if got := FormatVND(tc.amount); got != tc.want {
			t.Fatalf("FormatVND(%d) = %q, want %q", tc.amount, got, tc.want)
		}
	}
}
