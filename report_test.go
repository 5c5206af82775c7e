package clfparse

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestReportJSON(t *testing.T) {
	t.Parallel()
	report := &Report{
		LinesProcessed: 3,
		LinesOK:        2,
		LinesFailed:    1,
		TopClientIPs: ClientRanking{
			{Addr: "212.205.21.11", Count: 2},
		},
		TopPathSizes: PathRanking{
			{Path: "/", KiB: 1.98},
			{Path: "/admin.php", KiB: 0.5},
		},
	}
	got, err := report.JSON()
	if err != nil {
		t.Fatal(err)
	}
	want := `{
    "total_number_of_lines_processed": 3,
    "total_number_of_lines_ok": 2,
    "total_number_of_lines_failed": 1,
    "top_client_ips": {
        "212.205.21.11": 2
    },
    "top_path_avg_response_size": {
        "/": 1.98,
        "/admin.php": 0.5
    }
}`
	if diff := cmp.Diff(want, string(got)); diff != "" {
		t.Error(diff)
	}
}

// Ranking order must survive serialization: JSON object keys appear in rank
// order, not map order.
func TestRankingJSONPreservesOrder(t *testing.T) {
	t.Parallel()
	ranking := ClientRanking{
		{Addr: "9.9.9.9", Count: 3},
		{Addr: "1.1.1.1", Count: 2},
		{Addr: "5.5.5.5", Count: 1},
	}
	got, err := ranking.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	want := `{"9.9.9.9":3,"1.1.1.1":2,"5.5.5.5":1}`
	if string(got) != want {
		t.Errorf("want %s, got %s", want, got)
	}
}

// A whole-number average serializes as 2.0, not 2, so report values always
// read as sizes.
func TestPathRankingJSONWholeNumber(t *testing.T) {
	t.Parallel()
	ranking := PathRanking{
		{Path: "/big", KiB: 2.0},
		{Path: "/half", KiB: 0.5},
	}
	got, err := ranking.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	want := `{"/big":2.0,"/half":0.5}`
	if string(got) != want {
		t.Errorf("want %s, got %s", want, got)
	}
}

func TestEmptyRankingJSON(t *testing.T) {
	t.Parallel()
	report := &Report{}
	got, err := report.JSON()
	if err != nil {
		t.Fatal(err)
	}
	want := `{
    "total_number_of_lines_processed": 0,
    "total_number_of_lines_ok": 0,
    "total_number_of_lines_failed": 0,
    "top_client_ips": {},
    "top_path_avg_response_size": {}
}`
	if diff := cmp.Diff(want, string(got)); diff != "" {
		t.Error(diff)
	}
}
