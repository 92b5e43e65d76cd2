package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"seokit/toolkit/domain"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRewrite_JSONFromArgs(t *testing.T) {
	out, err := run(t, "", "--json", "rewrite", "--level", "light", "Good", "news.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var res domain.RewriteResult
	if err := json.Unmarshal([]byte(out), &res); err != nil {
		t.Fatalf("invalid json %q: %v", out, err)
	}
	if res.Output != "Great news." {
		t.Fatalf("unexpected output %q", res.Output)
	}
}

func TestReverse_ReadsStdin(t *testing.T) {
	out, err := run(t, "abc def\n", "--json", "reverse", "--mode", "word-order")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var res domain.ReverseResult
	if err := json.Unmarshal([]byte(out), &res); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if res.Output != "def abc" {
		t.Fatalf("expected %q, got %q", "def abc", res.Output)
	}
}

func TestCanonical_Card(t *testing.T) {
	out, err := run(t, "", "canonical", "--trailing-slash", "https://Example.com/About_Us.php")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "https://example.com/about-us/") {
		t.Fatalf("card does not show canonical url:\n%s", out)
	}
	if !strings.Contains(out, "Canonical URL") {
		t.Fatalf("card has no title:\n%s", out)
	}
}

func TestCanonical_InvalidURL(t *testing.T) {
	if _, err := run(t, "", "canonical", "example.com"); err == nil {
		t.Fatalf("expected error for url without scheme")
	}
}

func TestEarnings_RequiresViews(t *testing.T) {
	if _, err := run(t, "", "earnings"); err == nil {
		t.Fatalf("expected missing --views to fail")
	}

	out, err := run(t, "", "--json", "earnings", "--views", "1000", "--cpm-low", "1", "--cpm-high", "2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var est domain.EarningsEstimate
	if err := json.Unmarshal([]byte(out), &est); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if est.Monthly.Low != 30 || est.Monthly.High != 60 {
		t.Fatalf("unexpected monthly range %+v", est.Monthly)
	}
}

func TestAuthority_SameSeedSameResult(t *testing.T) {
	domains := []string{"--json", "--seed", "7", "authority", "a.com", "b.com", "c.com", "d.com", "e.com", "f.com"}
	a, err := run(t, "", domains...)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := run(t, "", domains...)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a != b {
		t.Fatalf("seeded runs differ:\n%s\n%s", a, b)
	}
}

func TestAuthority_KeepsArgumentOrder(t *testing.T) {
	out, err := run(t, "", "--json", "authority", "example.com", "Example.ORG")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var res domain.BulkAuthorityResult
	if err := json.Unmarshal([]byte(out), &res); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(res.Results) != 2 || res.Results[0].Domain != "example.com" || res.Results[1].Domain != "example.org" {
		t.Fatalf("unexpected results %+v", res.Results)
	}
}

func TestBacklinks_WritesXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.xlsx")
	if _, err := run(t, "", "backlinks", "--xlsx", path, "example.com"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("xlsx not written: %v", err)
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("open xlsx: %v", err)
	}
	defer func() { _ = f.Close() }()
	if v, _ := f.GetCellValue("Summary", "B1"); v != "example.com" {
		t.Fatalf("expected domain in B1, got %q", v)
	}
}

func TestUserAgent(t *testing.T) {
	ua := "Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:121.0) Gecko/20100101 Firefox/121.0"
	out, err := run(t, ua, "--json", "useragent")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var info domain.UserAgentInfo
	if err := json.Unmarshal([]byte(out), &info); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if info.Browser != "Firefox" || info.OS != "Windows" {
		t.Fatalf("unexpected parse %+v", info)
	}
}

func TestReadText(t *testing.T) {
	cmd := NewRootCmd()
	cmd.SetIn(strings.NewReader("from stdin"))

	got, err := readText(cmd, []string{"a", "b"})
	if err != nil || got != "a b" {
		t.Fatalf("args: got %q, %v", got, err)
	}
	got, err = readText(cmd, []string{"-"})
	if err != nil || got != "from stdin" {
		t.Fatalf("stdin: got %q, %v", got, err)
	}
}
